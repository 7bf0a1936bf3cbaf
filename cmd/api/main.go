package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/config"
	appHTTP "github.com/stratus-hr/hrd-backend-go/internal/handler/http"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/cron"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/jwt"
	"github.com/stratus-hr/hrd-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stratus-hr/hrd-backend-go/internal/service/attendance"
	employeeService "github.com/stratus-hr/hrd-backend-go/internal/service/employee"
	eventService "github.com/stratus-hr/hrd-backend-go/internal/service/event"
	leaveService "github.com/stratus-hr/hrd-backend-go/internal/service/leave"
	masterService "github.com/stratus-hr/hrd-backend-go/internal/service/master"
	settingService "github.com/stratus-hr/hrd-backend-go/internal/service/setting"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "hrd-backend"),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	designationRepo := postgresql.NewDesignationRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	auditSink := postgresql.NewAuditSink(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, txManager, auditSink, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, settingsRepo, logger)
	reconciler := attendanceService.NewReconciler(attendanceRepo, employeeRepo, auditSink, logger, cfg.Cron.CutoffHour)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, auditSink, logger)
	masterSvc := masterService.NewMasterService(departmentRepo, designationRepo)
	eventSvc := eventService.NewEventService(eventRepo)
	settingsSvc := settingService.NewSettingsService(settingsRepo)

	scheduler := cron.NewScheduler()
	cron.RegisterAttendanceJobs(scheduler, reconciler, cfg.Cron.ReconcileInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, reconciler),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Event:      appHTTP.NewEventHandler(eventSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
