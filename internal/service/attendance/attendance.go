package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/setting"
)

type attendanceServiceImpl struct {
	repo     attendance.AttendanceRepository
	settings setting.SettingsRepository
	logger   *slog.Logger
	now      func() time.Time
}

func NewAttendanceService(repo attendance.AttendanceRepository, settings setting.SettingsRepository, logger *slog.Logger) attendance.AttendanceService {
	return &attendanceServiceImpl{
		repo:     repo,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *attendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	now := s.now()
	date := midnight(now)
	clock := now.Format("15:04")

	status := attendance.StatusPresent
	if settings, err := s.settings.Get(ctx); err == nil {
		if clock > settings.WorkStart {
			status = attendance.StatusLate
		}
	} else {
		s.logger.Warn("settings unavailable, defaulting check-in status to present", "error", err)
	}

	record := attendance.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       date,
		CheckIn:    &clock,
		Status:     status,
	}
	return s.repo.Create(ctx, record)
}

func (s *attendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceRecord, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	now := s.now()
	date := midnight(now)

	record, err := s.repo.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceRecord{}, attendance.ErrNoCheckIn
	}

	clock := now.Format("15:04")
	if err := s.repo.SetCheckOut(ctx, record.ID, clock); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	record.CheckOut = &clock
	return *record, nil
}

func (s *attendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	return s.repo.ListByDate(ctx, midnight(date))
}

func (s *attendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	return s.repo.ListByEmployee(ctx, employeeID, midnight(from), midnight(to))
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
