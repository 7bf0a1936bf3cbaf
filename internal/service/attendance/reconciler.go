package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/employee"
)

// EmployeeDirectory is the slice of the employee store the reconciler needs.
type EmployeeDirectory interface {
	ListActive(ctx context.Context) ([]employee.DirectoryEntry, error)
}

// Reconciler closes out each working day: open check-ins are force-closed at
// the cutoff and active employees with no record at all are marked absent.
// All state lives in the database, so the pass may run any number of times
// per day and on overlapping schedules without double-applying.
type Reconciler struct {
	repo       attendance.AttendanceRepository
	directory  EmployeeDirectory
	audit      audit.Sink
	logger     *slog.Logger
	cutoffHour int
}

func NewReconciler(repo attendance.AttendanceRepository, directory EmployeeDirectory, sink audit.Sink, logger *slog.Logger, cutoffHour int) *Reconciler {
	return &Reconciler{
		repo:       repo,
		directory:  directory,
		audit:      sink,
		logger:     logger,
		cutoffHour: cutoffHour,
	}
}

// RunDailyPass reconciles attendance for now's date. Before the cutoff hour it
// does nothing; the scheduler fires it on an interval and this gate is the
// only time condition.
func (r *Reconciler) RunDailyPass(ctx context.Context, now time.Time) (attendance.DailyPassResult, error) {
	var result attendance.DailyPassResult

	if now.Hour() < r.cutoffHour {
		return result, nil
	}

	date := midnight(now)
	cutoff := fmt.Sprintf("%02d:00", r.cutoffHour)

	closed, err := r.repo.CloseOpenCheckIns(ctx, date, cutoff, "auto checkout at cutoff")
	if err != nil {
		return result, fmt.Errorf("close open check-ins: %w", err)
	}
	result.AutoCheckoutCount = int(closed)

	entries, err := r.directory.ListActive(ctx)
	if err != nil {
		return result, fmt.Errorf("list active employees: %w", err)
	}

	for _, entry := range entries {
		inserted, err := r.repo.CreateAbsentIfMissing(ctx, attendance.AttendanceRecord{
			EmployeeID: entry.EmployeeID,
			Date:       date,
			Status:     attendance.StatusAbsent,
			Notes:      "auto-marked absent",
		})
		if err != nil {
			// Partial success is fine; the next pass picks this employee up.
			r.logger.Error("auto-absent insert failed",
				"employee_id", entry.EmployeeID, "date", date.Format("2006-01-02"), "error", err)
			continue
		}
		if inserted {
			result.AutoAbsentCount++
		}
	}

	if result.AutoCheckoutCount > 0 || result.AutoAbsentCount > 0 {
		r.logger.Info("attendance reconciliation applied",
			"date", date.Format("2006-01-02"),
			"auto_checkouts", result.AutoCheckoutCount,
			"auto_absents", result.AutoAbsentCount)

		entry := audit.Entry{
			Actor:      "system",
			Action:     "attendance.daily_reconciliation",
			EntityType: "attendance",
			EntityID:   date.Format("2006-01-02"),
			Detail:     fmt.Sprintf("%d auto checkout(s), %d auto absent(s)", result.AutoCheckoutCount, result.AutoAbsentCount),
		}
		if err := r.audit.Record(ctx, entry); err != nil {
			r.logger.Warn("audit record failed", "action", entry.Action, "error", err)
		}
	}

	return result, nil
}
