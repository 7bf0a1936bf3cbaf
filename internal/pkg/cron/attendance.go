package cron

import (
	"context"
	"time"

	attendanceservice "github.com/stratus-hr/hrd-backend-go/internal/service/attendance"
)

// RegisterAttendanceJobs hooks the daily reconciliation pass into the
// scheduler. The pass itself gates on the cutoff hour, so a short interval
// only costs cheap no-op runs during the day.
func RegisterAttendanceJobs(s *Scheduler, reconciler *attendanceservice.Reconciler, interval time.Duration) {
	s.AddJob("attendance_reconciliation", interval, func(ctx context.Context) error {
		_, err := reconciler.RunDailyPass(ctx, time.Now())
		return err
	})
}
