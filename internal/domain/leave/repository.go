package leave

import (
	"context"
)

// LeaveRequestRepository - interface for the leave_requests table.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetByIDForUpdate row-locks the request. Meaningful only inside a
	// transaction; callers outside one get plain read semantics.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)

	// AcquireQuotaLock serializes quota accounting per employee. It blocks
	// until no other transaction holds the employee's lock and releases at
	// commit or rollback. Must be called inside a transaction, before
	// SumApprovedDays, by any caller that will write based on the sum.
	AcquireQuotaLock(ctx context.Context, employeeID string) error

	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// UpdateStatusIf applies update only when the stored status still equals
	// from, returning false when the row was not in that status anymore.
	// This is the compare-and-swap that guards concurrent decisions.
	UpdateStatusIf(ctx context.Context, id string, from LeaveRequestStatus, update DecisionUpdate) (bool, error)

	// SumApprovedDays totals inclusive days over approved requests whose
	// start_date falls in year. Requests straddling a year boundary count
	// entirely toward their start-date year.
	SumApprovedDays(ctx context.Context, employeeID string, year int) (int, error)
}
