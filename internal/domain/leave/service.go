package leave

import (
	"context"
)

type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (LeaveRequest, error)
	Get(ctx context.Context, requestID string) (LeaveRequest, error)
	DepartmentDecide(ctx context.Context, requestID string, decision DepartmentDecision) (LeaveRequest, error)
	AdminDecide(ctx context.Context, requestID string, decision AdminDecision) (LeaveRequest, error)
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)
	GetQuota(ctx context.Context, employeeID string, year int) (QuotaSummary, error)
}
