package leave

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/leave"
)

// TxRunner runs fn atomically; repository calls made with the context passed
// to fn share one transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type leaveServiceImpl struct {
	repo   leave.LeaveRequestRepository
	tx     TxRunner
	audit  audit.Sink
	logger *slog.Logger
}

func NewLeaveService(repo leave.LeaveRequestRepository, tx TxRunner, sink audit.Sink, logger *slog.Logger) leave.LeaveService {
	return &leaveServiceImpl{
		repo:   repo,
		tx:     tx,
		audit:  sink,
		logger: logger,
	}
}

func (s *leaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	request := leave.LeaveRequest{
		EmployeeID:         req.EmployeeID,
		EmployeeName:       req.EmployeeName,
		EmployeeDepartment: req.EmployeeDepartment,
		LeaveType:          leave.LeaveType(req.LeaveType),
		StartDate:          start,
		EndDate:            end,
		Reason:             req.Reason,
		Status:             leave.StatusPending,
	}

	created, err := s.repo.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.record(ctx, req.EmployeeID, "leave_request.submitted", created.ID,
		fmt.Sprintf("%s, %s to %s (%d day(s))", created.LeaveType, req.StartDate, req.EndDate, created.InclusiveDays()))

	return created, nil
}

func (s *leaveServiceImpl) Get(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	return s.repo.GetByID(ctx, requestID)
}

func (s *leaveServiceImpl) DepartmentDecide(ctx context.Context, requestID string, decision leave.DepartmentDecision) (leave.LeaveRequest, error) {
	if err := decision.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	now := time.Now()
	update := leave.DecisionUpdate{
		Status:                   leave.LeaveRequestStatus(decision.Decision),
		DepartmentHeadComment:    &decision.Comment,
		DepartmentHeadApprovedBy: &decision.Approver,
		DepartmentHeadApprovedAt: &now,
	}

	applied, err := s.repo.UpdateStatusIf(ctx, requestID, leave.StatusPending, update)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if !applied {
		// Either the request does not exist or it already left pending.
		if _, err := s.repo.GetByID(ctx, requestID); err != nil {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, leave.ErrInvalidTransition
	}

	updated, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.record(ctx, decision.Approver, "leave_request.department_decision", requestID, decision.Decision)
	return updated, nil
}

func (s *leaveServiceImpl) AdminDecide(ctx context.Context, requestID string, decision leave.AdminDecision) (leave.LeaveRequest, error) {
	if err := decision.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	update := leave.DecisionUpdate{
		Status:       leave.LeaveRequestStatus(decision.Decision),
		AdminComment: &decision.Comment,
		DecidedBy:    &decision.DecidedBy,
	}

	var err error
	if leave.LeaveRequestStatus(decision.Decision) == leave.StatusApproved {
		err = s.approveWithQuota(ctx, requestID, update)
	} else {
		err = s.reject(ctx, requestID, update)
	}
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	updated, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.record(ctx, decision.DecidedBy, "leave_request.admin_decision", requestID, decision.Decision)
	return updated, nil
}

// approveWithQuota performs the final approval. The quota read and the status
// write happen under one transaction holding the employee's quota lock, so
// concurrent approvals for the same employee, on the same request or on
// different ones, cannot both pass a stale check.
func (s *leaveServiceImpl) approveWithQuota(ctx context.Context, requestID string, update leave.DecisionUpdate) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.repo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusDepartmentApproved {
			return leave.ErrInvalidTransition
		}

		if err := s.repo.AcquireQuotaLock(ctx, request.EmployeeID); err != nil {
			return err
		}

		year := request.StartDate.Year()
		used, err := s.repo.SumApprovedDays(ctx, request.EmployeeID, year)
		if err != nil {
			return err
		}

		remaining := leave.MaxYearlyLeaves - used
		if remaining < 0 {
			remaining = 0
		}
		if request.InclusiveDays() > remaining {
			return &leave.QuotaExceededError{Remaining: remaining}
		}

		applied, err := s.repo.UpdateStatusIf(ctx, requestID, leave.StatusDepartmentApproved, update)
		if err != nil {
			return err
		}
		if !applied {
			return leave.ErrInvalidTransition
		}
		return nil
	})
}

// reject is legal from pending or department_approved.
func (s *leaveServiceImpl) reject(ctx context.Context, requestID string, update leave.DecisionUpdate) error {
	for _, from := range []leave.LeaveRequestStatus{leave.StatusPending, leave.StatusDepartmentApproved} {
		applied, err := s.repo.UpdateStatusIf(ctx, requestID, from, update)
		if err != nil {
			return err
		}
		if applied {
			return nil
		}
	}
	if _, err := s.repo.GetByID(ctx, requestID); err != nil {
		return err
	}
	return leave.ErrInvalidTransition
}

// List returns requests with the ones still needing action first: pending,
// then department_approved, then terminal states, newest first within each
// group.
func (s *leaveServiceImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return statusRank(requests[i].Status) < statusRank(requests[j].Status)
	})
	return requests, nil
}

func statusRank(s leave.LeaveRequestStatus) int {
	switch s {
	case leave.StatusPending:
		return 0
	case leave.StatusDepartmentApproved:
		return 1
	default:
		return 2
	}
}

// GetQuota recomputes usage from approved requests on every call rather than
// keeping a counter that could drift.
func (s *leaveServiceImpl) GetQuota(ctx context.Context, employeeID string, year int) (leave.QuotaSummary, error) {
	used, err := s.repo.SumApprovedDays(ctx, employeeID, year)
	if err != nil {
		return leave.QuotaSummary{}, err
	}

	remaining := leave.MaxYearlyLeaves - used
	if remaining < 0 {
		remaining = 0
	}

	return leave.QuotaSummary{
		EmployeeID: employeeID,
		Year:       year,
		Used:       used,
		Remaining:  remaining,
		Max:        leave.MaxYearlyLeaves,
	}, nil
}

func (s *leaveServiceImpl) record(ctx context.Context, actor, action, entityID, detail string) {
	entry := audit.Entry{
		Actor:      actor,
		Action:     action,
		EntityType: "leave_request",
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Warn("audit record failed", "action", action, "entity_id", entityID, "error", err)
	}
}
