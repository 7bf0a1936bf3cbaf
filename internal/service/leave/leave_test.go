package leave

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
	seq      int

	quotaLocks map[string]*sync.Mutex

	// When set, the next SumApprovedDays call signals sumEntered and then
	// blocks until sumRelease is closed. Used to pin down interleavings.
	sumEntered chan struct{}
	sumRelease chan struct{}
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{
		requests:   make(map[string]leave.LeaveRequest),
		quotaLocks: make(map[string]*sync.Mutex),
	}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	request.ID = fmt.Sprintf("req-%d", f.seq)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return request, nil
}

func (f *fakeLeaveRepo) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.GetByID(ctx, id)
}

// AcquireQuotaLock mimics a transaction-scoped lock: it blocks until the
// employee's mutex is free and hands it to the surrounding fake transaction
// for release on completion.
func (f *fakeLeaveRepo) AcquireQuotaLock(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	l, ok := f.quotaLocks[employeeID]
	if !ok {
		l = &sync.Mutex{}
		f.quotaLocks[employeeID] = l
	}
	f.mu.Unlock()

	l.Lock()
	if holder, ok := ctx.Value(txLocksKey{}).(*txLocks); ok {
		holder.add(l)
	} else {
		l.Unlock()
	}
	return nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []leave.LeaveRequest
	for _, request := range f.requests {
		if filter.EmployeeID != nil && request.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.Status != nil && request.Status != *filter.Status {
			continue
		}
		out = append(out, request)
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatusIf(_ context.Context, id string, from leave.LeaveRequestStatus, update leave.DecisionUpdate) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	request, ok := f.requests[id]
	if !ok || request.Status != from {
		return false, nil
	}
	request.Status = update.Status
	if update.DepartmentHeadComment != nil {
		request.DepartmentHeadComment = update.DepartmentHeadComment
	}
	if update.DepartmentHeadApprovedBy != nil {
		request.DepartmentHeadApprovedBy = update.DepartmentHeadApprovedBy
	}
	if update.DepartmentHeadApprovedAt != nil {
		request.DepartmentHeadApprovedAt = update.DepartmentHeadApprovedAt
	}
	if update.AdminComment != nil {
		request.AdminComment = update.AdminComment
	}
	if update.DecidedBy != nil {
		request.DecidedBy = update.DecidedBy
	}
	request.UpdatedAt = time.Now()
	f.requests[id] = request
	return true, nil
}

func (f *fakeLeaveRepo) SumApprovedDays(_ context.Context, employeeID string, year int) (int, error) {
	f.mu.Lock()
	total := 0
	for _, request := range f.requests {
		if request.EmployeeID != employeeID || request.Status != leave.StatusApproved {
			continue
		}
		if request.StartDate.Year() != year {
			continue
		}
		total += request.InclusiveDays()
	}
	entered, release := f.sumEntered, f.sumRelease
	f.sumEntered, f.sumRelease = nil, nil
	f.mu.Unlock()

	if entered != nil {
		close(entered)
		<-release
	}
	return total, nil
}

type txLocksKey struct{}

// txLocks collects locks taken during one fake transaction so the runner can
// release them when it completes, like pg_advisory_xact_lock does.
type txLocks struct {
	mu   sync.Mutex
	held []*sync.Mutex
}

func (t *txLocks) add(l *sync.Mutex) {
	t.mu.Lock()
	t.held = append(t.held, l)
	t.mu.Unlock()
}

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	holder := &txLocks{}
	err := fn(context.WithValue(ctx, txLocksKey{}, holder))
	for _, l := range holder.held {
		l.Unlock()
	}
	return err
}

type fakeSink struct {
	mu      sync.Mutex
	entries []audit.Entry
}

func (f *fakeSink) Record(_ context.Context, entry audit.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func newTestService(repo *fakeLeaveRepo) (leave.LeaveService, *fakeSink) {
	sink := &fakeSink{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLeaveService(repo, fakeTxRunner{}, sink, logger), sink
}

func submit(t *testing.T, svc leave.LeaveService, employeeID, start, end string) leave.LeaveRequest {
	t.Helper()
	created, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID:   employeeID,
		EmployeeName: "Test Employee",
		LeaveType:    "vacation",
		StartDate:    start,
		EndDate:      end,
		Reason:       "family",
	})
	require.NoError(t, err)
	return created
}

func departmentApprove(t *testing.T, svc leave.LeaveService, requestID string) {
	t.Helper()
	_, err := svc.DepartmentDecide(context.Background(), requestID, leave.DepartmentDecision{
		Decision: "department_approved", Approver: "head-1",
	})
	require.NoError(t, err)
}

func approveTwoStage(t *testing.T, svc leave.LeaveService, requestID string) {
	t.Helper()
	departmentApprove(t, svc, requestID)
	_, err := svc.AdminDecide(context.Background(), requestID, leave.AdminDecision{
		Decision: "approved", DecidedBy: "admin-1",
	})
	require.NoError(t, err)
}

func TestSubmit(t *testing.T) {
	svc, sink := newTestService(newFakeLeaveRepo())

	created := submit(t, svc, "emp-1", "2026-03-02", "2026-03-04")
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 3, created.InclusiveDays())
	assert.Len(t, sink.entries, 1)
	assert.Equal(t, "leave_request.submitted", sink.entries[0].Action)
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	_, err := svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Test Employee",
		LeaveType:    "vacation",
		StartDate:    "2026-03-04",
		EndDate:      "2026-03-02",
	})
	require.Error(t, err)

	_, err = svc.Submit(context.Background(), leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "holiday",
		StartDate:  "not-a-date",
		EndDate:    "2026-03-02",
	})
	require.Error(t, err)
}

func TestDepartmentDecide(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, _ := newTestService(repo)
	created := submit(t, svc, "emp-1", "2026-03-02", "2026-03-04")

	updated, err := svc.DepartmentDecide(context.Background(), created.ID, leave.DepartmentDecision{
		Decision: "department_approved", Comment: "ok", Approver: "head-1",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusDepartmentApproved, updated.Status)
	require.NotNil(t, updated.DepartmentHeadApprovedBy)
	assert.Equal(t, "head-1", *updated.DepartmentHeadApprovedBy)
	assert.NotNil(t, updated.DepartmentHeadApprovedAt)

	// A second department decision is no longer legal.
	_, err = svc.DepartmentDecide(context.Background(), created.ID, leave.DepartmentDecision{
		Decision: "rejected", Approver: "head-1",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestDepartmentDecideNotFound(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	_, err := svc.DepartmentDecide(context.Background(), "missing", leave.DepartmentDecision{
		Decision: "department_approved", Approver: "head-1",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestAdminApproveRequiresDepartmentStage(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())
	created := submit(t, svc, "emp-1", "2026-03-02", "2026-03-04")

	_, err := svc.AdminDecide(context.Background(), created.ID, leave.AdminDecision{
		Decision: "approved", DecidedBy: "admin-1",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestAdminRejectFromPending(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())
	created := submit(t, svc, "emp-1", "2026-03-02", "2026-03-04")

	updated, err := svc.AdminDecide(context.Background(), created.ID, leave.AdminDecision{
		Decision: "rejected", Comment: "short staffed", DecidedBy: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, updated.Status)
	require.NotNil(t, updated.DecidedBy)
	assert.Equal(t, "admin-1", *updated.DecidedBy)
}

func TestAdminDecideOnTerminal(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())
	created := submit(t, svc, "emp-1", "2026-03-02", "2026-03-04")
	approveTwoStage(t, svc, created.ID)

	_, err := svc.AdminDecide(context.Background(), created.ID, leave.AdminDecision{
		Decision: "rejected", DecidedBy: "admin-1",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestQuotaEnforcement(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	// Burn 8 of the 10 days.
	first := submit(t, svc, "emp-1", "2026-02-02", "2026-02-09")
	require.Equal(t, 8, first.InclusiveDays())
	approveTwoStage(t, svc, first.ID)

	// A 3-day request no longer fits.
	second := submit(t, svc, "emp-1", "2026-04-06", "2026-04-08")
	departmentApprove(t, svc, second.ID)

	_, err := svc.AdminDecide(context.Background(), second.ID, leave.AdminDecision{
		Decision: "approved", DecidedBy: "admin-1",
	})
	var quotaErr *leave.QuotaExceededError
	require.True(t, errors.As(err, &quotaErr))
	assert.Equal(t, 2, quotaErr.Remaining)

	// The request is untouched and a 2-day request still fits exactly.
	stuck, err := svc.GetQuota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 8, stuck.Used)

	third := submit(t, svc, "emp-1", "2026-05-04", "2026-05-05")
	approveTwoStage(t, svc, third.ID)

	summary, err := svc.GetQuota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Used)
	assert.Equal(t, 0, summary.Remaining)
}

// Two admins approve two different department_approved requests of the same
// employee at once. The first transaction is held after its quota read while
// the second is already waiting on the employee's quota lock; without that
// lock both would read the same stale sum and jointly blow the cap.
func TestConcurrentApprovalsCannotExceedQuota(t *testing.T) {
	repo := newFakeLeaveRepo()
	svc, _ := newTestService(repo)

	first := submit(t, svc, "emp-1", "2026-02-02", "2026-02-09")  // 8 days
	second := submit(t, svc, "emp-1", "2026-04-06", "2026-04-13") // 8 days
	departmentApprove(t, svc, first.ID)
	departmentApprove(t, svc, second.ID)

	entered := make(chan struct{})
	release := make(chan struct{})
	repo.mu.Lock()
	repo.sumEntered, repo.sumRelease = entered, release
	repo.mu.Unlock()

	errs := make(chan error, 2)
	go func() {
		_, err := svc.AdminDecide(context.Background(), first.ID, leave.AdminDecision{
			Decision: "approved", DecidedBy: "admin-1",
		})
		errs <- err
	}()

	// The first approval now holds the quota lock with its sum read done.
	<-entered
	go func() {
		_, err := svc.AdminDecide(context.Background(), second.ID, leave.AdminDecision{
			Decision: "approved", DecidedBy: "admin-2",
		})
		errs <- err
	}()

	// Give the second approval time to block on the lock, then let the
	// first one finish.
	time.Sleep(20 * time.Millisecond)
	close(release)

	var approved, overQuota int
	var quotaErr *leave.QuotaExceededError
	for i := 0; i < 2; i++ {
		err := <-errs
		switch {
		case err == nil:
			approved++
		case errors.As(err, &quotaErr):
			overQuota++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, approved)
	assert.Equal(t, 1, overQuota)
	assert.Equal(t, 2, quotaErr.Remaining)

	used, err := repo.SumApprovedDays(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 8, used)
	assert.LessOrEqual(t, used, leave.MaxYearlyLeaves)
}

func TestQuotaSameDayCountsOneDay(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created := submit(t, svc, "emp-1", "2026-06-15", "2026-06-15")
	assert.Equal(t, 1, created.InclusiveDays())
	approveTwoStage(t, svc, created.ID)

	summary, err := svc.GetQuota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Used)
}

func TestQuotaYearStraddleChargesStartYear(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	created := submit(t, svc, "emp-1", "2025-12-30", "2026-01-02")
	require.Equal(t, 4, created.InclusiveDays())
	approveTwoStage(t, svc, created.ID)

	prev, err := svc.GetQuota(context.Background(), "emp-1", 2025)
	require.NoError(t, err)
	assert.Equal(t, 4, prev.Used)

	next, err := svc.GetQuota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, next.Used)
}

func TestQuotaIsPerEmployeeAndYear(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	mine := submit(t, svc, "emp-1", "2026-02-02", "2026-02-06")
	approveTwoStage(t, svc, mine.ID)
	theirs := submit(t, svc, "emp-2", "2026-02-02", "2026-02-06")
	approveTwoStage(t, svc, theirs.ID)

	summary, err := svc.GetQuota(context.Background(), "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Used)
	assert.Equal(t, 5, summary.Remaining)
}

func TestListOrdersActionableFirst(t *testing.T) {
	svc, _ := newTestService(newFakeLeaveRepo())

	done := submit(t, svc, "emp-1", "2026-02-02", "2026-02-03")
	approveTwoStage(t, svc, done.ID)
	staged := submit(t, svc, "emp-1", "2026-03-02", "2026-03-03")
	departmentApprove(t, svc, staged.ID)
	fresh := submit(t, svc, "emp-1", "2026-04-02", "2026-04-03")

	requests, err := svc.List(context.Background(), leave.LeaveRequestFilter{})
	require.NoError(t, err)
	require.Len(t, requests, 3)
	assert.Equal(t, fresh.ID, requests[0].ID)
	assert.Equal(t, staged.ID, requests[1].ID)
	assert.Equal(t, done.ID, requests[2].ID)
}
