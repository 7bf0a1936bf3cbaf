package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/leave"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	id, employee_id, employee_name, employee_department, leave_type,
	start_date, end_date, reason, status,
	department_head_comment, department_head_approved_by, department_head_approved_at,
	admin_comment, decided_by,
	created_at, updated_at`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.EmployeeName, &lr.EmployeeDepartment, &lr.LeaveType,
		&lr.StartDate, &lr.EndDate, &lr.Reason, &lr.Status,
		&lr.DepartmentHeadComment, &lr.DepartmentHeadApprovedBy, &lr.DepartmentHeadApprovedAt,
		&lr.AdminComment, &lr.DecidedBy,
		&lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, employee_name, employee_department, leave_type,
			start_date, end_date, reason, status,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID, request.EmployeeID, request.EmployeeName, request.EmployeeDepartment, request.LeaveType,
		request.StartDate, request.EndDate, request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + `FROM leave_requests WHERE id = $1`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}
	return lr, nil
}

// GetByIDForUpdate row-locks the request for the duration of the surrounding
// transaction so a concurrent decision waits instead of reading stale status.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + `FROM leave_requests WHERE id = $1 FOR UPDATE`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to lock leave request: %w", err)
	}
	return lr, nil
}

// AcquireQuotaLock takes a transaction-scoped advisory lock keyed on the
// employee. Row locks on individual requests are not enough for the quota
// check: two transactions approving different requests of the same employee
// would each read the same SumApprovedDays snapshot under READ COMMITTED.
func (r *leaveRequestRepositoryImpl) AcquireQuotaLock(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, employeeID); err != nil {
		return fmt.Errorf("failed to acquire quota lock: %w", err)
	}
	return nil
}

func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	whereClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Department != nil && *filter.Department != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("employee_department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Year != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("EXTRACT(YEAR FROM start_date) = $%d", argIdx))
		args = append(args, *filter.Year)
		argIdx++
	}

	query := `SELECT` + leaveRequestColumns + `FROM leave_requests`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// UpdateStatusIf is the compare-and-swap behind both decision stages: the
// UPDATE matches on the status the caller validated against, so a decision
// that lost the race affects zero rows and reports false.
func (r *leaveRequestRepositoryImpl) UpdateStatusIf(ctx context.Context, id string, from leave.LeaveRequestStatus, update leave.DecisionUpdate) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1,
			department_head_comment = COALESCE($2, department_head_comment),
			department_head_approved_by = COALESCE($3, department_head_approved_by),
			department_head_approved_at = COALESCE($4, department_head_approved_at),
			admin_comment = COALESCE($5, admin_comment),
			decided_by = COALESCE($6, decided_by),
			updated_at = NOW()
		WHERE id = $7 AND status = $8
	`

	tag, err := q.Exec(ctx, query,
		update.Status,
		update.DepartmentHeadComment,
		update.DepartmentHeadApprovedBy,
		update.DepartmentHeadApprovedAt,
		update.AdminComment,
		update.DecidedBy,
		id, from,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request status: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *leaveRequestRepositoryImpl) SumApprovedDays(ctx context.Context, employeeID string, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	// DATE subtraction yields whole days; +1 makes the range inclusive.
	query := `
		SELECT COALESCE(SUM(end_date - start_date + 1), 0)
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND EXTRACT(YEAR FROM start_date) = $2
	`

	var total int
	if err := q.QueryRow(ctx, query, employeeID, year).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved leave days: %w", err)
	}
	return total, nil
}
