package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func (a *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	record.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Date, record.CheckIn, record.CheckOut,
		record.Status, record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `FROM attendance_records WHERE employee_id = $1 AND date = $2`

	rec, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no record for this date
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}
	return &rec, nil
}

func (a *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `FROM attendance_records WHERE date = $1 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by date: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func (a *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by employee: %w", err)
	}
	defer rows.Close()

	return collectAttendance(rows)
}

func collectAttendance(rows pgx.Rows) ([]attendance.AttendanceRecord, error) {
	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return records, nil
}

func (a *attendanceRepository) SetCheckOut(ctx context.Context, id string, checkOut string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1, updated_at = NOW()
		WHERE id = $2 AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, checkOut, id)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}
	return nil
}

// CloseOpenCheckIns conditions on check_out IS NULL, so rows closed by an
// earlier or concurrent pass are simply not matched again.
func (a *attendanceRepository) CloseOpenCheckIns(ctx context.Context, date time.Time, checkOut, note string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET check_out = $1,
			notes = CASE WHEN notes = '' THEN $2 ELSE notes || '; ' || $2 END,
			updated_at = NOW()
		WHERE date = $3
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		  AND status IN ('present', 'late')
	`

	tag, err := q.Exec(ctx, query, checkOut, note, date)
	if err != nil {
		return 0, fmt.Errorf("failed to close open check-ins: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreateAbsentIfMissing leans on the UNIQUE (employee_id, date) constraint:
// a conflicting insert means another writer already created the day's row,
// which is success from the reconciler's point of view.
func (a *attendanceRepository) CreateAbsentIfMissing(ctx context.Context, record attendance.AttendanceRecord) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (id, employee_id, date, check_in, check_out, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, NULL, NULL, $4, $5, NOW(), NOW())
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, uuid.NewString(), record.EmployeeID, record.Date, record.Status, record.Notes)
	if err != nil {
		return false, fmt.Errorf("failed to insert absent record: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
