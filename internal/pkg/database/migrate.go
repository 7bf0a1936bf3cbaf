package database

import (
	"context"
	"fmt"
	"log/slog"
)

// Schema statements are idempotent so Migrate can run on every startup.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS designations (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id UUID PRIMARY KEY,
		employee_code TEXT NOT NULL UNIQUE,
		full_name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		department_id UUID REFERENCES departments(id),
		designation_id UUID REFERENCES designations(id),
		status TEXT NOT NULL DEFAULT 'active'
			CHECK (status IN ('active', 'inactive')),
		join_date DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leave_requests (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		employee_name TEXT NOT NULL,
		employee_department TEXT,
		leave_type TEXT NOT NULL
			CHECK (leave_type IN ('vacation', 'sick', 'emergency', 'unpaid', 'other')),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending'
			CHECK (status IN ('pending', 'department_approved', 'approved', 'rejected')),
		department_head_comment TEXT,
		department_head_approved_by TEXT,
		department_head_approved_at TIMESTAMPTZ,
		admin_comment TEXT,
		decided_by TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (end_date >= start_date)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leave_requests_employee_year
		ON leave_requests (employee_id, status, start_date)`,
	// The UNIQUE constraint is what makes the auto-absent pass safe to repeat:
	// a second insert for the same (employee_id, date) conflicts and is ignored.
	`CREATE TABLE IF NOT EXISTS attendance_records (
		id UUID PRIMARY KEY,
		employee_id UUID NOT NULL REFERENCES employees(id),
		date DATE NOT NULL,
		check_in TEXT,
		check_out TEXT,
		status TEXT NOT NULL
			CHECK (status IN ('present', 'absent', 'late', 'half_day', 'leave')),
		notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS calendar_events (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		event_type TEXT NOT NULL DEFAULT 'other'
			CHECK (event_type IN ('holiday', 'meeting', 'other')),
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK (end_date >= start_date)
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		company_name TEXT NOT NULL DEFAULT '',
		work_start TEXT NOT NULL DEFAULT '09:00',
		work_end TEXT NOT NULL DEFAULT '18:00',
		weekend_days TEXT NOT NULL DEFAULT 'Saturday,Sunday',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`INSERT INTO settings (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id UUID PRIMARY KEY,
		actor TEXT NOT NULL,
		action TEXT NOT NULL,
		entity_type TEXT NOT NULL,
		entity_id TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the schema. Statements use IF NOT EXISTS / ON CONFLICT so
// repeated startups and concurrent instances are harmless.
func Migrate(ctx context.Context, db *DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d failed: %w", i, err)
		}
	}
	slog.Info("Database schema up to date", "statements", len(migrations))
	return nil
}
