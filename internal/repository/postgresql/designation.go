package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/master/designation"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.DesignationRepository {
	return &designationRepositoryImpl{db: db}
}

func (r *designationRepositoryImpl) Create(ctx context.Context, des designation.Designation) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	des.ID = uuid.NewString()
	err := q.QueryRow(ctx, `
		INSERT INTO designations (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`, des.ID, des.Name, des.Description).Scan(&des.CreatedAt, &des.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return designation.Designation{}, designation.ErrDesignationExists
		}
		return designation.Designation{}, fmt.Errorf("failed to create designation: %w", err)
	}
	return des, nil
}

func (r *designationRepositoryImpl) GetByID(ctx context.Context, id string) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	var des designation.Designation
	err := q.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at FROM designations WHERE id = $1
	`, id).Scan(&des.ID, &des.Name, &des.Description, &des.CreatedAt, &des.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("failed to get designation: %w", err)
	}
	return des, nil
}

func (r *designationRepositoryImpl) List(ctx context.Context) ([]designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM designations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query designations: %w", err)
	}
	defer rows.Close()

	var items []designation.Designation
	for rows.Next() {
		var des designation.Designation
		if err := rows.Scan(&des.ID, &des.Name, &des.Description, &des.CreatedAt, &des.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan designation: %w", err)
		}
		items = append(items, des)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return items, nil
}

func (r *designationRepositoryImpl) Update(ctx context.Context, id string, req designation.UpsertDesignationRequest) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE designations SET name = $1, description = $2, updated_at = NOW() WHERE id = $3
	`, req.Name, req.Description, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return designation.ErrDesignationExists
		}
		return fmt.Errorf("failed to update designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}

func (r *designationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM designations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete designation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return designation.ErrDesignationNotFound
	}
	return nil
}
