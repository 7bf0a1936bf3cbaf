package postgresql

import (
	"context"
	"fmt"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/setting"
	"github.com/stratus-hr/hrd-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) setting.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

func (r *settingsRepositoryImpl) Get(ctx context.Context) (setting.Settings, error) {
	q := GetQuerier(ctx, r.db)

	var s setting.Settings
	err := q.QueryRow(ctx, `
		SELECT company_name, work_start, work_end, weekend_days, updated_at
		FROM settings WHERE id = 1
	`).Scan(&s.CompanyName, &s.WorkStart, &s.WorkEnd, &s.WeekendDays, &s.UpdatedAt)

	if err != nil {
		return setting.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

func (r *settingsRepositoryImpl) Update(ctx context.Context, req setting.UpdateSettingsRequest) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE settings
		SET company_name = COALESCE($1, company_name),
			work_start = COALESCE($2, work_start),
			work_end = COALESCE($3, work_end),
			weekend_days = COALESCE($4, weekend_days),
			updated_at = NOW()
		WHERE id = 1
	`, req.CompanyName, req.WorkStart, req.WorkEnd, req.WeekendDays)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
