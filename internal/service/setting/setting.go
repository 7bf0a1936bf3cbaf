package setting

import (
	"context"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/setting"
)

type SettingsService interface {
	Get(ctx context.Context) (setting.Settings, error)
	Update(ctx context.Context, req setting.UpdateSettingsRequest) (setting.Settings, error)
}

type settingsServiceImpl struct {
	repo setting.SettingsRepository
}

func NewSettingsService(repo setting.SettingsRepository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (setting.Settings, error) {
	return s.repo.Get(ctx)
}

func (s *settingsServiceImpl) Update(ctx context.Context, req setting.UpdateSettingsRequest) (setting.Settings, error) {
	if err := req.Validate(); err != nil {
		return setting.Settings{}, err
	}
	if err := s.repo.Update(ctx, req); err != nil {
		return setting.Settings{}, err
	}
	return s.repo.Get(ctx)
}
