package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/setting"
	"github.com/stratus-hr/hrd-backend-go/internal/handler/http/response"
	settingservice "github.com/stratus-hr/hrd-backend-go/internal/service/setting"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type SettingsHandlerImpl struct {
	settingsService settingservice.SettingsService
}

func NewSettingsHandler(settingsService settingservice.SettingsService) SettingsHandler {
	return &SettingsHandlerImpl{settingsService: settingsService}
}

func (s *SettingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := s.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

func (s *SettingsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := s.settingsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Settings updated", updated)
}
