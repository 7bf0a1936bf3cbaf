package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/event"
	"github.com/stratus-hr/hrd-backend-go/internal/handler/http/response"
	eventservice "github.com/stratus-hr/hrd-backend-go/internal/service/event"
)

type EventHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EventHandlerImpl struct {
	eventService eventservice.EventService
}

func NewEventHandler(eventService eventservice.EventService) EventHandler {
	return &EventHandlerImpl{eventService: eventService}
}

func (e *EventHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req event.UpsertEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := e.eventService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Event created", created)
}

func (e *EventHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := e.eventService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, ev)
}

// List returns events overlapping the requested range, defaulting to the
// current month.
func (e *EventHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "From must be a YYYY-MM-DD date", nil)
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.BadRequest(w, "To must be a YYYY-MM-DD date", nil)
			return
		}
		to = parsed
	}

	events, err := e.eventService.ListByRange(r.Context(), from, to)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, events)
}

func (e *EventHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req event.UpsertEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update event decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := e.eventService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event updated", updated)
}

func (e *EventHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := e.eventService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Event deleted", nil)
}
