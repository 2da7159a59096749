package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/hermes/internal/location"
	"github.com/UnknownOlympus/hermes/internal/models"
	"github.com/UnknownOlympus/hermes/internal/service"
	"github.com/UnknownOlympus/hermes/internal/share"
	"github.com/go-chi/chi/v5"
)

// Locator is the part of the orchestrator the API depends on.
type Locator interface {
	Run(ctx context.Context, src location.Source) (service.Snapshot, error)
	Snapshot() service.Snapshot
	CopyText() (string, error)
	SharePayload() (share.Payload, error)
}

// Handler provides the HTTP handlers of the location API.
type Handler struct {
	locator Locator
	log     *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(locator Locator, log *slog.Logger) *Handler {
	return &Handler{locator: locator, log: log}
}

// Routes registers the API routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/locate", h.Locate)
	r.Get("/state", h.State)
	r.Get("/copy", h.Copy)
	r.Get("/share", h.Share)

	return r
}

// Locate runs a location request. The body is an optional position report;
// without one the configured source is used. A report needs either an error
// or both coordinates. The reply is the snapshot of this request's attempt.
func (h *Handler) Locate(w http.ResponseWriter, r *http.Request) {
	var src location.Source

	var report models.Position
	err := json.NewDecoder(r.Body).Decode(&report)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid position report")
		return
	case report.Error == nil && (report.Latitude == nil || report.Longitude == nil):
		writeError(w, http.StatusBadRequest, "position report needs latitude and longitude, or an error")
		return
	default:
		src = location.NewReportedSource(report)
	}

	snap, err := h.locator.Run(r.Context(), src)
	if err != nil {
		h.log.DebugContext(r.Context(), "Location request finished with error", "error", err)
	}

	writeJSON(w, statusFor(err), snap)
}

// State returns the current snapshot.
func (h *Handler) State(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.locator.Snapshot())
}

// Copy returns the clipboard summary of the last resolved address.
func (h *Handler) Copy(w http.ResponseWriter, _ *http.Request) {
	text, err := h.locator.CopyText()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"text": text})
}

// Share returns the share payload of the last resolved address.
func (h *Handler) Share(w http.ResponseWriter, _ *http.Request) {
	payload, err := h.locator.SharePayload()
	if err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, payload)
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, service.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, models.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
