package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
	"github.com/heartmarshall/healthhub-backend/internal/service/hub"
)

const maxDismissBodyBytes = 4 << 10

type hubService interface {
	ListNotifications(ctx context.Context) ([]domain.Notification, error)
	Dismiss(ctx context.Context, input hub.DismissInput) error
}

// HubHandler serves the hub notification endpoints.
type HubHandler struct {
	svc hubService
	log *slog.Logger
}

// NewHubHandler creates a HubHandler.
func NewHubHandler(svc hubService, logger *slog.Logger) *HubHandler {
	return &HubHandler{svc: svc, log: logger.With("handler", "hub")}
}

type notificationResponse struct {
	ID               string  `json:"id"`
	Kind             string  `json:"kind"`
	Title            string  `json:"title"`
	Message          string  `json:"message"`
	CTALabel         *string `json:"ctaLabel,omitempty"`
	Href             *string `json:"href,omitempty"`
	EntityID         string  `json:"entityId"`
	NotificationType string  `json:"notificationType"`
	TrackSlug        *string `json:"trackSlug,omitempty"`
}

type dismissRequest struct {
	Type     string `json:"type"`
	EntityID string `json:"entityId"`
}

type dismissResponse struct {
	OK bool `json:"ok"`
}

// List handles GET /api/hub/notifications.
func (h *HubHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.svc.ListNotifications(r.Context())
	if err != nil {
		h.handleError(w, r, err, true)
		return
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, toNotificationResponse(n))
	}
	writeData(w, http.StatusOK, out)
}

// Dismiss handles POST /api/hub/notifications/dismiss.
func (h *HubHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxDismissBodyBytes)

	var req dismissRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.Dismiss(r.Context(), hub.DismissInput{
		Type:     domain.NotificationType(req.Type),
		EntityID: req.EntityID,
	})
	if err != nil {
		h.handleError(w, r, err, false)
		return
	}

	writeData(w, http.StatusOK, dismissResponse{OK: true})
}

// handleError maps service errors to responses. When exposeInternal is set,
// unexpected errors carry their message so a failed read is visible to the
// client instead of looking like an empty hub.
func (h *HubHandler) handleError(w http.ResponseWriter, r *http.Request, err error, exposeInternal bool) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		msg := "internal server error"
		if exposeInternal {
			msg = err.Error()
		}
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:               n.ID,
		Kind:             n.Kind.String(),
		Title:            n.Title,
		Message:          n.Message,
		CTALabel:         n.CTALabel,
		Href:             n.Href,
		EntityID:         n.EntityID,
		NotificationType: n.NotificationType.String(),
		TrackSlug:        n.TrackSlug,
	}
}
