package hubclient

import (
	"context"
	"log/slog"
)

type api interface {
	List(ctx context.Context) ([]Notification, error)
	Dismiss(ctx context.Context, notificationType, entityID string) error
}

// Hub keeps a local notification list in sync with the server. Dismissals
// are applied locally first and rolled back if the server rejects them.
type Hub struct {
	api   api
	state *State
	log   *slog.Logger
}

// NewHub creates a Hub with an empty list. Call Refresh to load it.
func NewHub(client api, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		api:   client,
		state: NewState(nil),
		log:   logger.With("component", "hubclient"),
	}
}

// Notifications returns the current local list.
func (h *Hub) Notifications() []Notification {
	return h.state.Snapshot()
}

// Refresh replaces the local list with the server's.
func (h *Hub) Refresh(ctx context.Context) error {
	items, err := h.api.List(ctx)
	if err != nil {
		return err
	}
	h.state.Replace(items)
	return nil
}

// Dismiss hides the notification immediately and records the dismissal.
// If the server call fails the notification is restored and the failure
// is only logged. On success the list is refreshed from the server.
func (h *Hub) Dismiss(ctx context.Context, id string) {
	n, ok := h.state.Find(id)
	if !ok {
		h.log.DebugContext(ctx, "dismiss of unknown notification", slog.String("id", id))
		return
	}

	h.state.Apply(RemoveByID{ID: id})

	if err := h.api.Dismiss(ctx, n.NotificationType, n.EntityID); err != nil {
		h.state.Apply(Restore{Notification: n})
		h.log.WarnContext(ctx, "dismiss failed, notification restored",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.Refresh(ctx); err != nil {
		h.log.WarnContext(ctx, "refresh after dismiss failed",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
}

// SymptomLogged hides the symptom reminder of the track right away; the
// next Refresh confirms it from the server.
func (h *Hub) SymptomLogged(slug string) {
	h.state.Apply(RemoveByTrackSlug{Slug: slug})
}
