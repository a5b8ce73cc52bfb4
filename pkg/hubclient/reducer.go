package hubclient

import (
	"slices"
	"strings"
)

// Action is an input to Reduce.
type Action any

// RemoveByID drops the notification with the given id.
type RemoveByID struct {
	ID string
}

// RemoveByTrackSlug drops symptom reminders for the track with the given
// slug. Other kinds are kept even if they reference the same track.
type RemoveByTrackSlug struct {
	Slug string
}

// Restore puts a notification back, typically after a failed dismissal.
type Restore struct {
	Notification Notification
}

// Reduce returns the state that results from applying action. It never
// modifies state; unknown actions return it unchanged. After Restore the
// list is ordered by notification id and holds the restored id once.
func Reduce(state []Notification, action Action) []Notification {
	switch a := action.(type) {
	case RemoveByID:
		return removeWhere(state, func(n Notification) bool { return n.ID == a.ID })
	case RemoveByTrackSlug:
		return removeWhere(state, func(n Notification) bool {
			return n.Kind == KindSymptomReminder && n.TrackSlug != nil && *n.TrackSlug == a.Slug
		})
	case Restore:
		return restore(state, a.Notification)
	default:
		return state
	}
}

func removeWhere(state []Notification, match func(Notification) bool) []Notification {
	out := make([]Notification, 0, len(state))
	for _, n := range state {
		if !match(n) {
			out = append(out, n)
		}
	}
	return out
}

func restore(state []Notification, n Notification) []Notification {
	out := slices.Clone(state)
	if !slices.ContainsFunc(out, func(cur Notification) bool { return cur.ID == n.ID }) {
		out = append(out, n)
	}
	slices.SortStableFunc(out, func(a, b Notification) int { return strings.Compare(a.ID, b.ID) })
	return out
}
