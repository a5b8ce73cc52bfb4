package hubclient

import (
	"slices"
	"sync"
)

// State holds the current notification list. It is safe for concurrent use.
type State struct {
	mu    sync.RWMutex
	items []Notification
}

// NewState returns a State holding a copy of initial.
func NewState(initial []Notification) *State {
	return &State{items: slices.Clone(initial)}
}

// Snapshot returns a copy of the current list.
func (s *State) Snapshot() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

// Apply reduces the current list with action and returns the result.
func (s *State) Apply(action Action) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Reduce(s.items, action)
	return slices.Clone(s.items)
}

// Replace swaps in a list fetched from the server.
func (s *State) Replace(items []Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = slices.Clone(items)
}

// Find returns the notification with the given id.
func (s *State) Find(id string) (Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return Notification{}, false
	}
	return s.items[i], true
}
