package store

import "polar-backend/internal/models"

type EventKind string

const (
	EventLogin            EventKind = "session.login"
	EventLogout           EventKind = "session.logout"
	EventSection          EventKind = "session.section"
	EventSidebar          EventKind = "session.sidebar"
	EventTheme            EventKind = "session.theme"
	EventReset            EventKind = "store.reset"
	EventShipmentAdded    EventKind = "shipment.added"
	EventShipmentUpdated  EventKind = "shipment.updated"
	EventShipmentDeleted  EventKind = "shipment.deleted"
	EventShipmentMoved    EventKind = "shipment.moved"
	EventFlightAdded      EventKind = "flight.added"
	EventFlightUpdated    EventKind = "flight.updated"
	EventFlightDeleted    EventKind = "flight.deleted"
	EventEquipmentAdded   EventKind = "equipment.added"
	EventEquipmentUpdated EventKind = "equipment.updated"
	EventEquipmentDeleted EventKind = "equipment.deleted"
)

// Event describes one completed store operation
type Event struct {
	Kind     EventKind         `json:"kind"`
	EntityID string            `json:"entity_id,omitempty"`
	Log      *models.ActionLog `json:"log,omitempty"`
	Session  *models.Session   `json:"session,omitempty"`
}

// Listener receives events in call-completion order. A listener must not call
// store mutators synchronously.
type Listener func(Event)

// ThemeApplier is the presentation-layer collaborator that reflects the dark-mode flag
type ThemeApplier interface {
	ApplyTheme(dark bool)
}

type noopTheme struct{}

func (noopTheme) ApplyTheme(bool) {}

// Subscribe registers fn and returns a function that removes it
func (s *Store) Subscribe(fn Listener) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// commit releases the state lock and dispatches ev. Must be called with s.mu held.
// emitMu is taken before the state lock is released so listeners observe events in
// the same order the operations completed.
func (s *Store) commit(ev Event) {
	s.emitMu.Lock()
	s.mu.Unlock()
	defer s.emitMu.Unlock()

	s.subMu.Lock()
	listeners := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn(ev)
	}
}

// ChangesData reports whether the event altered entity collections or the log,
// as opposed to session-only UI state
func (k EventKind) ChangesData() bool {
	switch k {
	case EventLogin, EventLogout, EventSection, EventSidebar, EventTheme:
		return false
	}
	return true
}
