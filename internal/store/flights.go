package store

import (
	"fmt"

	"polar-backend/internal/models"
)

func (s *Store) flightIndex(id string) int {
	for i := range s.flights {
		if s.flights[i].ID == id {
			return i
		}
	}
	return -1
}

func validateFlight(f models.Flight) error {
	if f.ID == "" {
		return fmt.Errorf("flight id is required: %w", ErrInvalid)
	}
	if !f.Direction.Valid() {
		return fmt.Errorf("flight direction %q: %w", f.Direction, ErrInvalid)
	}
	if !f.Status.Valid() {
		return fmt.Errorf("flight status %q: %w", f.Status, ErrInvalid)
	}
	return nil
}

func (s *Store) AddFlight(f models.Flight) error {
	if err := validateFlight(f); err != nil {
		return err
	}

	s.mu.Lock()
	if s.flightIndex(f.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", f.ID, ErrDuplicateID)
	}
	s.flights = append(s.flights, f)
	s.commit(Event{Kind: EventFlightAdded, EntityID: f.ID})
	return nil
}

// UpdateFlight merges p into the flight. Not audited.
func (s *Store) UpdateFlight(id string, p models.FlightPatch) error {
	s.mu.Lock()
	i := s.flightIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", id, ErrNotFound)
	}

	updated := s.flights[i]
	p.Apply(&updated)
	if err := validateFlight(updated); err != nil {
		s.mu.Unlock()
		return err
	}
	s.flights[i] = updated
	s.commit(Event{Kind: EventFlightUpdated, EntityID: id})
	return nil
}

// DeleteFlight removes the flight and unassigns every shipment that referenced it,
// so no shipment is left pointing at a missing flight
func (s *Store) DeleteFlight(id string, a models.Actor) error {
	s.mu.Lock()
	i := s.flightIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", id, ErrNotFound)
	}
	s.flights = append(s.flights[:i:i], s.flights[i+1:]...)
	for j := range s.shipments {
		if s.shipments[j].FlightID == id {
			s.shipments[j].FlightID = ""
		}
	}

	entry := s.appendLog(a, models.ActionDeleteFlight, models.EntityFlightLabel, id, s.timestamp())
	s.commit(Event{Kind: EventFlightDeleted, EntityID: id, Log: &entry})
	return nil
}
