package store

import (
	"fmt"

	"polar-backend/internal/models"
)

func (s *Store) shipmentIndex(id string) int {
	for i := range s.shipments {
		if s.shipments[i].ID == id {
			return i
		}
	}
	return -1
}

// flightRefOK reports whether flightID is empty or names an existing flight. Caller holds s.mu.
func (s *Store) flightRefOK(flightID string) bool {
	return flightID == "" || s.flightIndex(flightID) >= 0
}

func validateShipment(sh models.Shipment) error {
	if sh.ID == "" {
		return fmt.Errorf("shipment id is required: %w", ErrInvalid)
	}
	if !sh.Status.Valid() {
		return fmt.Errorf("shipment status %q: %w", sh.Status, ErrInvalid)
	}
	if sh.Weight < 0 || sh.Places < 0 {
		return fmt.Errorf("shipment weight and places must be non-negative: %w", ErrInvalid)
	}
	return nil
}

// AddShipment appends a fully formed shipment supplied by the caller
func (s *Store) AddShipment(sh models.Shipment) error {
	if err := validateShipment(sh); err != nil {
		return err
	}

	s.mu.Lock()
	if s.shipmentIndex(sh.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("shipment %s: %w", sh.ID, ErrDuplicateID)
	}
	if !s.flightRefOK(sh.FlightID) {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", sh.FlightID, ErrUnknownFlight)
	}
	s.shipments = append(s.shipments, sh)
	s.commit(Event{Kind: EventShipmentAdded, EntityID: sh.ID})
	return nil
}

// UpdateShipment merges p into the shipment, stamps EditedBy/EditedAt even for an
// empty patch and appends one "Редактирование отправки" log entry
func (s *Store) UpdateShipment(id string, p models.ShipmentPatch, a models.Actor) error {
	s.mu.Lock()
	i := s.shipmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("shipment %s: %w", id, ErrNotFound)
	}

	updated := s.shipments[i]
	p.Apply(&updated)
	if err := validateShipment(updated); err != nil {
		s.mu.Unlock()
		return err
	}
	if p.FlightID != nil && !s.flightRefOK(*p.FlightID) {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", *p.FlightID, ErrUnknownFlight)
	}

	stamp := s.timestamp()
	updated.EditedBy = a.UserName
	updated.EditedAt = stamp
	s.shipments[i] = updated

	entry := s.appendLog(a, models.ActionEditShipment, models.EntityShipmentLabel, id, stamp)
	s.commit(Event{Kind: EventShipmentUpdated, EntityID: id, Log: &entry})
	return nil
}

// DeleteShipment removes the shipment. Not audited.
func (s *Store) DeleteShipment(id string) error {
	s.mu.Lock()
	i := s.shipmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("shipment %s: %w", id, ErrNotFound)
	}
	s.shipments = append(s.shipments[:i:i], s.shipments[i+1:]...)
	s.commit(Event{Kind: EventShipmentDeleted, EntityID: id})
	return nil
}

// MoveShipmentToFlight re-assigns the shipment and logs the move. Only FlightID
// changes; EditedBy/EditedAt are left as they were. An empty flightID unassigns.
func (s *Store) MoveShipmentToFlight(shipmentID, flightID string, a models.Actor) error {
	s.mu.Lock()
	i := s.shipmentIndex(shipmentID)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("shipment %s: %w", shipmentID, ErrNotFound)
	}
	if !s.flightRefOK(flightID) {
		s.mu.Unlock()
		return fmt.Errorf("flight %s: %w", flightID, ErrUnknownFlight)
	}

	s.shipments[i].FlightID = flightID

	entry := s.appendLog(a, models.ActionMovePrefix+flightID, models.EntityShipmentLabel, shipmentID, s.timestamp())
	s.commit(Event{Kind: EventShipmentMoved, EntityID: shipmentID, Log: &entry})
	return nil
}
