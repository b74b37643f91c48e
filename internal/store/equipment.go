package store

import (
	"fmt"

	"polar-backend/internal/models"
)

func (s *Store) equipmentIndex(id string) int {
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			return i
		}
	}
	return -1
}

func validateEquipment(e models.Equipment) error {
	if e.ID == "" {
		return fmt.Errorf("equipment id is required: %w", ErrInvalid)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("equipment type %q: %w", e.Type, ErrInvalid)
	}
	if !e.Status.Valid() {
		return fmt.Errorf("equipment status %q: %w", e.Status, ErrInvalid)
	}
	return nil
}

func (s *Store) AddEquipment(e models.Equipment) error {
	if err := validateEquipment(e); err != nil {
		return err
	}

	s.mu.Lock()
	if s.equipmentIndex(e.ID) >= 0 {
		s.mu.Unlock()
		return fmt.Errorf("equipment %s: %w", e.ID, ErrDuplicateID)
	}
	s.equipment = append(s.equipment, e)
	s.commit(Event{Kind: EventEquipmentAdded, EntityID: e.ID})
	return nil
}

// UpdateEquipment merges p into the equipment record and logs the edit.
// Unlike shipments, no edited-by field is stamped on the record.
func (s *Store) UpdateEquipment(id string, p models.EquipmentPatch, a models.Actor) error {
	s.mu.Lock()
	i := s.equipmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("equipment %s: %w", id, ErrNotFound)
	}

	updated := s.equipment[i]
	p.Apply(&updated)
	if err := validateEquipment(updated); err != nil {
		s.mu.Unlock()
		return err
	}
	s.equipment[i] = updated

	entry := s.appendLog(a, models.ActionEditEquipment, models.EntityEquipmentLabel, id, s.timestamp())
	s.commit(Event{Kind: EventEquipmentUpdated, EntityID: id, Log: &entry})
	return nil
}

func (s *Store) DeleteEquipment(id string) error {
	s.mu.Lock()
	i := s.equipmentIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("equipment %s: %w", id, ErrNotFound)
	}
	s.equipment = append(s.equipment[:i:i], s.equipment[i+1:]...)
	s.commit(Event{Kind: EventEquipmentDeleted, EntityID: id})
	return nil
}
