package models

type EquipmentType string

const (
	EquipmentContainer EquipmentType = "container"
	EquipmentDGK       EquipmentType = "dgk"
	EquipmentGenset    EquipmentType = "genset"
)

type EquipmentStatus string

const (
	EquipmentChecked   EquipmentStatus = "checked"
	EquipmentUnchecked EquipmentStatus = "unchecked"
	EquipmentBroken    EquipmentStatus = "broken"
)

// Equipment is a physical asset: a reefer container, a DGK/EGK unit or a genset
type Equipment struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Type      EquipmentType   `json:"type"`
	Status    EquipmentStatus `json:"status"`
	Location  string          `json:"location"`   // Terminal name
	LastCheck string          `json:"last_check"` // YYYY-MM-DD
	Comment   string          `json:"comment"`
}

// EquipmentPatch carries the fields of a partial equipment update; nil means untouched
type EquipmentPatch struct {
	Number    *string          `json:"number,omitempty"`
	Type      *EquipmentType   `json:"type,omitempty"`
	Status    *EquipmentStatus `json:"status,omitempty"`
	Location  *string          `json:"location,omitempty"`
	LastCheck *string          `json:"last_check,omitempty"`
	Comment   *string          `json:"comment,omitempty"`
}

// Apply merges the non-nil fields of p into e
func (p EquipmentPatch) Apply(e *Equipment) {
	if p.Number != nil {
		e.Number = *p.Number
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.LastCheck != nil {
		e.LastCheck = *p.LastCheck
	}
	if p.Comment != nil {
		e.Comment = *p.Comment
	}
}

// CreateEquipmentRequest represents the request body for adding equipment from the equipment section
type CreateEquipmentRequest struct {
	Number   string          `json:"number"`
	Type     EquipmentType   `json:"type"`
	Status   EquipmentStatus `json:"status"`
	Location string          `json:"location"`
	Comment  string          `json:"comment"`
}

// EquipmentFilter narrows the equipment listing; empty fields match everything
type EquipmentFilter struct {
	Search   string
	Type     EquipmentType
	Status   EquipmentStatus
	Terminal string
}
