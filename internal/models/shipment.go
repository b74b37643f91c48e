package models

type ShipmentStatus string

const (
	ShipmentReady     ShipmentStatus = "ready"
	ShipmentNotReady  ShipmentStatus = "not_ready"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentDelivered ShipmentStatus = "delivered"
)

// Shipment is a single client cargo booking tied to a container and optionally a flight
type Shipment struct {
	ID              string         `json:"id"`
	Number          string         `json:"number"`  // Sequential display number: 001, 002, ...
	Request         string         `json:"request"` // Request code, e.g. ЗЯ-2026-045
	Client          string         `json:"client"`
	ContainerNumber string         `json:"container_number"`
	Footage         string         `json:"footage"` // 20, 40, 40HC
	DeliveryDate    string         `json:"delivery_date"`
	DocsDate        string         `json:"docs_date"`
	InspectionDate  string         `json:"inspection_date"`
	Places          int            `json:"places"`
	Weight          int            `json:"weight"` // Kilograms
	Cargo           string         `json:"cargo"`
	TempMode        string         `json:"temp_mode"` // -18, +4, ...
	VSDNumber       string         `json:"vsd_number"`
	Status          ShipmentStatus `json:"status"`
	Terminal        string         `json:"terminal"`
	Destination     string         `json:"destination"`
	GNGCode         string         `json:"gng_code"`
	ETSNVCode       string         `json:"etsnv_code"`
	RequestName     string         `json:"request_name"`
	Comment         string         `json:"comment"`
	DTNumber        string         `json:"dt_number"`
	BillOfLading    string         `json:"bill_of_lading"`
	Subsidy         string         `json:"subsidy"`   // Да / Нет
	FlightID        string         `json:"flight_id"` // Empty = unassigned
	EditedBy        string         `json:"edited_by,omitempty"`
	EditedAt        string         `json:"edited_at,omitempty"`
}

// ShipmentPatch carries the fields of a partial shipment update; nil means untouched.
// EditedBy/EditedAt are not patchable, the store stamps them.
type ShipmentPatch struct {
	Number          *string         `json:"number,omitempty"`
	Request         *string         `json:"request,omitempty"`
	Client          *string         `json:"client,omitempty"`
	ContainerNumber *string         `json:"container_number,omitempty"`
	Footage         *string         `json:"footage,omitempty"`
	DeliveryDate    *string         `json:"delivery_date,omitempty"`
	DocsDate        *string         `json:"docs_date,omitempty"`
	InspectionDate  *string         `json:"inspection_date,omitempty"`
	Places          *int            `json:"places,omitempty"`
	Weight          *int            `json:"weight,omitempty"`
	Cargo           *string         `json:"cargo,omitempty"`
	TempMode        *string         `json:"temp_mode,omitempty"`
	VSDNumber       *string         `json:"vsd_number,omitempty"`
	Status          *ShipmentStatus `json:"status,omitempty"`
	Terminal        *string         `json:"terminal,omitempty"`
	Destination     *string         `json:"destination,omitempty"`
	GNGCode         *string         `json:"gng_code,omitempty"`
	ETSNVCode       *string         `json:"etsnv_code,omitempty"`
	RequestName     *string         `json:"request_name,omitempty"`
	Comment         *string         `json:"comment,omitempty"`
	DTNumber        *string         `json:"dt_number,omitempty"`
	BillOfLading    *string         `json:"bill_of_lading,omitempty"`
	Subsidy         *string         `json:"subsidy,omitempty"`
	FlightID        *string         `json:"flight_id,omitempty"`
}

// Apply merges the non-nil fields of p into s
func (p ShipmentPatch) Apply(s *Shipment) {
	setString(&s.Number, p.Number)
	setString(&s.Request, p.Request)
	setString(&s.Client, p.Client)
	setString(&s.ContainerNumber, p.ContainerNumber)
	setString(&s.Footage, p.Footage)
	setString(&s.DeliveryDate, p.DeliveryDate)
	setString(&s.DocsDate, p.DocsDate)
	setString(&s.InspectionDate, p.InspectionDate)
	if p.Places != nil {
		s.Places = *p.Places
	}
	if p.Weight != nil {
		s.Weight = *p.Weight
	}
	setString(&s.Cargo, p.Cargo)
	setString(&s.TempMode, p.TempMode)
	setString(&s.VSDNumber, p.VSDNumber)
	if p.Status != nil {
		s.Status = *p.Status
	}
	setString(&s.Terminal, p.Terminal)
	setString(&s.Destination, p.Destination)
	setString(&s.GNGCode, p.GNGCode)
	setString(&s.ETSNVCode, p.ETSNVCode)
	setString(&s.RequestName, p.RequestName)
	setString(&s.Comment, p.Comment)
	setString(&s.DTNumber, p.DTNumber)
	setString(&s.BillOfLading, p.BillOfLading)
	setString(&s.Subsidy, p.Subsidy)
	setString(&s.FlightID, p.FlightID)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// CreateRequestRequest represents the request body for a new client request (a shipment
// without id and number, both assigned on creation)
type CreateRequestRequest struct {
	Request         string `json:"request"`
	Client          string `json:"client"`
	ContainerNumber string `json:"container_number"`
	Footage         string `json:"footage"`
	DeliveryDate    string `json:"delivery_date"`
	Places          int    `json:"places"`
	Weight          int    `json:"weight"`
	Cargo           string `json:"cargo"`
	TempMode        string `json:"temp_mode"`
	Terminal        string `json:"terminal"`
	Destination     string `json:"destination"`
	RequestName     string `json:"request_name"`
	Comment         string `json:"comment"`
	Subsidy         string `json:"subsidy"`
	FlightID        string `json:"flight_id"`
}

// MoveShipmentRequest represents the request body for re-assigning a shipment to a flight
type MoveShipmentRequest struct {
	FlightID string `json:"flight_id"`
}

// ShipmentFilter narrows the planning table; empty fields match everything
type ShipmentFilter struct {
	Search   string
	Status   ShipmentStatus
	FlightID string
}
