package models

type Direction string

const (
	DirectionMoscow      Direction = "moscow"
	DirectionSPB         Direction = "spb"
	DirectionNovosibirsk Direction = "novosibirsk"
)

type FlightStatus string

const (
	FlightPlanned  FlightStatus = "planned"
	FlightReady    FlightStatus = "ready"
	FlightDeparted FlightStatus = "departed"
	FlightArrived  FlightStatus = "arrived"
)

// Flight is a scheduled rail movement grouping zero or more shipments
type Flight struct {
	ID        string       `json:"id"`
	Number    string       `json:"number"`
	Direction Direction    `json:"direction"`
	PlanDate  string       `json:"plan_date"`
	FactDate  string       `json:"fact_date"` // Empty until departed
	Status    FlightStatus `json:"status"`
}

// FlightPatch carries the fields of a partial flight update
type FlightPatch struct {
	Number    *string       `json:"number,omitempty"`
	Direction *Direction    `json:"direction,omitempty"`
	PlanDate  *string       `json:"plan_date,omitempty"`
	FactDate  *string       `json:"fact_date,omitempty"`
	Status    *FlightStatus `json:"status,omitempty"`
}

func (p FlightPatch) Apply(f *Flight) {
	if p.Number != nil {
		f.Number = *p.Number
	}
	if p.Direction != nil {
		f.Direction = *p.Direction
	}
	if p.PlanDate != nil {
		f.PlanDate = *p.PlanDate
	}
	if p.FactDate != nil {
		f.FactDate = *p.FactDate
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
}

// CreateFlightRequest represents the request body for creating a flight from the planning section
type CreateFlightRequest struct {
	Number    string    `json:"number"`
	Direction Direction `json:"direction"`
	PlanDate  string    `json:"plan_date"`
	FactDate  string    `json:"fact_date"`
}

// FlightBoardItem is a flight together with its shipments and readiness
type FlightBoardItem struct {
	Flight       Flight     `json:"flight"`
	Shipments    []Shipment `json:"shipments"`
	ReadyCount   int        `json:"ready_count"`
	ReadyPercent int        `json:"ready_percent"`
}
