package models

// CountRow is one labelled count with its share of the total, rounded to whole percent
type CountRow struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// TerminalCount holds per-terminal equipment and shipment totals
type TerminalCount struct {
	Terminal  string `json:"terminal"`
	Equipment int    `json:"equipment"`
	Shipments int    `json:"shipments"`
}

// DirectionCount holds per-direction flight totals and the shipments assigned to those flights
type DirectionCount struct {
	Direction Direction `json:"direction"`
	Label     string    `json:"label"`
	Flights   int       `json:"flights"`
	Shipments int       `json:"shipments"`
}

// Dashboard is the landing-page overview
type Dashboard struct {
	EquipmentTotal    int              `json:"equipment_total"`
	EquipmentByType   []CountRow       `json:"equipment_by_type"`
	EquipmentByStatus []CountRow       `json:"equipment_by_status"`
	ShipmentsReady    int              `json:"shipments_ready"`
	ShipmentsNotReady int              `json:"shipments_not_ready"`
	ReadyPercent      int              `json:"ready_percent"` // ready / (ready + not ready)
	Terminals         []TerminalCount  `json:"terminals"`     // Only terminals with something staged
	Directions        []DirectionCount `json:"directions"`
	RecentLogs        []ActionLog      `json:"recent_logs"`
}

// ReportSummary backs the reports section and the summary PDF
type ReportSummary struct {
	ShipmentsTotal     int              `json:"shipments_total"`
	ShipmentsReady     int              `json:"shipments_ready"`
	ShipmentsNotReady  int              `json:"shipments_not_ready"`
	ShipmentsInTransit int              `json:"shipments_in_transit"`
	ShipmentsDelivered int              `json:"shipments_delivered"`
	TotalWeightTonnes  string           `json:"total_weight_tonnes"` // One decimal, e.g. 99.8
	AvgWeightTonnes    string           `json:"avg_weight_tonnes"`
	EquipmentTotal     int              `json:"equipment_total"`
	EquipmentByType    []CountRow       `json:"equipment_by_type"`
	EquipmentChecked   int              `json:"equipment_checked"`
	EquipmentBroken    int              `json:"equipment_broken"`
	Directions         []DirectionCount `json:"directions"`
	Terminals          []TerminalCount  `json:"terminals"`
	GeneratedAt        string           `json:"generated_at"`
}

// AccountsView is the accounts section: users without passwords and the recent activity
type AccountsView struct {
	Users []User      `json:"users"`
	Logs  []ActionLog `json:"logs"`
}
