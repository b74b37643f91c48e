package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/internal/timeutil"

	"github.com/google/uuid"
)

// RecentLogLimit is how many log entries the accounts and dashboard views show
const RecentLogLimit = 50

// QueryService answers the read-side questions of each desk section and builds
// new records for the creation forms
type QueryService struct {
	Store *store.Store
}

func NewQueryService(st *store.Store) *QueryService {
	return &QueryService{Store: st}
}

// FilterShipments matches the planning table: q against every field, exact status and flight
func (s *QueryService) FilterShipments(f models.ShipmentFilter) []models.Shipment {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]models.Shipment, 0)
	for _, sh := range s.Store.Shipments() {
		if f.Status != "" && sh.Status != f.Status {
			continue
		}
		if f.FlightID != "" && sh.FlightID != f.FlightID {
			continue
		}
		if q != "" && !anyContains(q, shipmentFields(sh)...) {
			continue
		}
		result = append(result, sh)
	}
	return result
}

// SearchRequests matches the requests list on request code, client and cargo
func (s *QueryService) SearchRequests(search string) []models.Shipment {
	q := strings.ToLower(strings.TrimSpace(search))
	result := make([]models.Shipment, 0)
	for _, sh := range s.Store.Shipments() {
		if q == "" || anyContains(q, sh.Request, sh.Client, sh.Cargo) {
			result = append(result, sh)
		}
	}
	return result
}

func (s *QueryService) FilterEquipment(f models.EquipmentFilter) []models.Equipment {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	result := make([]models.Equipment, 0)
	for _, e := range s.Store.Equipment() {
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if f.Terminal != "" && e.Location != f.Terminal {
			continue
		}
		if q != "" && !anyContains(q, e.Number, e.Location) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// FlightBoard lists every flight with its shipments and how many of them are ready
func (s *QueryService) FlightBoard() []models.FlightBoardItem {
	shipments := s.Store.Shipments()
	flights := s.Store.Flights()

	board := make([]models.FlightBoardItem, 0, len(flights))
	for _, f := range flights {
		item := models.FlightBoardItem{Flight: f, Shipments: make([]models.Shipment, 0)}
		for _, sh := range shipments {
			if sh.FlightID == f.ID {
				item.Shipments = append(item.Shipments, sh)
				if sh.Status == models.ShipmentReady {
					item.ReadyCount++
				}
			}
		}
		item.ReadyPercent = percent(item.ReadyCount, len(item.Shipments))
		board = append(board, item)
	}
	return board
}

func (s *QueryService) Dashboard() models.Dashboard {
	shipments := s.Store.Shipments()
	equipment := s.Store.Equipment()
	flights := s.Store.Flights()

	d := models.Dashboard{
		EquipmentTotal:    len(equipment),
		EquipmentByType:   equipmentByType(equipment),
		EquipmentByStatus: equipmentByStatus(equipment),
		Terminals:         terminalCounts(shipments, equipment),
		Directions:        directionCounts(shipments, flights),
		RecentLogs:        s.Store.Logs(RecentLogLimit),
	}
	for _, sh := range shipments {
		switch sh.Status {
		case models.ShipmentReady:
			d.ShipmentsReady++
		case models.ShipmentNotReady:
			d.ShipmentsNotReady++
		}
	}
	d.ReadyPercent = percent(d.ShipmentsReady, d.ShipmentsReady+d.ShipmentsNotReady)
	return d
}

func (s *QueryService) Accounts() models.AccountsView {
	return models.AccountsView{
		Users: s.Store.Users(),
		Logs:  s.Store.Logs(RecentLogLimit),
	}
}

// CreateRequest builds a shipment from the requests form and adds it.
// The display number continues the current count: 007 after six shipments.
func (s *QueryService) CreateRequest(req models.CreateRequestRequest) (models.Shipment, error) {
	if strings.TrimSpace(req.Request) == "" || strings.TrimSpace(req.Client) == "" {
		return models.Shipment{}, fmt.Errorf("request and client are required: %w", store.ErrInvalid)
	}

	sh := models.Shipment{
		ID:              newID("s"),
		Number:          fmt.Sprintf("%03d", len(s.Store.Shipments())+1),
		Request:         req.Request,
		Client:          req.Client,
		ContainerNumber: req.ContainerNumber,
		Footage:         orDefault(req.Footage, "40HC"),
		DeliveryDate:    req.DeliveryDate,
		Places:          req.Places,
		Weight:          req.Weight,
		Cargo:           req.Cargo,
		TempMode:        orDefault(req.TempMode, "-18"),
		Status:          models.ShipmentNotReady,
		Terminal:        orDefault(req.Terminal, models.Terminals[0]),
		Destination:     req.Destination,
		RequestName:     req.RequestName,
		Comment:         req.Comment,
		Subsidy:         orDefault(req.Subsidy, "Нет"),
		FlightID:        req.FlightID,
	}
	if err := s.Store.AddShipment(sh); err != nil {
		return models.Shipment{}, err
	}
	return sh, nil
}

// CreateEquipment adds a unit checked today; new units default to an unchecked container at ПИК
func (s *QueryService) CreateEquipment(req models.CreateEquipmentRequest) (models.Equipment, error) {
	if strings.TrimSpace(req.Number) == "" {
		return models.Equipment{}, fmt.Errorf("equipment number is required: %w", store.ErrInvalid)
	}

	e := models.Equipment{
		ID:        newID("e"),
		Number:    req.Number,
		Type:      req.Type,
		Status:    req.Status,
		Location:  orDefault(req.Location, models.Terminals[0]),
		LastCheck: timeutil.Today(),
		Comment:   req.Comment,
	}
	if e.Type == "" {
		e.Type = models.EquipmentContainer
	}
	if e.Status == "" {
		e.Status = models.EquipmentUnchecked
	}
	if err := s.Store.AddEquipment(e); err != nil {
		return models.Equipment{}, err
	}
	return e, nil
}

// CreateFlight adds a planned flight; number, direction and plan date are required
func (s *QueryService) CreateFlight(req models.CreateFlightRequest) (models.Flight, error) {
	if strings.TrimSpace(req.Number) == "" || req.Direction == "" || strings.TrimSpace(req.PlanDate) == "" {
		return models.Flight{}, fmt.Errorf("number, direction and plan date are required: %w", store.ErrInvalid)
	}

	f := models.Flight{
		ID:        newID("f"),
		Number:    req.Number,
		Direction: req.Direction,
		PlanDate:  req.PlanDate,
		FactDate:  req.FactDate,
		Status:    models.FlightPlanned,
	}
	if err := s.Store.AddFlight(f); err != nil {
		return models.Flight{}, err
	}
	return f, nil
}

func newID(prefix string) string {
	return prefix + uuid.NewString()[:8]
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func anyContains(q string, values ...string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func shipmentFields(sh models.Shipment) []string {
	return []string{
		sh.ID, sh.Number, sh.Request, sh.Client, sh.ContainerNumber, sh.Footage,
		sh.DeliveryDate, sh.DocsDate, sh.InspectionDate,
		strconv.Itoa(sh.Places), strconv.Itoa(sh.Weight),
		sh.Cargo, sh.TempMode, sh.VSDNumber, string(sh.Status), sh.Terminal, sh.Destination,
		sh.GNGCode, sh.ETSNVCode, sh.RequestName, sh.Comment, sh.DTNumber, sh.BillOfLading,
		sh.Subsidy, sh.FlightID, sh.EditedBy, sh.EditedAt,
	}
}

// percent returns part/total as a whole percentage, 0 when total is 0
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

func equipmentByType(equipment []models.Equipment) []models.CountRow {
	types := []models.EquipmentType{models.EquipmentContainer, models.EquipmentDGK, models.EquipmentGenset}
	rows := make([]models.CountRow, 0, len(types))
	for _, t := range types {
		n := 0
		for _, e := range equipment {
			if e.Type == t {
				n++
			}
		}
		rows = append(rows, models.CountRow{Key: string(t), Label: models.EquipmentTypeLabels[t], Count: n, Percent: percent(n, len(equipment))})
	}
	return rows
}

func equipmentByStatus(equipment []models.Equipment) []models.CountRow {
	statuses := []models.EquipmentStatus{models.EquipmentChecked, models.EquipmentUnchecked, models.EquipmentBroken}
	rows := make([]models.CountRow, 0, len(statuses))
	for _, st := range statuses {
		n := 0
		for _, e := range equipment {
			if e.Status == st {
				n++
			}
		}
		rows = append(rows, models.CountRow{Key: string(st), Label: models.EquipmentStatusLabels[st], Count: n, Percent: percent(n, len(equipment))})
	}
	return rows
}

// terminalCounts skips terminals with neither equipment nor shipments
func terminalCounts(shipments []models.Shipment, equipment []models.Equipment) []models.TerminalCount {
	counts := make([]models.TerminalCount, 0, len(models.Terminals))
	for _, t := range models.Terminals {
		tc := models.TerminalCount{Terminal: t}
		for _, e := range equipment {
			if e.Location == t {
				tc.Equipment++
			}
		}
		for _, sh := range shipments {
			if sh.Terminal == t {
				tc.Shipments++
			}
		}
		if tc.Equipment > 0 || tc.Shipments > 0 {
			counts = append(counts, tc)
		}
	}
	return counts
}

func directionCounts(shipments []models.Shipment, flights []models.Flight) []models.DirectionCount {
	counts := make([]models.DirectionCount, 0, len(models.Directions))
	for _, d := range models.Directions {
		dc := models.DirectionCount{Direction: d, Label: models.DirectionLabels[d]}
		ids := make(map[string]bool)
		for _, f := range flights {
			if f.Direction == d {
				dc.Flights++
				ids[f.ID] = true
			}
		}
		for _, sh := range shipments {
			if ids[sh.FlightID] {
				dc.Shipments++
			}
		}
		counts = append(counts, dc)
	}
	return counts
}
