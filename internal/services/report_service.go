package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"polar-backend/internal/cache"
	"polar-backend/internal/models"
	"polar-backend/internal/store"
	"polar-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Export file names offered to the browser
const (
	ShipmentsCSVName = "отправки.csv"
	EquipmentCSVName = "оборудование.csv"
	PlanningCSVName  = "planning.csv"
	SummaryPDFName   = "otchet.pdf"
)

const utf8BOM = "\uFEFF"

type ReportService struct {
	Query    *QueryService
	Store    *store.Store
	fontPath string
	log      *zap.Logger
}

func NewReportService(query *QueryService, fontPath string, log *zap.Logger) *ReportService {
	return &ReportService{
		Query:    query,
		Store:    query.Store,
		fontPath: fontPath,
		log:      log,
	}
}

// Summary computes the reports overview; a cached copy is served while the store is unchanged
func (s *ReportService) Summary(ctx context.Context) models.ReportSummary {
	key := cache.Key(cache.SummaryKey)
	if data, ok := cache.GetCached(ctx, key); ok {
		var cached models.ReportSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached
		}
	}

	summary := s.buildSummary()
	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, key, data, cache.ReportTTL)
	}
	return summary
}

func (s *ReportService) buildSummary() models.ReportSummary {
	shipments := s.Store.Shipments()
	equipment := s.Store.Equipment()
	flights := s.Store.Flights()

	sum := models.ReportSummary{
		ShipmentsTotal:  len(shipments),
		EquipmentTotal:  len(equipment),
		EquipmentByType: equipmentByType(equipment),
		Directions:      directionCounts(shipments, flights),
		Terminals:       terminalCounts(shipments, equipment),
		GeneratedAt:     timeutil.FormatRU(timeutil.Now()),
	}

	totalWeight := 0
	for _, sh := range shipments {
		totalWeight += sh.Weight
		switch sh.Status {
		case models.ShipmentReady:
			sum.ShipmentsReady++
		case models.ShipmentNotReady:
			sum.ShipmentsNotReady++
		case models.ShipmentInTransit:
			sum.ShipmentsInTransit++
		case models.ShipmentDelivered:
			sum.ShipmentsDelivered++
		}
	}
	avgWeight := 0
	if len(shipments) > 0 {
		avgWeight = int(float64(totalWeight)/float64(len(shipments)) + 0.5)
	}
	sum.TotalWeightTonnes = tonnes(totalWeight)
	sum.AvgWeightTonnes = tonnes(avgWeight)

	for _, e := range equipment {
		switch e.Status {
		case models.EquipmentChecked:
			sum.EquipmentChecked++
		case models.EquipmentBroken:
			sum.EquipmentBroken++
		}
	}
	return sum
}

func tonnes(kg int) string {
	return strconv.FormatFloat(float64(kg)/1000, 'f', 1, 64)
}

// ShipmentsCSV exports every shipment with its flight number resolved
func (s *ReportService) ShipmentsCSV() ([]byte, error) {
	flightNumbers := make(map[string]string)
	for _, f := range s.Store.Flights() {
		flightNumbers[f.ID] = f.Number
	}

	header := []string{"Заявка", "Клиент", "Контейнер", "Груз", "Вес", "Терминал", "Статус", "Рейс"}
	shipments := s.Store.Shipments()
	rows := make([][]string, 0, len(shipments))
	for _, sh := range shipments {
		rows = append(rows, []string{
			sh.Request, sh.Client, sh.ContainerNumber, sh.Cargo, strconv.Itoa(sh.Weight),
			sh.Terminal, string(sh.Status), flightNumbers[sh.FlightID],
		})
	}
	return writeCSV(header, rows)
}

func (s *ReportService) EquipmentCSV() ([]byte, error) {
	header := []string{"Номер", "Тип", "Статус", "Терминал", "Последняя проверка", "Комментарий"}
	equipment := s.Store.Equipment()
	rows := make([][]string, 0, len(equipment))
	for _, e := range equipment {
		rows = append(rows, []string{e.Number, string(e.Type), string(e.Status), e.Location, e.LastCheck, e.Comment})
	}
	return writeCSV(header, rows)
}

// planningColumns are the planning table columns in display order
var planningColumns = []struct {
	label string
	value func(models.Shipment) string
}{
	{"№", func(s models.Shipment) string { return s.Number }},
	{"Заявка", func(s models.Shipment) string { return s.Request }},
	{"Клиент", func(s models.Shipment) string { return s.Client }},
	{"Контейнер", func(s models.Shipment) string { return s.ContainerNumber }},
	{"Футы", func(s models.Shipment) string { return s.Footage }},
	{"Дата завоза", func(s models.Shipment) string { return s.DeliveryDate }},
	{"Дата документов", func(s models.Shipment) string { return s.DocsDate }},
	{"Груз", func(s models.Shipment) string { return s.Cargo }},
	{"Т°", func(s models.Shipment) string { return s.TempMode }},
	{"Вес, кг", func(s models.Shipment) string { return strconv.Itoa(s.Weight) }},
	{"Статус", func(s models.Shipment) string { return string(s.Status) }},
	{"Терминал", func(s models.Shipment) string { return s.Terminal }},
	{"Станция назначения", func(s models.Shipment) string { return s.Destination }},
	{"Комментарий", func(s models.Shipment) string { return s.Comment }},
}

// PlanningCSV exports the planning table over the filtered shipments
func (s *ReportService) PlanningCSV(f models.ShipmentFilter) ([]byte, error) {
	header := make([]string, 0, len(planningColumns))
	for _, c := range planningColumns {
		header = append(header, c.label)
	}

	shipments := s.Query.FilterShipments(f)
	rows := make([][]string, 0, len(shipments))
	for _, sh := range shipments {
		row := make([]string, 0, len(planningColumns))
		for _, c := range planningColumns {
			row = append(row, c.value(sh))
		}
		rows = append(rows, row)
	}
	return writeCSV(header, rows)
}

// writeCSV renders a BOM-prefixed, semicolon-separated document with \n line
// breaks and no trailing newline. Fields holding a delimiter, quote or line
// break are quoted, as are fields that start with whitespace.
func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// SummaryPDF renders the report summary as a one-page A4 document
func (s *ReportService) SummaryPDF(ctx context.Context) ([]byte, error) {
	data := s.Summary(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)

	family := "Arial"
	text := transliterate
	if s.fontPath != "" {
		pdf.AddUTF8Font("ReportFont", "", s.fontPath)
		pdf.AddUTF8Font("ReportFont", "B", s.fontPath)
		family = "ReportFont"
		text = func(v string) string { return v }
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("load report font: %w", err)
	}

	pdf.AddPage()

	// Header
	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(190, 10, text("Полярная звезда - сводный отчёт"), "", 1, "C", false, 0, "")
	pdf.SetFont(family, "", 10)
	pdf.CellFormat(190, 6, text("Сформирован: "+data.GeneratedAt), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	section := func(title string) {
		pdf.SetFillColor(240, 240, 240)
		pdf.SetFont(family, "B", 12)
		pdf.CellFormat(190, 8, text(title), "1", 1, "L", true, 0, "")
		pdf.SetFont(family, "", 11)
	}
	row := func(label, value string) {
		pdf.CellFormat(130, 7, text(label), "LB", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, text(value), "RB", 1, "R", false, 0, "")
	}

	section("Сводка по отправкам")
	row("Всего отправок", strconv.Itoa(data.ShipmentsTotal))
	row("Готовы к отправке", strconv.Itoa(data.ShipmentsReady))
	row("Не готовы", strconv.Itoa(data.ShipmentsNotReady))
	row("В пути", strconv.Itoa(data.ShipmentsInTransit))
	row("Общий вес груза", data.TotalWeightTonnes+" т")
	row("Средний вес", data.AvgWeightTonnes+" т")
	pdf.Ln(5)

	section("Сводка по оборудованию")
	row("Всего единиц", strconv.Itoa(data.EquipmentTotal))
	for _, r := range data.EquipmentByType {
		row(r.Label, strconv.Itoa(r.Count))
	}
	row("Проверено", strconv.Itoa(data.EquipmentChecked))
	row("Неисправно", strconv.Itoa(data.EquipmentBroken))
	pdf.Ln(5)

	section("По направлениям")
	for _, d := range data.Directions {
		row(d.Label, fmt.Sprintf("%d отправок / %d рейсов", d.Shipments, d.Flights))
	}
	pdf.Ln(5)

	section("По терминалам")
	for _, t := range data.Terminals {
		row(t.Terminal, fmt.Sprintf("%d отправок / %d ед. оборудования", t.Shipments, t.Equipment))
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	s.log.Debug("[Report] summary pdf rendered", zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e", 'ж': "zh",
	'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o",
	'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts",
	'ч': "ch", 'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu",
	'я': "ya",
}

// transliterate renders Cyrillic with Latin letters for the built-in PDF fonts, which are cp1252 only
func transliterate(v string) string {
	var b strings.Builder
	for _, r := range v {
		lower := []rune(strings.ToLower(string(r)))[0]
		lat, ok := cyrillicToLatin[lower]
		switch {
		case !ok:
			b.WriteRune(r)
		case lower != r && lat != "":
			b.WriteString(strings.ToUpper(lat[:1]) + lat[1:])
		default:
			b.WriteString(lat)
		}
	}
	return b.String()
}
