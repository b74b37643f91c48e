package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"polar-backend/internal/models"
	"polar-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReports(t *testing.T) *ReportService {
	t.Helper()
	return NewReportService(NewQueryService(store.New(store.DefaultSeed())), "", zap.NewNop())
}

// lines strips the BOM and splits on the line separator
func lines(t *testing.T, data []byte) []string {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("\uFEFF")), "missing BOM")
	return strings.Split(strings.TrimPrefix(string(data), "\uFEFF"), "\n")
}

func TestShipmentsCSV(t *testing.T) {
	r := newReports(t)

	data, err := r.ShipmentsCSV()
	require.NoError(t, err)

	rows := lines(t, data)
	require.Len(t, rows, 7, "header plus one row per shipment")
	assert.Equal(t, "Заявка;Клиент;Контейнер;Груз;Вес;Терминал;Статус;Рейс", rows[0])
	assert.Equal(t, "ЗЯ-2026-045;ООО Фрешпром;TCKU3456789;Мясо птицы;18500;ПИК;ready;МСК-2026-001", rows[1])
	for _, row := range rows {
		assert.Len(t, strings.Split(row, ";"), 8)
	}
	assert.False(t, bytes.HasSuffix(data, []byte("\n")))
}

func TestEquipmentCSV(t *testing.T) {
	r := newReports(t)

	data, err := r.EquipmentCSV()
	require.NoError(t, err)

	rows := lines(t, data)
	require.Len(t, rows, 13)
	assert.Equal(t, "Номер;Тип;Статус;Терминал;Последняя проверка;Комментарий", rows[0])
	assert.Equal(t, "GESU1234567;container;broken;ПИК;2026-02-10;Неисправен термостат", rows[4])
}

func TestPlanningCSVUsesFilter(t *testing.T) {
	r := newReports(t)

	data, err := r.PlanningCSV(models.ShipmentFilter{FlightID: "f2"})
	require.NoError(t, err)

	rows := lines(t, data)
	require.Len(t, rows, 3)
	assert.Len(t, strings.Split(rows[0], ";"), 14)
	assert.True(t, strings.HasPrefix(rows[1], "002;ЗЯ-2026-046;"))
}

func TestCSVQuotesDelimiters(t *testing.T) {
	r := newReports(t)
	comment := "Сломан; нужен ремонт"
	require.NoError(t, r.Store.UpdateEquipment("e1", models.EquipmentPatch{Comment: &comment}, models.Actor{UserID: "1"}))

	data, err := r.EquipmentCSV()
	require.NoError(t, err)

	rows := lines(t, data)
	assert.Equal(t, `TCKU3456789;container;checked;ПИК;2026-02-20;"Сломан; нужен ремонт"`, rows[1])
}

func TestCSVQuotesLeadingSpace(t *testing.T) {
	data, err := writeCSV([]string{"a", "b"}, [][]string{{" ПИК", "ПИК "}})
	require.NoError(t, err)
	assert.Equal(t, "\uFEFFa;b\n\" ПИК\";ПИК ", string(data))
}

func TestCSVEmptyCollection(t *testing.T) {
	data, err := writeCSV([]string{"a", "b"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "\uFEFFa;b", string(data))
}

func TestSummary(t *testing.T) {
	sum := newReports(t).Summary(context.Background())

	assert.Equal(t, 6, sum.ShipmentsTotal)
	assert.Equal(t, 3, sum.ShipmentsReady)
	assert.Equal(t, 3, sum.ShipmentsNotReady)
	assert.Equal(t, 0, sum.ShipmentsInTransit)
	assert.Equal(t, "99.8", sum.TotalWeightTonnes)
	assert.Equal(t, "16.6", sum.AvgWeightTonnes)
	assert.Equal(t, 12, sum.EquipmentTotal)
	assert.Equal(t, 8, sum.EquipmentChecked)
	assert.Equal(t, 2, sum.EquipmentBroken)
	assert.Len(t, sum.Directions, 3)
	assert.Len(t, sum.Terminals, 3)
}

func TestSummaryPDF(t *testing.T) {
	data, err := newReports(t).SummaryPDF(context.Background())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSummaryPDFMissingFont(t *testing.T) {
	r := newReports(t)
	r.fontPath = "/nonexistent/font.ttf"

	_, err := r.SummaryPDF(context.Background())
	assert.Error(t, err)
}

func TestTransliterate(t *testing.T) {
	assert.Equal(t, "Otchet po terminalam PIK", transliterate("Отчет по терминалам ПИК"))
	assert.Equal(t, "Shchuka 40HC", transliterate("Щука 40HC"))
}
