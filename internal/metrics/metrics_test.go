package metrics

import (
	"testing"

	"polar-backend/internal/models"
	"polar-backend/internal/store"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStoreCountsEvents(t *testing.T) {
	s := store.New(store.DefaultSeed())
	stop := ObserveStore(s)
	defer stop()

	movedBefore := testutil.ToFloat64(StoreEventsTotal.WithLabelValues(string(store.EventShipmentMoved)))
	logsBefore := testutil.ToFloat64(ActionLogEntriesTotal)

	actor := models.Actor{UserID: "1", UserName: "Алексей Петров"}
	require.NoError(t, s.MoveShipmentToFlight("s1", "f2", actor))
	s.SetSection(models.SectionFlightsRail)

	assert.Equal(t, movedBefore+1, testutil.ToFloat64(StoreEventsTotal.WithLabelValues(string(store.EventShipmentMoved))))
	assert.Equal(t, logsBefore+1, testutil.ToFloat64(ActionLogEntriesTotal))
}
