package cache

import (
	"context"
	"testing"

	"polar-backend/internal/config"
	"polar-backend/internal/models"
	"polar-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledCacheIsNoOp(t *testing.T) {
	require.NoError(t, Init(&config.Config{}))
	assert.False(t, Enabled())

	ctx := context.Background()
	SetCached(ctx, SummaryKey, []byte(`{}`), ReportTTL)
	_, ok := GetCached(ctx, SummaryKey)
	assert.False(t, ok)

	InvalidateReportCaches(ctx)
	assert.NoError(t, Close())
}

func TestInvalidateOnChangeWithoutRedis(t *testing.T) {
	s := store.New(store.DefaultSeed())
	stop := InvalidateOnChange(s)
	defer stop()

	assert.NotPanics(t, func() {
		require.NoError(t, s.DeleteEquipment("e12"))
		s.SetSection(models.SectionReports)
	})
}

func TestDataChangeRetiresReportKeys(t *testing.T) {
	s := store.New(store.DefaultSeed())
	stop := InvalidateOnChange(s)
	defer stop()

	// A summary built before the delete is stored under this key
	stale := Key(SummaryKey)
	s.SetSection(models.SectionReports)
	assert.Equal(t, stale, Key(SummaryKey))

	require.NoError(t, s.DeleteEquipment("e12"))
	assert.NotEqual(t, stale, Key(SummaryKey))
	assert.Contains(t, Key(DashboardKey), DashboardKey+":"+bootID)
}

func TestInvalidateReportCachesBumpsGeneration(t *testing.T) {
	before := Key(BoardKey)
	InvalidateReportCaches(context.Background())
	assert.NotEqual(t, before, Key(BoardKey))
}
