package mapview

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/wildfire_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func layer() *models.HotspotLayer {
	return &models.HotspotLayer{ID: uuid.New(), Period: models.Period10Min}
}

func TestLayerManager_SwapReplacesLayer(t *testing.T) {
	m := NewLayerManager()

	first := layer()
	tok := m.BeginFetch()
	require.True(t, m.Swap(tok, first))
	m.EndFetch()

	second := layer()
	tok = m.BeginFetch()
	require.True(t, m.Swap(tok, second))
	m.EndFetch()

	assert.Same(t, second, m.Current())
}

func TestLayerManager_StaleTokenDiscarded(t *testing.T) {
	m := NewLayerManager()

	older := m.BeginFetch()
	newer := m.BeginFetch()
	assert.True(t, m.Busy())

	fresh := layer()
	require.True(t, m.Swap(newer, fresh))
	m.EndFetch()

	assert.False(t, m.IsLatest(older))
	assert.False(t, m.Swap(older, layer()))
	m.EndFetch()

	assert.Same(t, fresh, m.Current())
	assert.False(t, m.Busy())
	assert.Equal(t, "", m.Cursor())
}

func TestLayerManager_BusyCursor(t *testing.T) {
	m := NewLayerManager()

	m.BeginFetch()
	assert.Equal(t, CursorBusy, m.Cursor())

	m.EndFetch()
	m.EndFetch()
	assert.False(t, m.Busy())
}

func TestLayerManager_Overlay(t *testing.T) {
	m := NewLayerManager()
	overlay := &models.ScarOverlay{Popup: "x"}

	m.SetOverlay(overlay)
	assert.Same(t, overlay, m.Overlay())

	m.ClearOverlay()
	assert.Nil(t, m.Overlay())
}

func TestLayerManager_ConcurrentLoadsLeaveOneLayer(t *testing.T) {
	m := NewLayerManager()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tok := m.BeginFetch()
			defer m.EndFetch()
			m.Swap(tok, layer())
		}()
	}
	wg.Wait()

	assert.NotNil(t, m.Current())
	assert.False(t, m.Busy())
}
