package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.HotspotLoads.WithLabelValues("10min", "loaded").Inc()
	m.StaleResponses.Inc()
	m.LayerMarkers.Set(42)
	m.FetchDuration.WithLabelValues("fetch_hotspots").Observe(0.2)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HotspotLoads.WithLabelValues("10min", "loaded")))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.LayerMarkers))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "wildfire_stale_responses_total")
	assert.Contains(t, names, "wildfire_backend_request_seconds")
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
