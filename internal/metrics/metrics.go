package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - счетчики загрузок ленты и анализов
type Metrics struct {
	HotspotLoads   *prometheus.CounterVec
	RowsParsed     *prometheus.CounterVec
	RowsSkipped    *prometheus.CounterVec
	StaleResponses prometheus.Counter
	LayerMarkers   prometheus.Gauge
	Analyses       *prometheus.CounterVec
	FetchDuration  *prometheus.HistogramVec
}

// New регистрирует метрики в reg
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HotspotLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wildfire_hotspot_loads_total",
			Help: "Hotspot feed loads by period and outcome.",
		}, []string{"period", "outcome"}),
		RowsParsed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wildfire_rows_parsed_total",
			Help: "CSV rows turned into hotspot markers.",
		}, []string{"period"}),
		RowsSkipped: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wildfire_rows_skipped_total",
			Help: "CSV rows dropped as short or malformed.",
		}, []string{"period"}),
		StaleResponses: f.NewCounter(prometheus.CounterOpts{
			Name: "wildfire_stale_responses_total",
			Help: "Feed responses discarded because a newer load started.",
		}),
		LayerMarkers: f.NewGauge(prometheus.GaugeOpts{
			Name: "wildfire_layer_markers",
			Help: "Markers in the current hotspot layer.",
		}),
		Analyses: f.NewCounterVec(prometheus.CounterOpts{
			Name: "wildfire_scar_analyses_total",
			Help: "Burn scar analyses by outcome.",
		}, []string{"outcome"}),
		FetchDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wildfire_backend_request_seconds",
			Help:    "Backend request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}
