package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	catalogEnums = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "asenum_catalog_enums",
			Help: "Number of enums registered across catalogs",
		},
	)

	catalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "asenum_catalog_lookups_total",
			Help: "Total number of catalog lookups by result",
		},
		[]string{"result"},
	)

	presetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "asenum_preset_load_duration_seconds",
			Help:    "Duration of loading a single preset in seconds",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5, 30},
		},
	)

	presetLoadErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "asenum_preset_load_errors_total",
			Help: "Total number of presets that failed to load",
		},
	)
)
