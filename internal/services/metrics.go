package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importFilesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_files_total",
		Help: "Number of files imported, by detected source format and outcome.",
	}, []string{"format", "outcome"})

	importTradesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_trades_total",
		Help: "Number of normalized trades produced, by source format.",
	}, []string{"format"})

	importRowsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "import_rows_rejected_total",
		Help: "Number of input rows rejected with a warning, by source format.",
	}, []string{"format"})

	importDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "import_duration_seconds",
		Help:    "Wall time spent parsing one file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"format"})
)
