package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Scanner metrics
var (
	ScanRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_scan_runs_total",
			Help: "Total number of library scan runs",
		},
	)

	ScanErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_scan_errors_total",
			Help: "Total number of scan runs that ended with an error",
		},
	)

	ScanLastRunTimestamp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_scan_last_run_timestamp",
			Help: "Timestamp of the last completed scan run",
		},
	)

	ScanLastRunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_scan_last_run_duration_seconds",
			Help: "Duration of the last completed scan run in seconds",
		},
	)

	ScanIsRunning = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_scan_is_running",
			Help: "Whether a library scan is currently in progress (1 or 0)",
		},
	)

	WorksDiscovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_works_discovered_total",
			Help: "Total number of work directories discovered across all scans",
		},
	)

	TracksEnumerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_tracks_enumerated_total",
			Help: "Total number of tracks enumerated across all scans",
		},
	)

	WalkPermissionSkips = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_walk_permission_skips_total",
			Help: "Total number of directories skipped due to permission errors",
		},
	)
)

// Duration probe metrics
var (
	ProbeInvocationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_probe_invocations_total",
			Help: "Total number of duration probe invocations",
		},
	)

	ProbeFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audioworks_probe_failures_total",
			Help: "Total number of duration probe invocations that failed",
		},
	)

	ProbeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "audioworks_probe_duration_seconds",
			Help:    "Wall-clock duration of probe invocations in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// Concurrency gate metrics
var (
	GateInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_gate_in_flight",
			Help: "Number of operations currently holding a gate slot",
		},
	)

	GateWaiting = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_gate_waiting",
			Help: "Number of operations queued waiting for a gate slot",
		},
	)

	GateCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "audioworks_gate_capacity",
			Help: "Configured capacity of the concurrency gate",
		},
	)
)
