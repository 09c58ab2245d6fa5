// Package metrics provides Prometheus instrumentation for the audioworks
// scanning engine.
//
// All metrics are prefixed with "audioworks_" and registered with the
// default registry via promauto. Categories:
//
// ## Scanner Metrics
//
//   - ScanRunsTotal: Counter of library scan runs
//   - ScanErrors: Counter of scan runs ending in error
//   - ScanLastRunTimestamp / ScanLastRunDuration: Gauges for the last run
//   - ScanIsRunning: Gauge indicating an in-progress scan
//   - WorksDiscovered: Counter of discovered work directories
//   - TracksEnumerated: Counter of enumerated tracks
//   - WalkPermissionSkips: Counter of permission-denied subtree skips
//
// ## Probe Metrics
//
//   - ProbeInvocationsTotal / ProbeFailuresTotal: Counters of duration
//     probe subprocess runs and failures
//   - ProbeDuration: Histogram of probe wall-clock time
//
// ## Gate Metrics
//
//   - GateInFlight: Gauge of operations holding a slot
//   - GateWaiting: Gauge of operations queued for a slot
//   - GateCapacity: Gauge of the configured slot count
//
// To expose the metrics, call Serve with a listen address; it mounts
// promhttp.Handler() on /metrics and runs the listener in the background.
package metrics
