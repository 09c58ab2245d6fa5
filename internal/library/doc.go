// Package library ties discovery, enumeration, and aggregation into whole
// library scan runs.
//
// A scan drains the discovery walker root by root and indexes every
// discovered work: track count, total playable duration, and optionally
// the full track list. Runs are identified by a UUID for log correlation
// and serialized with a file lock so overlapping scans cannot compete for
// the probe gate twice over.
package library
