// Package tracks enumerates the playable and viewable files of a single
// work directory.
//
// Enumeration produces a deterministic, naturally ordered track list:
// files are filtered to the supported extension set, sorted by the
// (subtitle, title, ext) tuple with digit runs compared numerically, and
// assigned ordinal hashes of the form "{workID}/{n}". Audio durations are
// probed concurrently through the shared gate and joined back to tracks
// by position, so the output never depends on probe completion order.
//
// The package also derives a work's total playable duration, after
// deduplicating tracks that differ only by extension.
package tracks
