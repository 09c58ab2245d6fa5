// Package main provides the audioworks command-line interface.
//
// Audioworks indexes a library of media "works" stored as directory trees:
// directories whose name embeds an RJ work code. Scans discover works
// beneath the configured root folders, enumerate their tracks in a
// deterministic natural order, and attach playable durations via an
// external ffprobe-compatible binary, bounded by a shared concurrency
// gate.
//
// # Commands
//
//   - scan: walk every configured root and print the resulting catalog
//   - tracks: enumerate the ordered track list of one work directory
//   - tree: print the browsable folder tree of one work directory
//   - probe: resolve one media file's duration
//   - cover: print the cover image locations for one work
//
// # Configuration
//
// Commands read a TOML configuration file, located via --config, the
// AUDIOWORKS_CONFIG environment variable, or ./config.toml, in that
// order. See the config package for the file format. Log verbosity is
// controlled with the LOG_LEVEL environment variable; setting a
// metrics_addr in the configuration exposes Prometheus metrics while a
// scan runs.
package main
