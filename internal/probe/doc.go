// Package probe invokes an external ffprobe-compatible binary to extract
// media durations.
//
// The probe contract is deliberately narrow: the binary is given one file
// path and must print a single floating-point number of seconds on stdout.
// Non-zero exit or unparsable output counts as failure, reported to the
// caller as NaN rather than an error so that one broken file never aborts
// enumeration of a work.
//
// Every invocation is routed through the shared concurrency gate and
// bounded by a timeout, since each probe is a separate OS process.
package probe
