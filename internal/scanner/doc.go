// Package scanner discovers work directories beneath the configured root
// folders.
//
// Discovery is a lazy, depth-limited walk: a producer goroutine lists one
// directory level at a time and streams a WorkFolder record over a bounded
// channel for every directory whose name carries a work code. Matched
// directories are treated as leaves and never descended into, so nested
// codes inside a work are not reported as separate works.
//
// Permission-denied entries are logged and skipped; any other I/O error
// aborts the walk and is surfaced to the consumer.
package scanner
