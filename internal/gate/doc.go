// Package gate provides the bounded-concurrency gate shared by every
// external probe and scan operation in the engine.
//
// A single Gate instance is constructed at startup from the configured
// parallelism limit and passed to each component that issues gated work,
// so a full library scan and an on-demand probe compete for the same
// slots. The gate has no priorities and no timeouts of its own; callers
// wanting a deadline pass a context.
package gate
