// Package tree converts the flat, ordered track list of a work into the
// nested folder view served to browsing clients.
//
// The builder runs two passes over the tracks: the first creates the
// deduplicated folder skeleton from subtitle path segments, the second
// places leaf nodes and computes per-kind stream and download URLs
// (internal API paths, or externally-addressable offload paths when
// offload mode is configured).
package tree
