// Package config loads and validates the engine's TOML configuration.
//
// A minimal configuration names at least one scan root:
//
//	max_parallelism = 8
//	scanner_max_recursion_depth = 2
//	cover_folder_dir = "/var/lib/audioworks/covers"
//
//	[[root_folders]]
//	name = "main"
//	path = "/srv/media/works"
//
// Unset numeric fields pick sensible defaults (parallelism from the CPU
// count, recursion depth 2). Malformed values such as non-positive limits,
// relative root paths, or offload mode without offload paths fail loading
// outright; the engine treats bad configuration as fatal at startup.
package config
