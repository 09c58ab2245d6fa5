package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/pelletier/go-toml/v2"

	"audioworks/internal/logging"
	"audioworks/internal/scanner"
)

const (
	defaultRecursionDepth = 2
	defaultProbeBinary    = "ffprobe"
	defaultProbeTimeout   = 30 * time.Second
	maxDefaultParallelism = 16
)

// Config holds the engine configuration, loaded from a TOML file.
type Config struct {
	// RootFolders are the scan roots: alias + absolute path.
	RootFolders []scanner.RootFolder `toml:"root_folders"`

	// MaxParallelism caps concurrently running probe/scan subprocesses.
	// Zero picks a CPU-derived default; negative values are rejected.
	MaxParallelism int `toml:"max_parallelism"`

	// ScannerMaxRecursionDepth bounds how deep discovery recurses below a
	// root. Zero picks the default.
	ScannerMaxRecursionDepth int `toml:"scanner_max_recursion_depth"`

	// OffloadMedia switches track URLs from the internal media API to
	// externally-addressable paths.
	OffloadMedia        bool   `toml:"offload_media"`
	OffloadStreamPath   string `toml:"offload_stream_path"`
	OffloadDownloadPath string `toml:"offload_download_path"`

	// CoverFolderDir is where cover images are stored.
	CoverFolderDir string `toml:"cover_folder_dir"`

	// ProbeBinary is the external duration probe executable.
	ProbeBinary string `toml:"probe_binary"`
	// ProbeTimeout bounds one probe invocation, as a duration string.
	ProbeTimeout string `toml:"probe_timeout"`

	// MetricsAddr is the listen address for the Prometheus endpoint.
	// Empty disables the listener.
	MetricsAddr string `toml:"metrics_addr"`

	// ScanLockPath is the lock file guarding against concurrent scans.
	ScanLockPath string `toml:"scan_lock_path"`

	probeTimeout time.Duration
}

// Load reads, defaults, and validates the configuration at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	cfg.logSummary(path)
	return &cfg, nil
}

// applyDefaults fills unset fields.
func (c *Config) applyDefaults() error {
	if c.MaxParallelism == 0 {
		c.MaxParallelism = defaultParallelism()
	}
	if c.ScannerMaxRecursionDepth == 0 {
		c.ScannerMaxRecursionDepth = defaultRecursionDepth
	}
	if c.ProbeBinary == "" {
		c.ProbeBinary = defaultProbeBinary
	}
	if c.CoverFolderDir == "" {
		c.CoverFolderDir = "covers"
	}
	if c.ScanLockPath == "" {
		c.ScanLockPath = filepath.Join(os.TempDir(), "audioworks-scan.lock")
	}

	c.probeTimeout = defaultProbeTimeout
	if c.ProbeTimeout != "" {
		d, err := time.ParseDuration(c.ProbeTimeout)
		if err != nil {
			return fmt.Errorf("invalid probe_timeout %q: %w", c.ProbeTimeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("probe_timeout must be positive, got %q", c.ProbeTimeout)
		}
		c.probeTimeout = d
	}
	return nil
}

// defaultParallelism derives a probe subprocess cap from available CPUs.
// Probing is I/O-heavy, so two per CPU, bounded to stay polite.
func defaultParallelism() int {
	n := runtime.GOMAXPROCS(0) * 2
	if n < 1 {
		n = 1
	}
	if n > maxDefaultParallelism {
		n = maxDefaultParallelism
	}
	return n
}

// validate rejects malformed configuration. Malformed config is fatal at
// startup, never a runtime condition.
func (c *Config) validate() error {
	if c.MaxParallelism < 1 {
		return fmt.Errorf("max_parallelism must be >= 1, got %d", c.MaxParallelism)
	}
	if c.ScannerMaxRecursionDepth < 1 {
		return fmt.Errorf("scanner_max_recursion_depth must be >= 1, got %d", c.ScannerMaxRecursionDepth)
	}
	if len(c.RootFolders) == 0 {
		return fmt.Errorf("at least one [[root_folders]] entry is required")
	}
	seen := make(map[string]bool, len(c.RootFolders))
	for i, root := range c.RootFolders {
		if root.Name == "" {
			return fmt.Errorf("root_folders[%d]: name is required", i)
		}
		if root.Path == "" {
			return fmt.Errorf("root_folders[%d] (%s): path is required", i, root.Name)
		}
		if !filepath.IsAbs(root.Path) {
			return fmt.Errorf("root_folders[%d] (%s): path %q must be absolute", i, root.Name, root.Path)
		}
		if seen[root.Name] {
			return fmt.Errorf("duplicate root folder name %q", root.Name)
		}
		seen[root.Name] = true
	}
	if c.OffloadMedia {
		if c.OffloadStreamPath == "" || c.OffloadDownloadPath == "" {
			return fmt.Errorf("offload_media requires offload_stream_path and offload_download_path")
		}
	}
	return nil
}

// ProbeTimeoutValue returns the parsed probe timeout.
func (c *Config) ProbeTimeoutValue() time.Duration {
	if c.probeTimeout <= 0 {
		return defaultProbeTimeout
	}
	return c.probeTimeout
}

// logSummary prints the effective configuration at startup.
func (c *Config) logSummary(path string) {
	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION (%s)", path)
	logging.Info("------------------------------------------------------------")
	logging.Info("  max_parallelism:              %d", c.MaxParallelism)
	logging.Info("  scanner_max_recursion_depth:  %d", c.ScannerMaxRecursionDepth)
	logging.Info("  offload_media:                %v", c.OffloadMedia)
	if c.OffloadMedia {
		logging.Info("  offload_stream_path:          %s", c.OffloadStreamPath)
		logging.Info("  offload_download_path:        %s", c.OffloadDownloadPath)
	}
	logging.Info("  cover_folder_dir:             %s", c.CoverFolderDir)
	logging.Info("  probe_binary:                 %s", c.ProbeBinary)
	logging.Info("  probe_timeout:                %s", c.ProbeTimeoutValue())
	logging.Info("  metrics_addr:                 %s", c.MetricsAddr)
	logging.Info("  scan_lock_path:               %s", c.ScanLockPath)
	for _, root := range c.RootFolders {
		logging.Info("  root folder %-16s %s", c.rootLabel(root.Name), root.Path)
	}
	logging.Info("  LOG_LEVEL:                    %s", logging.GetLevel())
}

func (c *Config) rootLabel(name string) string {
	return fmt.Sprintf("%q:", name)
}
