package probe

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"audioworks/internal/gate"
	"audioworks/internal/logging"
	"audioworks/internal/metrics"
)

// DefaultTimeout bounds a single probe invocation. A hung probe process
// would otherwise hold its gate slot indefinitely.
const DefaultTimeout = 30 * time.Second

// Prober extracts playable durations by invoking an external probe binary.
type Prober struct {
	binary  string
	timeout time.Duration
	gate    *gate.Gate
}

// New creates a Prober running the given binary (ffprobe when empty)
// through g. A non-positive timeout falls back to DefaultTimeout.
func New(binary string, timeout time.Duration, g *gate.Gate) *Prober {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{binary: binary, timeout: timeout, gate: g}
}

// Duration returns the duration of the media file at path in seconds, or
// NaN when the probe fails for any reason. Failures are logged and never
// propagate: a broken file must not abort enumeration of its siblings.
// The invocation is routed through the shared concurrency gate.
func (p *Prober) Duration(ctx context.Context, path string) float64 {
	var seconds float64
	err := p.gate.Do(ctx, func() error {
		var err error
		seconds, err = p.run(ctx, path)
		return err
	})
	if err != nil {
		logging.Warn("Duration probe failed for %s: %v", path, err)
		metrics.ProbeFailuresTotal.Inc()
		return math.NaN()
	}
	return seconds
}

// run executes the probe binary and parses its single-float output.
func (p *Prober) run(ctx context.Context, path string) (float64, error) {
	if strings.TrimSpace(path) == "" {
		return 0, errors.New("empty path")
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	metrics.ProbeInvocationsTotal.Inc()

	cmd := exec.CommandContext(ctx, p.binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		"--", path)
	// Cancellation kills only the direct child; without a wait delay,
	// Output would keep blocking while any grandchild holds stdout.
	cmd.WaitDelay = time.Second

	output, err := cmd.Output()
	metrics.ProbeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return 0, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return 0, err
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("unparsable probe output %q", strings.TrimSpace(string(output)))
	}
	return seconds, nil
}
