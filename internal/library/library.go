package library

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"audioworks/internal/logging"
	"audioworks/internal/metrics"
	"audioworks/internal/scanner"
	"audioworks/internal/tracks"
	"audioworks/internal/tree"
)

// ErrScanInProgress is returned when another scan holds the scan lock.
var ErrScanInProgress = errors.New("library: a scan is already in progress")

// WorkReport summarizes one indexed work.
type WorkReport struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	RootFolderName string         `json:"rootFolderName"`
	RelativePath   string         `json:"relativePath"`
	AddTime        string         `json:"addTime"`
	TrackCount     int            `json:"trackCount"`
	Duration       float64        `json:"duration"`
	Tracks         []tracks.Track `json:"tracks,omitempty"`
}

// ScanReport summarizes one scan run across all roots.
type ScanReport struct {
	RunID     string       `json:"runId"`
	StartedAt time.Time    `json:"startedAt"`
	Elapsed   string       `json:"elapsed"`
	Works     []WorkReport `json:"works"`
	Failed    []string     `json:"failed,omitempty"`
	// Diagnostics collects the warning and error log messages emitted
	// while the scan ran, so that report consumers see degraded works
	// (failed probes, permission skips) without scraping logs.
	Diagnostics []string `json:"diagnostics,omitempty"`
}

// Library orchestrates discovery and enumeration over the configured roots.
type Library struct {
	roots       []scanner.RootFolder
	walker      *scanner.Walker
	lister      *tracks.Lister
	lockPath    string
	treeOptions tree.Options

	// IncludeTracks controls whether scan reports embed full track lists.
	IncludeTracks bool
}

// New assembles a Library from its collaborators.
func New(roots []scanner.RootFolder, walker *scanner.Walker, lister *tracks.Lister, lockPath string, treeOptions tree.Options) *Library {
	return &Library{
		roots:       roots,
		walker:      walker,
		lister:      lister,
		lockPath:    lockPath,
		treeOptions: treeOptions,
	}
}

// Scan walks every root, enumerates each discovered work, and returns the
// consolidated report.
//
// A file lock serializes scans: a second Scan while one is running fails
// fast with ErrScanInProgress instead of doubling probe load. A work whose
// directory cannot be listed is recorded under Failed and does not produce
// a partial entry; a walk failure on a root aborts the whole scan.
func (l *Library) Scan(ctx context.Context) (*ScanReport, error) {
	lock := flock.New(l.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring scan lock %s: %w", l.lockPath, err)
	}
	if !locked {
		return nil, ErrScanInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logging.Warn("Releasing scan lock: %v", err)
		}
	}()

	report := &ScanReport{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	// Probe failures log from concurrent goroutines.
	var diagMu sync.Mutex
	logging.SetSink(func(e logging.Entry) {
		if e.Level != "warn" && e.Level != "error" {
			return
		}
		diagMu.Lock()
		report.Diagnostics = append(report.Diagnostics, e.Message)
		diagMu.Unlock()
	})
	defer logging.SetSink(nil)

	metrics.ScanRunsTotal.Inc()
	metrics.ScanIsRunning.Set(1)
	defer metrics.ScanIsRunning.Set(0)

	logging.Info("Scan %s starting across %d root folder(s)", report.RunID, len(l.roots))

	for _, root := range l.roots {
		if err := l.scanRoot(ctx, root, report); err != nil {
			metrics.ScanErrors.Inc()
			return nil, err
		}
	}

	elapsed := time.Since(report.StartedAt)
	report.Elapsed = elapsed.String()
	metrics.ScanLastRunTimestamp.Set(float64(time.Now().Unix()))
	metrics.ScanLastRunDuration.Set(elapsed.Seconds())

	logging.Info("Scan %s complete: %d work(s), %d failed, in %v",
		report.RunID, len(report.Works), len(report.Failed), elapsed)
	return report, nil
}

// scanRoot drains the discovery walker for one root and indexes each work.
func (l *Library) scanRoot(ctx context.Context, root scanner.RootFolder, report *ScanReport) error {
	logging.Info("Scanning root %q (%s)", root.Name, root.Path)

	records, errc := l.walker.Discover(ctx, root)
	for record := range records {
		work, err := l.indexWork(ctx, record)
		if err != nil {
			// No partial catalog entry for a work that cannot be listed.
			logging.Error("Indexing work %s failed: %v", record.ID, err)
			report.Failed = append(report.Failed, record.RelativePath)
			continue
		}
		report.Works = append(report.Works, work)
	}

	if err := <-errc; err != nil {
		return fmt.Errorf("scanning root %q: %w", root.Name, err)
	}
	return nil
}

// indexWork enumerates one discovered work directory.
func (l *Library) indexWork(ctx context.Context, record scanner.WorkFolder) (WorkReport, error) {
	list, err := l.lister.List(ctx, record.ID, record.AbsolutePath)
	if err != nil {
		return WorkReport{}, err
	}

	work := WorkReport{
		ID:             record.ID,
		Title:          filepath.Base(record.AbsolutePath),
		RootFolderName: record.RootFolderName,
		RelativePath:   record.RelativePath,
		AddTime:        record.AddTime,
		TrackCount:     len(list),
		Duration:       tracks.TotalDuration(record.ID, list),
	}
	if l.IncludeTracks {
		work.Tracks = list
	}

	logging.Debug("Work %s: %d track(s), %.1fs playable", record.ID, work.TrackCount, work.Duration)
	if logging.IsDebugEnabled() {
		for _, tr := range list {
			logging.Debug("  %s %s", tr.Hash, tr.Title)
		}
	}
	return work, nil
}

// Tree enumerates one work directory and returns its browsable folder tree.
func (l *Library) Tree(ctx context.Context, workID, workDir, rootFolderName string) ([]*tree.Node, error) {
	list, err := l.lister.List(ctx, workID, workDir)
	if err != nil {
		return nil, err
	}
	title := filepath.Base(workDir)
	return tree.Build(list, title, title, rootFolderName, l.treeOptions), nil
}
