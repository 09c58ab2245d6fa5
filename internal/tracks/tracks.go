package tracks

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"audioworks/internal/logging"
	"audioworks/internal/mediatypes"
	"audioworks/internal/metrics"
	"audioworks/internal/natsort"
)

// Track is one playable or viewable file belonging to a work.
type Track struct {
	// Title is the file base name, extension included.
	Title string
	// Subtitle is the directory path of the file relative to the work
	// root, nil for files directly under it.
	Subtitle *string
	// Ext is the lowercased, dot-prefixed file extension.
	Ext string
	// Hash identifies the track within one enumeration: "{workID}/{ordinal}"
	// by post-sort position. Re-scanning reassigns ordinals when the file
	// set changes.
	Hash string
	// Duration holds seconds for audio tracks, NaN when the probe failed,
	// and 0 for non-audio tracks.
	Duration float64
}

// Kind returns the content kind the track's extension classifies to.
func (t Track) Kind() mediatypes.Kind {
	kind, _ := mediatypes.GetKind(t.Ext)
	return kind
}

// IsAudio reports whether the track is a playable audio file.
func (t Track) IsAudio() bool {
	return mediatypes.IsAudio(t.Ext)
}

// MarshalJSON emits a duration field only for audio tracks with a known
// duration; NaN is not representable in JSON and stands for unknown.
func (t Track) MarshalJSON() ([]byte, error) {
	out := struct {
		Title    string   `json:"title"`
		Subtitle *string  `json:"subtitle"`
		Ext      string   `json:"ext"`
		Hash     string   `json:"hash"`
		Duration *float64 `json:"duration,omitempty"`
	}{
		Title:    t.Title,
		Subtitle: t.Subtitle,
		Ext:      t.Ext,
		Hash:     t.Hash,
	}
	if t.IsAudio() && !math.IsNaN(t.Duration) {
		d := t.Duration
		out.Duration = &d
	}
	return json.Marshal(out)
}

// DurationProber resolves the playable duration of a single media file.
// Implementations report unknown durations as NaN, never as an error.
type DurationProber interface {
	Duration(ctx context.Context, path string) float64
}

// Lister enumerates the tracks of a work directory.
type Lister struct {
	prober DurationProber
}

// NewLister creates a Lister that attaches durations via p.
func NewLister(p DurationProber) *Lister {
	return &Lister{prober: p}
}

// candidate pairs a track with its transient absolute path, which is
// needed for probing and dropped before returning.
type candidate struct {
	track Track
	abs   string
}

// List enumerates every supported file under workDir, naturally ordered by
// (subtitle, title, ext), with ordinal hashes and probed audio durations.
//
// Duration probes for all audio files are issued concurrently, bounded by
// the prober's gate, and joined back to their tracks by position; output
// ordering is independent of probe completion order. A failed probe yields
// a NaN duration. A failed directory listing fails the whole call.
func (l *Lister) List(ctx context.Context, workID, workDir string) ([]Track, error) {
	cands, err := collect(workID, workDir)
	if err != nil {
		return nil, fmt.Errorf("listing tracks for work %s in %s: %w", workID, workDir, err)
	}

	sortCandidates(cands)

	for i := range cands {
		cands[i].track.Hash = fmt.Sprintf("%s/%d", workID, i)
	}

	var wg sync.WaitGroup
	for i := range cands {
		if !cands[i].track.IsAudio() {
			continue
		}
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()
			c.track.Duration = l.prober.Duration(ctx, c.abs)
		}(&cands[i])
	}
	wg.Wait()

	out := make([]Track, len(cands))
	for i, c := range cands {
		out[i] = c.track
	}
	metrics.TracksEnumerated.Add(float64(len(out)))
	return out, nil
}

// collect recursively lists workDir and gathers every supported file.
func collect(workID, workDir string) ([]candidate, error) {
	var cands []candidate

	var walk func(rel string) error
	walk = func(rel string) error {
		dir := filepath.Join(workDir, rel)
		entries, err := os.ReadDir(dir)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())

			// Stat (not lstat) so symlinked subfolders and files count.
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				if err := walk(filepath.Join(rel, entry.Name())); err != nil {
					return err
				}
				continue
			}

			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if !mediatypes.IsSupported(ext) {
				continue
			}

			var subtitle *string
			if rel != "" {
				s := filepath.ToSlash(rel)
				subtitle = &s
			}

			cands = append(cands, candidate{
				track: Track{Title: entry.Name(), Subtitle: subtitle, Ext: ext},
				abs:   path,
			})
		}
		return nil
	}

	if err := walk(""); err != nil {
		return nil, err
	}
	return cands, nil
}

// sortCandidates orders tracks naturally by the (subtitle, title, ext)
// 3-key tuple. A nil subtitle is its own class, ordered before any string.
func sortCandidates(cands []candidate) {
	less := func(a, b Track) bool {
		switch {
		case a.Subtitle == nil && b.Subtitle != nil:
			return true
		case a.Subtitle != nil && b.Subtitle == nil:
			return false
		case a.Subtitle != nil && b.Subtitle != nil:
			if c := natsort.Compare(*a.Subtitle, *b.Subtitle); c != 0 {
				return c < 0
			}
		}
		if c := natsort.Compare(a.Title, b.Title); c != 0 {
			return c < 0
		}
		return natsort.Compare(a.Ext, b.Ext) < 0
	}

	sort.Slice(cands, func(i, j int) bool { return less(cands[i].track, cands[j].track) })
}

// WorkDuration derives a work's total playable seconds: tracks are
// deduplicated by their extension-stripped title (first occurrence in
// natural order wins), then audio durations are summed. Unknown (NaN)
// durations contribute 0 and are logged.
func (l *Lister) WorkDuration(ctx context.Context, workID, workDir string) (float64, error) {
	list, err := l.List(ctx, workID, workDir)
	if err != nil {
		return 0, err
	}
	return TotalDuration(workID, list), nil
}

// TotalDuration sums the playable seconds of an already-enumerated track
// list, applying the same dedup-by-title rule as WorkDuration.
func TotalDuration(workID string, list []Track) float64 {
	seen := make(map[string]bool, len(list))
	var total float64
	for _, t := range list {
		key := t.Title
		// Ext is stored lowercased; strip it case-insensitively.
		if n := len(key) - len(t.Ext); n >= 0 && strings.EqualFold(key[n:], t.Ext) {
			key = key[:n]
		}
		if seen[key] {
			continue
		}
		seen[key] = true

		if !t.IsAudio() {
			continue
		}
		if math.IsNaN(t.Duration) {
			logging.Warn("Unknown duration for %s (work %s) counted as 0", t.Title, workID)
			continue
		}
		total += t.Duration
	}
	return total
}
