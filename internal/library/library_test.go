package library

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"audioworks/internal/scanner"
	"audioworks/internal/tracks"
	"audioworks/internal/tree"
)

type fixedProber struct{}

func (fixedProber) Duration(_ context.Context, path string) float64 {
	if filepath.Base(path) == "bad.mp3" {
		return math.NaN()
	}
	return 60
}

func buildLibrary(t *testing.T, root string) *Library {
	t.Helper()
	w, err := scanner.NewWalker(3)
	if err != nil {
		t.Fatal(err)
	}
	lockPath := filepath.Join(t.TempDir(), "scan.lock")
	return New(
		[]scanner.RootFolder{{Name: "main", Path: root}},
		w,
		tracks.NewLister(fixedProber{}),
		lockPath,
		tree.Options{},
	)
}

func populate(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestScanIndexesWorks(t *testing.T) {
	root := t.TempDir()
	populate(t, root, map[string]string{
		"RJ000001/01.mp3":         "x",
		"RJ000001/02.mp3":         "x",
		"RJ000001/readme.txt":     "x",
		"circle/RJ000002/a.flac":  "x",
		"circle/RJ000002/bad.mp3": "x",
	})

	lib := buildLibrary(t, root)
	report, err := lib.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if report.RunID == "" {
		t.Error("scan report has no run ID")
	}
	if len(report.Works) != 2 {
		t.Fatalf("indexed %d works, want 2: %+v", len(report.Works), report.Works)
	}

	byID := map[string]WorkReport{}
	for _, w := range report.Works {
		byID[w.ID] = w
	}

	w1 := byID["000001"]
	if w1.TrackCount != 3 {
		t.Errorf("work 000001 track count = %d, want 3", w1.TrackCount)
	}
	if w1.Duration != 120 {
		t.Errorf("work 000001 duration = %v, want 120", w1.Duration)
	}

	// bad.mp3 probes to NaN and must count as zero seconds.
	w2 := byID["000002"]
	if w2.Duration != 60 {
		t.Errorf("work 000002 duration = %v, want 60", w2.Duration)
	}
	if w2.Title != "RJ000002" {
		t.Errorf("work 000002 title = %q, want RJ000002", w2.Title)
	}
}

func TestScanReportCollectsDiagnostics(t *testing.T) {
	root := t.TempDir()
	populate(t, root, map[string]string{
		"RJ000001/ok.mp3":  "x",
		"RJ000001/bad.mp3": "x",
	})

	lib := buildLibrary(t, root)
	report, err := lib.Scan(context.Background())
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(report.Diagnostics) == 0 {
		t.Fatal("expected the unprobeable track to leave a diagnostic")
	}
	found := false
	for _, d := range report.Diagnostics {
		if strings.Contains(d, "bad.mp3") {
			found = true
		}
	}
	if !found {
		t.Errorf("diagnostics %q do not mention bad.mp3", report.Diagnostics)
	}
}

func TestScanLockBlocksConcurrentRuns(t *testing.T) {
	root := t.TempDir()
	populate(t, root, map[string]string{"RJ000001/a.mp3": "x"})

	lib := buildLibrary(t, root)

	// Hold the lock as a competing scanner would.
	other := flock.New(lib.lockPath)
	locked, err := other.TryLock()
	if err != nil || !locked {
		t.Fatalf("could not pre-acquire scan lock: locked=%v err=%v", locked, err)
	}
	defer func() {
		if err := other.Unlock(); err != nil {
			t.Errorf("releasing pre-acquired lock: %v", err)
		}
	}()

	if _, err := lib.Scan(context.Background()); err != ErrScanInProgress {
		t.Errorf("Scan under held lock = %v, want ErrScanInProgress", err)
	}
}

func TestScanMissingRootFails(t *testing.T) {
	lib := buildLibrary(t, filepath.Join(t.TempDir(), "gone"))
	if _, err := lib.Scan(context.Background()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestTree(t *testing.T) {
	root := t.TempDir()
	populate(t, root, map[string]string{
		"RJ000005/CD1/01.mp3": "x",
		"RJ000005/cover.jpg":  "x",
	})

	lib := buildLibrary(t, root)
	workDir := filepath.Join(root, "RJ000005")

	nodes, err := lib.Tree(context.Background(), "000005", workDir, "main")
	if err != nil {
		t.Fatalf("Tree failed: %v", err)
	}

	if len(nodes) != 2 {
		t.Fatalf("got %d top-level nodes, want 2", len(nodes))
	}
	if nodes[0].Type != tree.TypeFolder && nodes[1].Type != tree.TypeFolder {
		t.Error("expected a CD1 folder node at the top level")
	}
}
