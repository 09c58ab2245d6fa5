package scanner

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}
}

func drain(t *testing.T, w *Walker, root RootFolder) ([]WorkFolder, error) {
	t.Helper()
	records, errc := w.Discover(context.Background(), root)

	var out []WorkFolder
	for r := range records {
		out = append(out, r)
	}
	return out, <-errc
}

func TestNewWalkerRejectsZeroDepth(t *testing.T) {
	if _, err := NewWalker(0); err == nil {
		t.Error("expected error for depth 0")
	}
}

func TestDiscoverFindsWorks(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir,
		"RJ000001",
		"circle A/RJ000002",
		"circle A/drafts",
		"circle B/series/RJ000003",
		"not a work",
	)
	// A stray file at root level must be skipped.
	if err := os.WriteFile(filepath.Join(dir, "RJ999999.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWalker(3)
	if err != nil {
		t.Fatal(err)
	}

	records, err := drain(t, w, RootFolder{Name: "main", Path: dir})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	sort.Strings(ids)

	want := []string{"000001", "000002", "000003"}
	if len(ids) != len(want) {
		t.Fatalf("discovered %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("discovered %v, want %v", ids, want)
		}
	}

	for _, r := range records {
		if r.RootFolderName != "main" {
			t.Errorf("record %s root = %q, want main", r.ID, r.RootFolderName)
		}
		if r.AddTime == "" {
			t.Errorf("record %s has empty addTime", r.ID)
		}
		if !filepath.IsAbs(r.AbsolutePath) {
			t.Errorf("record %s absolute path %q is not absolute", r.ID, r.AbsolutePath)
		}
		if r.ID == "000002" && r.RelativePath != "circle A/RJ000002" {
			t.Errorf("record 000002 relative path = %q", r.RelativePath)
		}
	}
}

// A work directory nested inside another work is never reported: matched
// directories are not descended into.
func TestDiscoverDoesNotDescendIntoWorks(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "A/RJ000001/RJ999999")

	w, err := NewWalker(5)
	if err != nil {
		t.Fatal(err)
	}

	records, err := drain(t, w, RootFolder{Name: "r", Path: dir})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("discovered %d works, want 1", len(records))
	}
	if records[0].ID != "000001" {
		t.Errorf("discovered %q, want 000001", records[0].ID)
	}
}

func TestDiscoverRespectsDepthLimit(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "RJ000001", "deep/RJ000002")

	w, err := NewWalker(1)
	if err != nil {
		t.Fatal(err)
	}

	records, err := drain(t, w, RootFolder{Name: "r", Path: dir})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(records) != 1 || records[0].ID != "000001" {
		t.Fatalf("discovered %+v, want only RJ000001 at the root level", records)
	}
}

func TestDiscoverSkipsUnreadableSubtree(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod does not revoke directory read access on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not bind root")
	}

	dir := t.TempDir()
	mkdirs(t, dir, "RJ000001", "locked/RJ000002")
	if err := os.Chmod(filepath.Join(dir, "locked"), 0o000); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(filepath.Join(dir, "locked"), 0o755) })

	w, err := NewWalker(3)
	if err != nil {
		t.Fatal(err)
	}

	records, err := drain(t, w, RootFolder{Name: "r", Path: dir})
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "000001" {
		t.Fatalf("discovered %+v, want only the readable work", records)
	}
}

func TestDiscoverMissingRootFails(t *testing.T) {
	w, err := NewWalker(2)
	if err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(t.TempDir(), "gone")
	_, walkErr := drain(t, w, RootFolder{Name: "r", Path: missing})
	if walkErr == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestDiscoverIsRestartable(t *testing.T) {
	dir := t.TempDir()
	mkdirs(t, dir, "RJ000007")

	w, err := NewWalker(2)
	if err != nil {
		t.Fatal(err)
	}
	root := RootFolder{Name: "r", Path: dir}

	for i := 0; i < 2; i++ {
		records, err := drain(t, w, root)
		if err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
		if len(records) != 1 {
			t.Fatalf("pass %d discovered %d works, want 1", i, len(records))
		}
	}
}

func TestDiscoverHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	var names []string
	for i := 0; i < 100; i++ {
		names = append(names, filepath.Join(dir, "RJ"+pad(i)))
	}
	for _, n := range names {
		if err := os.Mkdir(n, 0o755); err != nil {
			t.Fatal(err)
		}
	}

	w, err := NewWalker(2)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	records, errc := w.Discover(ctx, RootFolder{Name: "r", Path: dir})

	<-records
	cancel()
	for range records {
	}

	if err := <-errc; err != context.Canceled {
		t.Errorf("walk error = %v, want context.Canceled", err)
	}
}

func pad(i int) string {
	s := "000000"
	d := []byte(s)
	for p := len(d) - 1; i > 0 && p >= 0; p-- {
		d[p] = byte('0' + i%10)
		i /= 10
	}
	return string(d)
}
