package scanner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"audioworks/internal/logging"
	"audioworks/internal/metrics"
	"audioworks/internal/rjcode"
)

// addTimeLayout formats a work directory's modification time for display.
const addTimeLayout = "2006-01-02 15:04"

// recordBuffer bounds how far the producer may run ahead of the consumer.
const recordBuffer = 16

// RootFolder identifies one scan root: an alias and its absolute path.
type RootFolder struct {
	Name string `json:"name" toml:"name"`
	Path string `json:"path" toml:"path"`
}

// WorkFolder is one discovered work directory.
type WorkFolder struct {
	// ID is the numeric code extracted from the directory name.
	ID string `json:"id"`
	// AbsolutePath is the full path of the work directory.
	AbsolutePath string `json:"absolutePath"`
	// RelativePath is the path of the work directory relative to its root.
	RelativePath string `json:"relativePath"`
	// RootFolderName is the alias of the root the work was found under.
	RootFolderName string `json:"rootFolderName"`
	// AddTime is the formatted local modification time of the directory.
	AddTime string `json:"addTime"`
}

// Walker discovers work directories under configured roots.
//
// Each Discover call walks fresh; records stream over a bounded channel so
// the whole tree is never buffered in memory.
type Walker struct {
	maxDepth int
}

// NewWalker creates a Walker that recurses at most maxDepth levels below a
// root. maxDepth must be >= 1; the root itself is level zero.
func NewWalker(maxDepth int) (*Walker, error) {
	if maxDepth < 1 {
		return nil, fmt.Errorf("scanner: max recursion depth must be >= 1, got %d", maxDepth)
	}
	return &Walker{maxDepth: maxDepth}, nil
}

// Discover walks root and streams one WorkFolder per discovered work
// directory. The records channel is closed when the walk finishes; the
// error channel then yields exactly one value, nil on success.
//
// Directories whose name carries a work code are emitted and never
// descended into, so a work nested inside another work is not reported.
// Subtrees below the depth ceiling are silently left unexplored.
func (w *Walker) Discover(ctx context.Context, root RootFolder) (<-chan WorkFolder, <-chan error) {
	records := make(chan WorkFolder, recordBuffer)
	errc := make(chan error, 1)

	go func() {
		defer close(records)
		errc <- w.walk(ctx, root, "", 0, records)
	}()

	return records, errc
}

// walk lists one directory level, emitting work records and recursing into
// plain directories while the depth budget allows.
func (w *Walker) walk(ctx context.Context, root RootFolder, rel string, depth int, out chan<- WorkFolder) error {
	dir := filepath.Join(root.Path, rel)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) && rel != "" {
			reportPermissionSkip(dir)
			return nil
		}
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		entryPath := filepath.Join(dir, entry.Name())

		// Stat (not lstat) so symlinked work directories count.
		info, err := os.Stat(entryPath)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				reportPermissionSkip(entryPath)
				continue
			}
			return fmt.Errorf("scanning %s: %w", entryPath, err)
		}
		if !info.IsDir() {
			continue
		}

		entryRel := filepath.Join(rel, entry.Name())

		if id, ok := rjcode.Match(entry.Name()); ok {
			record := WorkFolder{
				ID:             id,
				AbsolutePath:   entryPath,
				RelativePath:   filepath.ToSlash(entryRel),
				RootFolderName: root.Name,
				AddTime:        info.ModTime().Local().Format(addTimeLayout),
			}
			metrics.WorksDiscovered.Inc()
			select {
			case out <- record:
			case <-ctx.Done():
				return ctx.Err()
			}
			// A matched work directory is a leaf for discovery purposes.
			continue
		}

		if depth+1 < w.maxDepth {
			if err := w.walk(ctx, root, entryRel, depth+1, out); err != nil {
				return err
			}
		}
	}

	return nil
}

// reportPermissionSkip logs a permission-denied subtree, except for system
// paths Windows is known to wall off from every process.
func reportPermissionSkip(path string) {
	if runtime.GOOS == "windows" {
		switch filepath.Base(path) {
		case "System Volume Information", "$RECYCLE.BIN":
			logging.Debug("Skipping system path %s", path)
			return
		}
	}
	logging.Warn("Permission denied, skipping %s", path)
	metrics.WalkPermissionSkips.Inc()
}
