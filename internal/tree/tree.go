package tree

import (
	"math"
	"path"
	"strings"

	"audioworks/internal/mediatypes"
	"audioworks/internal/tracks"
)

// Node is one entry in the browsable folder tree of a work.
//
// Folder nodes carry Title and Children; leaf nodes carry the track fields
// and a type matching their content kind (text, image, audio, other).
// Duration is present only on audio leaves with a known duration.
type Node struct {
	Type             string   `json:"type"`
	Title            string   `json:"title"`
	Children         []*Node  `json:"children,omitempty"`
	Hash             string   `json:"hash,omitempty"`
	WorkTitle        string   `json:"workTitle,omitempty"`
	MediaStreamURL   string   `json:"mediaStreamUrl,omitempty"`
	MediaDownloadURL string   `json:"mediaDownloadUrl,omitempty"`
	Duration         *float64 `json:"duration,omitempty"`
}

// TypeFolder is the node type of non-leaf entries.
const TypeFolder = "folder"

// Options selects how leaf stream/download URLs are built.
//
// With Offload set, URLs become filesystem-style paths joined from the
// configured base path, the root folder alias, the work directory name,
// and the track's location inside the work. Otherwise leaves point at the
// engine's internal media API.
type Options struct {
	Offload             bool
	OffloadStreamPath   string
	OffloadDownloadPath string
}

// Build converts the ordered flat track list of one work into a nested
// folder tree and returns the top-level children.
//
// Folder nodes are deduplicated per (parent, title): every track sharing a
// subtitle path reuses the same folder chain, created in first-encounter
// order. Leaves keep the relative order of the input sequence.
func Build(list []tracks.Track, workTitle, workDirName, rootFolderName string, opts Options) []*Node {
	root := &Node{Type: TypeFolder, Title: workTitle}

	// Pass 1: folder skeleton.
	for _, t := range list {
		cur := root
		for _, seg := range segments(t.Subtitle) {
			cur = cur.childFolder(seg)
		}
	}

	// Pass 2: leaf placement.
	for _, t := range list {
		cur := root
		for _, seg := range segments(t.Subtitle) {
			cur = cur.childFolder(seg)
		}
		cur.Children = append(cur.Children, leaf(t, workTitle, workDirName, rootFolderName, opts))
	}

	return root.Children
}

// segments splits a track subtitle into folder path segments.
func segments(subtitle *string) []string {
	if subtitle == nil {
		return nil
	}
	return strings.Split(*subtitle, "/")
}

// childFolder finds or creates the folder node named title under n.
func (n *Node) childFolder(title string) *Node {
	for _, c := range n.Children {
		if c.Type == TypeFolder && c.Title == title {
			return c
		}
	}
	c := &Node{Type: TypeFolder, Title: title}
	n.Children = append(n.Children, c)
	return c
}

// leaf builds the leaf node for one track.
func leaf(t tracks.Track, workTitle, workDirName, rootFolderName string, opts Options) *Node {
	kind := t.Kind()

	node := &Node{
		Type:      string(kind),
		Title:     t.Title,
		Hash:      t.Hash,
		WorkTitle: workTitle,
	}

	if opts.Offload {
		node.MediaStreamURL = offloadURL(opts.OffloadStreamPath, rootFolderName, workDirName, t)
		node.MediaDownloadURL = offloadURL(opts.OffloadDownloadPath, rootFolderName, workDirName, t)
	} else {
		node.MediaStreamURL = "/api/media/stream/" + t.Hash
		node.MediaDownloadURL = "/api/media/download/" + t.Hash
	}

	switch kind {
	case mediatypes.KindAudio:
		if !math.IsNaN(t.Duration) {
			d := t.Duration
			node.Duration = &d
		}
	case mediatypes.KindText:
		// Text is always streamed through the internal API so the serving
		// layer controls the charset; downloads still honor offload mode.
		node.MediaStreamURL = "/api/media/stream/" + t.Hash
	}

	return node
}

// offloadURL joins an externally-addressable path for one track, with
// forward slashes regardless of platform.
func offloadURL(base, rootFolderName, workDirName string, t tracks.Track) string {
	parts := []string{base, rootFolderName, workDirName}
	if t.Subtitle != nil {
		parts = append(parts, *t.Subtitle)
	}
	parts = append(parts, t.Title)
	return path.Join(parts...)
}
