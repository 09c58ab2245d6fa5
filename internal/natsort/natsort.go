// Package natsort provides natural ("human") string ordering for track
// sorting: embedded digit runs compare by numeric value rather than
// lexicographically, so "track9" orders before "track10".
//
// Comparison is built on golang.org/x/text collation with the Numeric
// option, which also handles full-width digits and mixed-script titles
// common in work directories.
package natsort

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	// The collator keeps internal buffers, so access is serialized.
	mu  sync.Mutex
	col = collate.New(language.Und, collate.Numeric, collate.Loose)
)

// Compare returns -1, 0, or +1 depending on whether a sorts before, equal
// to, or after b under natural ordering.
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return col.CompareString(a, b)
}

// Less reports whether a sorts strictly before b under natural ordering.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}
