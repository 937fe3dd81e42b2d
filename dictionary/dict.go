// SPDX-License-Identifier: MIT

package dictionary

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/blevesearch/vellum"
	"golang.org/x/text/cases"

	"github.com/sarjann/wikidump-search/blockindex"
)

// caser folds case for comparison, independent of locale; it is
// stateless and safe for concurrent use.
var caser = cases.Fold()

// maxQueryBytes caps the query length used for matching: a longer query
// is truncated to at most this many bytes (on a rune boundary) before
// the scan, and only that prefix is matched.
const maxQueryBytes = 255

// truncateValidUTF8 cuts s to at most n bytes without splitting a
// multi-byte rune, backing off byte by byte until the cut point lands on
// a rune boundary.
func truncateValidUTF8(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// Dict is an opened, in-memory title-to-Locator index.
type Dict struct {
	fst *vellum.FST
}

// Open loads a previously built FST file into memory. The file's bytes
// are read once and then owned by the returned Dict; the FST itself
// operates directly on that in-memory buffer.
func Open(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	fst, err := vellum.Load(data)
	if err != nil {
		return nil, fmt.Errorf("dictionary: load fst %s: %w", path, err)
	}
	return &Dict{fst: fst}, nil
}

// Close releases the FST's backing resources.
func (d *Dict) Close() error {
	return d.fst.Close()
}

// Len returns the number of distinct titles in the dictionary.
func (d *Dict) Len() int {
	return int(d.fst.Len())
}

// Get looks up a title's exact Locator.
func (d *Dict) Get(title string) (blockindex.Locator, bool) {
	v, exists, err := d.fst.Get([]byte(title))
	if err != nil || !exists {
		return 0, false
	}
	return blockindex.Locator(v), true
}

// Result is one matched (title, locator) pair returned by Search.
type Result struct {
	Title   string
	Locator blockindex.Locator
}

// Search returns titles matching query, case-insensitively, in two
// ranked tiers: exact ("identical") matches first, then substring
// ("contains") matches. A title that merely sits within a small edit
// distance of query but shares no exact or substring match is never
// returned: a near-miss typo against the query itself (as opposed to
// a typo inside a longer title that still contains the query as a
// substring) has nothing for either tier to match against.
func (d *Dict) Search(query string) ([]Result, error) {
	if len(query) > maxQueryBytes {
		query = truncateValidUTF8(query, maxQueryBytes)
	}
	folded := caser.String(query)

	var identical, contains []Result

	itr, err := d.fst.Iterator(nil, nil)
	for err == nil {
		key, val := itr.Current()
		title := string(key)
		f := caser.String(title)
		switch {
		case f == folded:
			identical = append(identical, Result{Title: title, Locator: blockindex.Locator(val)})
		case strings.Contains(f, folded):
			contains = append(contains, Result{Title: title, Locator: blockindex.Locator(val)})
		}
		err = itr.Next()
	}
	if err != nil && err != vellum.ErrIteratorDone {
		return nil, fmt.Errorf("dictionary: traversal: %w", err)
	}

	return append(identical, contains...), nil
}
