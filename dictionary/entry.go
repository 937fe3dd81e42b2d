// SPDX-License-Identifier: MIT

// Package dictionary builds and queries a finite-state transducer that
// maps article titles to their packed block/page Locator, supporting
// exact lookups and case-insensitive exact/substring search. No
// edit-distance (fuzzy) matching is performed.
package dictionary

import "github.com/sarjann/wikidump-search/blockindex"

// Entry is one (title, locator) pair ready for insertion into the FST.
type Entry struct {
	Title   string
	Locator blockindex.Locator
}
