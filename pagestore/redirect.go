// SPDX-License-Identifier: MIT

package pagestore

import (
	"fmt"

	"github.com/sarjann/wikidump-search/blockindex"
	"github.com/sarjann/wikidump-search/dumppage"
)

// TitleLookup is the narrow slice of dictionary.Dict that
// FollowRedirect needs. Accepting an interface rather than the
// concrete type keeps this package testable without building a real
// FST.
type TitleLookup interface {
	Get(title string) (blockindex.Locator, bool)
}

// FollowRedirect resolves a single redirect hop: if page is a
// redirect, it looks up the redirect's target title in dict and
// fetches that target page. It never follows more than one hop and
// does not detect cycles — the caller decides whether to call it
// again on the result, and must itself guard against chains longer
// than it wants to tolerate.
//
// If page is not a redirect, it is returned unchanged.
func FollowRedirect(table *blockindex.Table, page *dumppage.DetailedPage, archivePath string, dict TitleLookup) (*dumppage.DetailedPage, error) {
	if !page.IsRedirect() {
		return page, nil
	}

	target := page.Redirect.Title
	locator, ok := dict.Get(target)
	if !ok {
		return nil, fmt.Errorf("pagestore: redirect target %q not in dictionary", target)
	}

	resolved, err := Fetch(table, locator, archivePath)
	if err != nil {
		return nil, fmt.Errorf("pagestore: fetch redirect target %q: %w", target, err)
	}
	return resolved, nil
}
