// SPDX-License-Identifier: MIT

// Package pagestore implements on-demand article retrieval: given a
// locator, it seeks to the owning block, decompresses it, and returns
// the fully detailed page.
package pagestore

import (
	"fmt"

	"github.com/sarjann/wikidump-search/blockindex"
	"github.com/sarjann/wikidump-search/dumppage"
)

// ErrPageNotFound is returned when a locator's block decompresses
// cleanly but contains no page with the expected page-id — an
// inconsistent index rather than an I/O failure.
type ErrPageNotFound struct {
	BlockID uint32
	PageID  uint32
}

func (e *ErrPageNotFound) Error() string {
	return fmt.Sprintf("pagestore: no page with id %d in block %d", e.PageID, e.BlockID)
}

// Fetch decomposes locator into its block and page ids, decompresses
// the owning block, and returns the matching DetailedPage. A locator
// whose block decompresses but has no matching page-id is reported via
// ErrPageNotFound rather than treated as an I/O failure — the two
// causes call for different handling upstream.
func Fetch(table *blockindex.Table, locator blockindex.Locator, archivePath string) (*dumppage.DetailedPage, error) {
	blockID, pageID := locator.Unpack()

	pages, err := dumppage.ReadBlockDetailed(archivePath, table, int(blockID))
	if err != nil {
		return nil, fmt.Errorf("pagestore: fetch block %d: %w", blockID, err)
	}

	for i := range pages {
		if pages[i].ID == pageID {
			return &pages[i], nil
		}
	}
	return nil, &ErrPageNotFound{BlockID: blockID, PageID: pageID}
}
