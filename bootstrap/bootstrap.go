// SPDX-License-Identifier: MIT

package bootstrap

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/sarjann/wikidump-search/blockindex"
	"github.com/sarjann/wikidump-search/dictionary"
	"github.com/sarjann/wikidump-search/dumppage"
	"github.com/sarjann/wikidump-search/indexing"
)

const (
	tableFileName = "table.json"
	mapIndexName  = "map.index"
	pagesDumpName = "pages.json"
)

// IndexPresent reports whether the meta directory already holds a
// built dictionary — the one signal bootstrap uses to decide whether
// initial indexing can be skipped.
func IndexPresent(metaPath string) bool {
	_, err := os.Stat(filepath.Join(metaPath, mapIndexName))
	return err == nil
}

// Run opens an already-indexed meta directory, or — when map.index is
// absent — performs initial indexing: scan the archive for block
// boundaries, index every block in parallel, and build the title
// dictionary, before opening the freshly written results. This is the
// only place the core runs the full build pipeline end to end; every
// other entry point just serves queries against what Run returns.
func Run(ctx context.Context, cfg *Config, opts indexing.Options, logger *log.Logger) (*blockindex.Table, *dictionary.Dict, error) {
	if err := os.MkdirAll(cfg.MetaPath, 0755); err != nil {
		return nil, nil, fmt.Errorf("bootstrap: create meta dir %s: %w", cfg.MetaPath, err)
	}

	tablePath := filepath.Join(cfg.MetaPath, tableFileName)
	mapPath := filepath.Join(cfg.MetaPath, mapIndexName)

	if IndexPresent(cfg.MetaPath) {
		if logger != nil {
			logger.Printf("meta directory %s already indexed, opening", cfg.MetaPath)
		}
		table, err := blockindex.Open(tablePath)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: open block table: %w", err)
		}
		dict, err := dictionary.Open(mapPath)
		if err != nil {
			return nil, nil, fmt.Errorf("bootstrap: open dictionary: %w", err)
		}
		return table, dict, nil
	}

	if logger != nil {
		logger.Printf("meta directory %s empty, running initial indexing", cfg.MetaPath)
	}

	table, err := blockindex.ScanFile(cfg.ArchivePath, tablePath)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: scan archive: %w", err)
	}

	checkSiteInfo(cfg.ArchivePath, table, logger)

	if opts.DumpPages && opts.DumpPath == "" {
		opts.DumpPath = filepath.Join(cfg.MetaPath, pagesDumpName)
	}
	if opts.Workers == 0 {
		opts.Workers = cfg.Workers
	}

	pages, err := indexing.Run(ctx, cfg.ArchivePath, table, opts, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: index archive: %w", err)
	}

	entries := make([]dictionary.Entry, len(pages))
	for i, p := range pages {
		entries[i] = dictionary.Entry{
			Title:   p.Title,
			Locator: blockindex.Pack(p.BlockID, p.ID),
		}
	}

	dict, err := dictionary.Build(ctx, entries, mapPath)
	if err != nil {
		return nil, nil, fmt.Errorf("bootstrap: build dictionary: %w", err)
	}

	return table, dict, nil
}

// checkSiteInfo reads block 0's <siteinfo> purely to warn on a malformed
// or absent one; it never fails the build, since nothing downstream
// reads block 0's content.
func checkSiteInfo(archivePath string, table *blockindex.Table, logger *log.Logger) {
	if logger == nil || table.Length == 0 {
		return
	}
	r, err := dumppage.OpenBlock(archivePath, table, 0)
	if err != nil {
		logger.Printf("bootstrap: block 0 siteinfo: %v", err)
		return
	}
	defer r.Close()

	info, err := dumppage.ParseSiteInfo(r)
	if err != nil {
		logger.Printf("bootstrap: block 0 siteinfo: %v", err)
		return
	}
	if info == nil {
		logger.Printf("bootstrap: block 0 has no <siteinfo>")
	}
}
