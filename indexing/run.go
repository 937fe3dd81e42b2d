// SPDX-License-Identifier: MIT

// Package indexing drives BlockReader and PageParser across every block
// of an archive in parallel, collecting the (title, locator) pairs that
// package dictionary turns into a title index.
package indexing

import (
	"context"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sarjann/wikidump-search/blockindex"
	"github.com/sarjann/wikidump-search/dumppage"
)

// Options configures a single indexing run.
type Options struct {
	// Workers is the size of the parallel worker pool. Zero means
	// runtime.NumCPU().
	Workers int

	// DumpPages persists the intermediate page headers to DumpPath as
	// JSON for debugging. Defaults to false: a production build should
	// not pay for this by default.
	DumpPages bool

	// CompressDumpedPages zstd-compresses the debug dump when DumpPages
	// is set; ignored otherwise.
	CompressDumpedPages bool

	// DumpPath is where the debug dump is written when DumpPages is
	// set. Conventionally "pages.json" (or "pages.json.zst") inside the
	// meta directory.
	DumpPath string
}

// Run walks every block in [1, table.Length-1) in parallel — block 0 is
// metadata-only and the final block is conventionally a terminator
// sentinel — decompressing, parsing headers, and stamping each page's
// BlockID. Ordering of the returned pages is unspecified; package
// dictionary re-sorts before building the FST.
//
// If any block fails to parse, Run returns an error and no partial
// result: callers must not persist a dictionary built from a partial
// scan.
func Run(ctx context.Context, archivePath string, table *blockindex.Table, opts Options, logger *log.Logger) ([]dumppage.Page, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	first, last := 1, table.Length-1
	if last <= first {
		return nil, fmt.Errorf("indexing: table has too few blocks to index (length=%d)", table.Length)
	}

	if logger != nil {
		logger.Printf("indexing blocks [%d, %d) with %d workers", first, last, workers)
	}

	tasks := make(chan int, last-first)
	for i := first; i < last; i++ {
		tasks <- i
	}
	close(tasks)

	results := make(chan []dumppage.Page, workers*2)
	metrics := newMetrics()

	group, groupCtx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		group.Go(func() error {
			for {
				select {
				case <-groupCtx.Done():
					return groupCtx.Err()
				case blockID, more := <-tasks:
					if !more {
						return nil
					}
					pages, err := dumppage.ReadBlockHeaders(archivePath, table, blockID)
					if err != nil {
						return fmt.Errorf("indexing: block %d: %w", blockID, err)
					}
					for i := range pages {
						pages[i].BlockID = uint32(blockID)
					}
					metrics.blocksIndexed.Inc()
					metrics.pagesIndexed.Add(float64(len(pages)))
					select {
					case results <- pages:
					case <-groupCtx.Done():
						return groupCtx.Err()
					}
				}
			}
		})
	}

	var collected []dumppage.Page
	done := make(chan struct{})
	go func() {
		defer close(done)
		for pages := range results {
			collected = append(collected, pages...)
		}
	}()

	runErr := group.Wait()
	close(results)
	<-done

	if runErr != nil {
		return nil, runErr
	}

	if logger != nil {
		logger.Printf("indexed %d blocks, %d pages", last-first, len(collected))
		metrics.flush(logger)
	}

	if opts.DumpPages {
		if err := dumpPages(collected, opts.DumpPath, opts.CompressDumpedPages); err != nil {
			return nil, fmt.Errorf("indexing: dump pages: %w", err)
		}
	}

	return collected, nil
}
