// SPDX-License-Identifier: MIT

package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/blevesearch/vellum"
	"github.com/lanrat/extsort"
	"golang.org/x/sync/errgroup"

	"github.com/sarjann/wikidump-search/blockindex"
)

// sortKeySep delimits title from locator in the line handed to the
// external sorter. A MediaWiki title cannot contain a NUL byte, so this
// never collides with real title bytes.
const sortKeySep = "\x00"

func encodeLine(e Entry) string {
	return e.Title + sortKeySep + fmt.Sprintf("%020d", uint64(e.Locator))
}

func decodeLine(line string) (Entry, error) {
	i := strings.LastIndex(line, sortKeySep)
	if i < 0 {
		return Entry{}, fmt.Errorf("dictionary: malformed sorted line %q", line)
	}
	n, err := strconv.ParseUint(line[i+len(sortKeySep):], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("dictionary: malformed locator in line %q: %w", line, err)
	}
	return Entry{Title: line[:i], Locator: blockindex.Locator(n)}, nil
}

// Build sorts entries by title with an external sorter (keeping memory
// bounded for a multi-million-title dump), drops every occurrence of a
// title after the first in sorted order, and persists the surviving
// pairs as an FST at path. Among duplicate titles the one with the
// lowest locator survives, since sort lines break ties on the encoded
// locator suffix — a deterministic rule, unlike a plain in-memory
// unstable sort.
func Build(ctx context.Context, entries []Entry, path string) (*Dict, error) {
	lines := make(chan string, 10000)
	config := extsort.DefaultConfig()
	config.NumWorkers = runtime.NumCPU()
	sorter, outChan, errChan := extsort.Strings(lines, config)

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)

	builder, err := vellum.New(w, nil)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionary: new fst builder: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(lines)
		for _, e := range entries {
			select {
			case lines <- encodeLine(e):
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		}
		return nil
	})

	group.Go(func() error {
		sorter.Sort(groupCtx)
		var lastTitle string
		haveLast := false
		for line := range outChan {
			entry, err := decodeLine(line)
			if err != nil {
				return err
			}
			if haveLast && entry.Title == lastTitle {
				continue
			}
			if err := builder.Insert([]byte(entry.Title), uint64(entry.Locator)); err != nil {
				return fmt.Errorf("dictionary: insert %q: %w", entry.Title, err)
			}
			lastTitle = entry.Title
			haveLast = true
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		f.Close()
		return nil, err
	}
	if err := <-errChan; err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionary: external sort: %w", err)
	}

	if err := builder.Close(); err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionary: close fst builder: %w", err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return nil, fmt.Errorf("dictionary: flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("dictionary: close %s: %w", path, err)
	}

	return Open(path)
}
