// SPDX-License-Identifier: MIT

package dumppage

import (
	"fmt"
	"io"
	"os"

	"github.com/dsnet/compress/bzip2"

	"github.com/sarjann/wikidump-search/blockindex"
)

// OpenBlock seeks to the given block's byte range in the archive and
// returns a reader over its decompressed bytes, ready for ParseHeaders or
// ParseDetailed. Each call opens its own file handle, so concurrent
// callers never share file descriptor state.
//
// The returned ReadCloser's Close releases both the bzip2 decoder and the
// underlying file; callers must always call it, including on error paths
// that return before reading any bytes.
func OpenBlock(archivePath string, table *blockindex.Table, blockID int) (io.ReadCloser, error) {
	if blockID < 0 || blockID >= len(table.Blocks) {
		return nil, fmt.Errorf("dumppage: block %d out of range [0, %d)", blockID, len(table.Blocks))
	}
	block := table.Blocks[blockID]

	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("dumppage: open archive %s: %w", archivePath, err)
	}

	if _, err := f.Seek(int64(block.Offset), io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("dumppage: seek block %d: %w", blockID, err)
	}

	limited := io.LimitReader(f, int64(block.Size))
	decoder, err := bzip2.NewReader(limited, &bzip2.ReaderConfig{})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("dumppage: open bzip2 decoder for block %d: %w", blockID, err)
	}

	return &blockBytes{decoder: decoder, file: f}, nil
}

// blockBytes wraps a bzip2 decoder and the file handle feeding it so both
// can be released together when the caller is done reading. encoding/xml
// already buffers internally, so this does not add its own buffering.
type blockBytes struct {
	decoder *bzip2.Reader
	file    *os.File
}

func (b *blockBytes) Read(p []byte) (int, error) {
	return b.decoder.Read(p)
}

func (b *blockBytes) Close() error {
	err1 := b.decoder.Close()
	err2 := b.file.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// ReadBlockHeaders is the indexing-time convenience: open the block,
// decompress it, and parse every page into a header. Used by package
// indexing; each call is a fully self-contained, independent unit of
// work suitable for running concurrently across a worker pool.
func ReadBlockHeaders(archivePath string, table *blockindex.Table, blockID int) ([]Page, error) {
	r, err := OpenBlock(archivePath, table, blockID)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pages, err := ParseHeaders(r)
	if err != nil {
		return nil, fmt.Errorf("dumppage: block %d: %w", blockID, err)
	}
	return pages, nil
}

// ReadBlockDetailed is the retrieval-time convenience: open the block,
// decompress it, and parse every page with full detail. Used by package
// pagestore.
func ReadBlockDetailed(archivePath string, table *blockindex.Table, blockID int) ([]DetailedPage, error) {
	r, err := OpenBlock(archivePath, table, blockID)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	pages, err := ParseDetailed(r)
	if err != nil {
		return nil, fmt.Errorf("dumppage: block %d: %w", blockID, err)
	}
	return pages, nil
}
