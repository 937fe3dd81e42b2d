// SPDX-License-Identifier: MIT

// Package testfixture builds real bzip2 multistream archives for use in
// package tests, so tests exercise the real compression layer instead of
// mocking it.
package testfixture

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"

	"github.com/sarjann/wikidump-search/blockindex"
)

// Archive bzip2-compresses each element of blockBodies as its own
// independent stream, concatenates them into a single file under a
// t.TempDir(), and returns the archive's path together with the
// blockindex.Table describing the resulting byte ranges. One call
// produces one block per body, in order, with no gap between them.
func Archive(t *testing.T, blockBodies []string) (string, *blockindex.Table) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "archive.xml.bz2")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("testfixture: create %s: %v", path, err)
	}
	defer f.Close()

	var blocks []blockindex.Block
	var offset uint64
	for i, body := range blockBodies {
		var buf bytes.Buffer
		bz, err := bzip2.NewWriter(&buf, &bzip2.WriterConfig{Level: 9})
		if err != nil {
			t.Fatalf("testfixture: new bzip2 writer for block %d: %v", i, err)
		}
		if _, err := bz.Write([]byte(body)); err != nil {
			t.Fatalf("testfixture: write block %d: %v", i, err)
		}
		if err := bz.Close(); err != nil {
			t.Fatalf("testfixture: close bzip2 writer for block %d: %v", i, err)
		}

		n, err := f.Write(buf.Bytes())
		if err != nil {
			t.Fatalf("testfixture: write archive: %v", err)
		}
		blocks = append(blocks, blockindex.Block{Offset: offset, Size: uint64(n)})
		offset += uint64(n)
	}

	return path, &blockindex.Table{Blocks: blocks, Length: len(blocks)}
}

// SiteInfoBlock is the conventional block 0 body: a <siteinfo> element
// with no pages, matching what a real multistream dump carries.
const SiteInfoBlock = `<siteinfo><sitename>Test Wiki</sitename><dbname>testwiki</dbname><base>https://test.example/wiki/Main</base><generator>MediaWiki 1.39</generator><case>first-letter</case></siteinfo>`

// SentinelBlock is the conventional final block body: no pages, the way
// real dumps close with an empty terminator stream.
const SentinelBlock = `<mediawiki></mediawiki>`
