// SPDX-License-Identifier: MIT

// Package blockindex locates the independent bzip2 streams inside a
// Wikipedia multistream dump and persists their byte ranges as a
// BlockTable. It also packs the (block, page) pair that locates a single
// article into the 64-bit value stored by package dictionary.
package blockindex

import (
	"encoding/json"
	"fmt"
	"os"
)

// Block is one independent bzip2 stream inside the archive, identified by
// the byte range it occupies. Streams are independent: each decodes on its
// own, which is what makes random access to a single article possible.
type Block struct {
	Offset uint64 `json:"offset"`
	Size   uint64 `json:"size"`
}

// Table is the ordered sequence of blocks discovered in an archive. The
// index into Blocks is the block-id used everywhere else in this module.
// A Table is immutable once scanned; Save/Open round-trip it to disk.
type Table struct {
	Blocks []Block `json:"blocks"`
	Length int     `json:"length"`
}

// End returns the byte offset one past the last block, i.e. the archive
// length implied by the table.
func (t *Table) End() uint64 {
	if len(t.Blocks) == 0 {
		return 0
	}
	last := t.Blocks[len(t.Blocks)-1]
	return last.Offset + last.Size
}

// Save writes the table as JSON to path: `{blocks: [{offset, size}, …],
// length}`.
func (t *Table) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("blockindex: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("blockindex: encode %s: %w", path, err)
	}
	return nil
}

// Open loads a previously-saved Table from path.
func Open(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blockindex: open %s: %w", path, err)
	}
	defer f.Close()

	var t Table
	if err := json.NewDecoder(f).Decode(&t); err != nil {
		return nil, fmt.Errorf("blockindex: decode %s: %w", path, err)
	}
	return &t, nil
}
