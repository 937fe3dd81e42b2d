// SPDX-License-Identifier: MIT

package blockindex

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// bzh9Magic is the 4-byte bzip2 stream header used by dumps produced with
// block size 9 (the default for Wikipedia dumps): "BZh9". It is stable and
// extremely rare as arbitrary compressed content, which is what makes it
// usable as a stream-boundary signature.
//
// The tighter, per-block "pi" magic (0x31 0x41 0x59 0x26 0x53 0x59) also
// identifies bzip2 block boundaries, but at a finer grain than we want
// here and is not used by this scanner.
var bzh9Magic = [4]byte{0x42, 0x5A, 0x68, 0x39}

// countOffset is how far the 4th magic byte sits past the true start of a
// block: when the sliding window matches, the block actually began
// countOffset bytes earlier.
const countOffset = 3

// Matching on count >= countOffset (rather than the strict > a literal
// byte-for-byte port would use) is what lets a stream header sitting at
// the very start of the archive be recognized as block 0's boundary —
// with strict >, the window first becomes full at count == countOffset,
// one step too early to pass.

// ErrNoBlocks is returned when a scan finds fewer than one block boundary.
// A table with zero blocks is never valid output; it indicates the input
// is not a bzip2 multistream dump, or the boundary heuristic failed
// entirely, and must not be persisted.
var ErrNoBlocks = errors.New("blockindex: no bzip2 stream boundaries found")

// Scan walks r byte by byte looking for bzip2 stream headers and returns
// the resulting Table. Block sizes are derived as the distance between
// consecutive boundaries, with the final block's size reaching to the end
// of the stream.
func Scan(r io.Reader) (*Table, error) {
	br := bufio.NewReaderSize(r, 1<<20)

	var window [4]byte
	var offsets []uint64
	var count uint64

	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("blockindex: scan: %w", err)
		}

		window[0], window[1], window[2] = window[1], window[2], window[3]
		window[3] = b

		if count >= countOffset && window == bzh9Magic {
			offsets = append(offsets, count-countOffset)
		}
		count++
	}

	if len(offsets) == 0 {
		return nil, ErrNoBlocks
	}

	blocks := make([]Block, len(offsets))
	for i, off := range offsets {
		var size uint64
		if i+1 < len(offsets) {
			size = offsets[i+1] - off
		} else {
			size = count - off
		}
		blocks[i] = Block{Offset: off, Size: size}
	}

	return &Table{Blocks: blocks, Length: len(blocks)}, nil
}

// ScanFile opens path and scans it, writing the resulting Table to
// outPath as a side effect: the table is written once at build time and
// reused for every query afterward.
func ScanFile(path, outPath string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("blockindex: open archive %s: %w", path, err)
	}
	defer f.Close()

	table, err := Scan(f)
	if err != nil {
		return nil, err
	}

	if err := table.Save(outPath); err != nil {
		return nil, err
	}
	return table, nil
}
