// SPDX-License-Identifier: MIT

package blockindex

import (
	"bytes"
	"testing"
)

// buildFixture returns an archive of the given length with the bzh9 magic
// planted at each offset in at.
func buildFixture(length int, at ...int) []byte {
	buf := make([]byte, length)
	for _, off := range at {
		copy(buf[off:], bzh9Magic[:])
	}
	return buf
}

func TestScanS1(t *testing.T) {
	// S1: three detectable BZh9 signatures at offsets 0, 10000, 25000,
	// archive length 40000.
	archive := buildFixture(40000, 0, 10000, 25000)
	table, err := Scan(bytes.NewReader(archive))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []Block{
		{Offset: 0, Size: 10000},
		{Offset: 10000, Size: 15000},
		{Offset: 25000, Size: 15000},
	}
	if table.Length != 3 {
		t.Fatalf("Length = %d, want 3", table.Length)
	}
	for i, b := range want {
		if table.Blocks[i] != b {
			t.Errorf("Blocks[%d] = %+v, want %+v", i, table.Blocks[i], b)
		}
	}
}

func TestScanNoBoundaries(t *testing.T) {
	archive := make([]byte, 100)
	_, err := Scan(bytes.NewReader(archive))
	if err != ErrNoBlocks {
		t.Errorf("err = %v, want ErrNoBlocks", err)
	}
}

func TestBlockDisjointness(t *testing.T) {
	archive := buildFixture(40000, 0, 10000, 25000)
	table, err := Scan(bytes.NewReader(archive))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	for i := 0; i+1 < len(table.Blocks); i++ {
		if table.Blocks[i].Offset+table.Blocks[i].Size != table.Blocks[i+1].Offset {
			t.Errorf("block %d not adjacent to block %d", i, i+1)
		}
	}
	if table.End() != 40000 {
		t.Errorf("End() = %d, want 40000", table.End())
	}
}
