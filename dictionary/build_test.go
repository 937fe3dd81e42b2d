// SPDX-License-Identifier: MIT

package dictionary

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sarjann/wikidump-search/blockindex"
)

func TestBuildDedupFirstOccurrenceWins(t *testing.T) {
	// S3: pages [("Alpha",1,5),("Beta",2,7),("Alpha",1,9)]. After dedup,
	// "Alpha" keeps the lower-locator occurrence: pack(5,1).
	entries := []Entry{
		{Title: "Alpha", Locator: blockindex.Pack(5, 1)},
		{Title: "Beta", Locator: blockindex.Pack(7, 2)},
		{Title: "Alpha", Locator: blockindex.Pack(9, 1)},
	}

	path := filepath.Join(t.TempDir(), "map.index")
	dict, err := Build(context.Background(), entries, path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer dict.Close()

	if dict.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", dict.Len())
	}

	got, ok := dict.Get("Alpha")
	if !ok {
		t.Fatalf("Get(Alpha): not found")
	}
	if want := blockindex.Pack(5, 1); got != want {
		t.Errorf("Get(Alpha) = %d, want %d", got, want)
	}

	got, ok = dict.Get("Beta")
	if !ok || got != blockindex.Pack(7, 2) {
		t.Errorf("Get(Beta) = %d, %v, want %d, true", got, ok, blockindex.Pack(7, 2))
	}
}

func TestBuildKeyOrderAndNoDuplicates(t *testing.T) {
	entries := []Entry{
		{Title: "Zebra", Locator: blockindex.Pack(1, 1)},
		{Title: "Apple", Locator: blockindex.Pack(1, 2)},
		{Title: "Mango", Locator: blockindex.Pack(1, 3)},
	}
	path := filepath.Join(t.TempDir(), "map.index")
	dict, err := Build(context.Background(), entries, path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer dict.Close()

	itr, err := dict.fst.Iterator(nil, nil)
	var keys []string
	for err == nil {
		k, _ := itr.Current()
		keys = append(keys, string(k))
		err = itr.Next()
	}
	want := []string{"Apple", "Mango", "Zebra"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestOpenRoundTrip(t *testing.T) {
	entries := []Entry{{Title: "Solo", Locator: blockindex.Pack(2, 9)}}
	path := filepath.Join(t.TempDir(), "map.index")
	built, err := Build(context.Background(), entries, path)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	built.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer reopened.Close()

	got, ok := reopened.Get("Solo")
	if !ok || got != blockindex.Pack(2, 9) {
		t.Errorf("Get(Solo) after reopen = %d, %v", got, ok)
	}
}
