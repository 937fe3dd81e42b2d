// SPDX-License-Identifier: MIT

package indexing

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"

	"github.com/sarjann/wikidump-search/dumppage"
)

// dumpPages writes the intermediate page headers as JSON to path, for
// debugging only. When compress is set, the output is zstd-compressed —
// useful since a million-article dump's header list is large even
// without body text.
func dumpPages(pages []dumppage.Page, path string, compress bool) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if !compress {
		enc := json.NewEncoder(f)
		return enc.Encode(pages)
	}

	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("new zstd writer: %w", err)
	}
	defer func() {
		if cerr := zw.Close(); err == nil {
			err = cerr
		}
	}()

	return json.NewEncoder(zw).Encode(pages)
}
