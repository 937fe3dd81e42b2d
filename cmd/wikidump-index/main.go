// SPDX-License-Identifier: MIT

// Command wikidump-index builds (or rebuilds, if the meta directory is
// removed first) the block table and title dictionary for a Wikipedia
// multistream dump.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sarjann/wikidump-search/bootstrap"
	"github.com/sarjann/wikidump-search/indexing"
)

func main() {
	var (
		archive      = flag.String("archive", "", "path to the bzip2 multistream dump")
		meta         = flag.String("meta", "", "path to the meta directory (created if absent)")
		configFile   = flag.String("config", "", "optional ini file with a [wikidump] section")
		workers      = flag.Int("workers", 0, "worker pool size; 0 falls back to WIKIDUMP_WORKERS, then the config file, then runtime.NumCPU()")
		dumpPages    = flag.Bool("dump-pages", false, "persist intermediate page headers as pages.json for debugging")
		compressDump = flag.Bool("compress-dump", false, "zstd-compress the debug page dump")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)

	cfg, err := bootstrap.LoadConfig(*configFile, *archive, *meta, *workers)
	if err != nil {
		logger.Fatal(err)
	}

	opts := indexing.Options{
		Workers:             cfg.Workers,
		DumpPages:           *dumpPages,
		CompressDumpedPages: *compressDump,
	}

	if bootstrap.IndexPresent(cfg.MetaPath) {
		fmt.Fprintf(os.Stderr, "meta directory %s is already indexed; remove map.index to force a rebuild\n", cfg.MetaPath)
	}

	_, dict, err := bootstrap.Run(context.Background(), cfg, opts, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer dict.Close()

	fmt.Printf("indexed %d titles into %s\n", dict.Len(), cfg.MetaPath)
}
