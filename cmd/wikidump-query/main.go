// SPDX-License-Identifier: MIT

// Command wikidump-query is a minimal demonstration CLI over the core
// retrieval engine: it searches the title dictionary for a query and
// prints the wikitext body of the best match. It is not the interactive
// terminal UI — that is out of scope for this repository — just enough
// plumbing to exercise Dictionary.Search, PageStore.Fetch, and
// pagestore.FollowRedirect end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sarjann/wikidump-search/bootstrap"
	"github.com/sarjann/wikidump-search/indexing"
	"github.com/sarjann/wikidump-search/pagestore"
)

func main() {
	var (
		archive    = flag.String("archive", "", "path to the bzip2 multistream dump")
		meta       = flag.String("meta", "", "path to the meta directory")
		configFile = flag.String("config", "", "optional ini file with a [wikidump] section")
		query      = flag.String("query", "", "title query")
		follow     = flag.Bool("follow-redirect", true, "resolve a single redirect hop automatically")
	)
	flag.Parse()

	if *query == "" {
		fmt.Fprintln(os.Stderr, "usage: wikidump-query -archive=... -meta=... -query=<title>")
		os.Exit(2)
	}

	logger := log.New(os.Stderr, "", log.Ldate|log.Ltime|log.LUTC)

	cfg, err := bootstrap.LoadConfig(*configFile, *archive, *meta, 0)
	if err != nil {
		logger.Fatal(err)
	}

	table, dict, err := bootstrap.Run(context.Background(), cfg, indexing.Options{}, logger)
	if err != nil {
		logger.Fatal(err)
	}
	defer dict.Close()

	results, err := dict.Search(*query)
	if err != nil {
		logger.Fatal(err)
	}
	if len(results) == 0 {
		fmt.Printf("no matches for %q\n", *query)
		return
	}

	best := results[0]
	fmt.Printf("%d matches, showing %q\n", len(results), best.Title)

	page, err := pagestore.Fetch(table, best.Locator, cfg.ArchivePath)
	if err != nil {
		logger.Fatal(err)
	}

	if *follow && page.IsRedirect() {
		resolved, err := pagestore.FollowRedirect(table, page, cfg.ArchivePath, dict)
		if err != nil {
			logger.Fatal(err)
		}
		fmt.Printf("redirected: %q -> %q\n", page.Title, resolved.Title)
		page = resolved
	}

	if page.Revision != nil && page.Revision.Text != nil {
		fmt.Println(page.Revision.Text.Value)
	} else {
		fmt.Println("(no revision text)")
	}
}
