// SPDX-License-Identifier: MIT

package dumppage

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ParseHeaders decodes every <page> element in r into a Page header. A
// decompressed block is a run of sibling <page> elements (plus, in block
// 0, a leading <siteinfo>); it is not itself a well-formed XML document,
// so we walk tokens rather than unmarshal the whole thing at once.
// Elements other than <page> (and, in block 0, <siteinfo>) are skipped.
func ParseHeaders(r io.Reader) ([]Page, error) {
	dec := xml.NewDecoder(r)
	var pages []Page
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dumppage: parse headers: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}
		var p Page
		if err := dec.DecodeElement(&p, &se); err != nil {
			return nil, fmt.Errorf("dumppage: decode page header: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// ParseDetailed decodes every <page> element in r into a DetailedPage,
// including its latest revision's text.
func ParseDetailed(r io.Reader) ([]DetailedPage, error) {
	dec := xml.NewDecoder(r)
	var pages []DetailedPage
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dumppage: parse detailed: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}
		var p DetailedPage
		if err := dec.DecodeElement(&p, &se); err != nil {
			return nil, fmt.Errorf("dumppage: decode detailed page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// ParseSiteInfo looks for a leading <siteinfo> element in r and decodes
// it. It returns (nil, nil) if none is found before the first <page> (or
// before EOF) — block 0's siteinfo is informational only, so a missing or
// malformed siteinfo never fails a build.
func ParseSiteInfo(r io.Reader) (*SiteInfo, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("dumppage: parse siteinfo: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if se.Name.Local == "page" {
			return nil, nil
		}
		if se.Name.Local != "siteinfo" {
			continue
		}
		var info SiteInfo
		if err := dec.DecodeElement(&info, &se); err != nil {
			return nil, fmt.Errorf("dumppage: decode siteinfo: %w", err)
		}
		return &info, nil
	}
}
