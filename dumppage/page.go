// SPDX-License-Identifier: MIT

// Package dumppage decodes the MediaWiki export XML embedded in one
// decompressed bzip2 block, in two shapes: Page (title + id, used while
// indexing) and DetailedPage (every field, including body text, used at
// retrieval time).
package dumppage

import "encoding/xml"

// NameSpace is one entry of the <siteinfo><namespaces> list in block 0.
type NameSpace struct {
	Key   string `xml:"key,attr"`
	Case  string `xml:"case,attr"`
	Value string `xml:",chardata"`
}

// SiteInfo is the <siteinfo> element that opens the dump, present only in
// block 0. Nothing downstream reads its contents; we decode it only to
// confirm a dump's shape when asked (see ParseSiteInfo).
type SiteInfo struct {
	XMLName    xml.Name    `xml:"siteinfo"`
	SiteName   string      `xml:"sitename"`
	DBName     string      `xml:"dbname"`
	Base       string      `xml:"base"`
	Generator  string      `xml:"generator"`
	Case       string      `xml:"case"`
	Namespaces []NameSpace `xml:"namespaces>namespace"`
}

// Redirect is the <redirect title="..."/> element of a page that has no
// real content of its own and instead points at another title.
type Redirect struct {
	Title string `xml:"title,attr"`
}

// Text is a revision's <text bytes="..." xml:space="...">...</text>. A
// nil *Text on Revision means the element was absent; a non-nil *Text
// with an empty Value means the element was present but empty —
// collapsing the two would make an empty stub indistinguishable from a
// page with no revision text at all.
type Text struct {
	Bytes    uint32 `xml:"bytes,attr"`
	XMLSpace string `xml:"space,attr"`
	Value    string `xml:",chardata"`
}

// Revision is a page's <revision> element. ParentID and Format are
// commonly absent on a page's first revision.
type Revision struct {
	ID        uint32  `xml:"id"`
	ParentID  *uint32 `xml:"parentid"`
	Timestamp string  `xml:"timestamp"`
	Format    *string `xml:"format"`
	Model     string  `xml:"model"`
	Text      *Text   `xml:"text"`
}

// Page is the indexing-time record: just enough to build the title
// dictionary. BlockID is not present in the XML; the indexer stamps it in
// after parsing, since a block's bytes never identify themselves.
type Page struct {
	XMLName xml.Name `xml:"page"`
	Title   string   `xml:"title"`
	ID      uint32   `xml:"id"`
	BlockID uint32   `xml:"-"`
}

// DetailedPage is the retrieval-time record returned to callers: every
// field MediaWiki's export format carries for a page, including its
// latest revision's wikitext body.
type DetailedPage struct {
	XMLName  xml.Name  `xml:"page"`
	Title    string    `xml:"title"`
	NS       uint32    `xml:"ns"`
	ID       uint32    `xml:"id"`
	BlockID  uint32    `xml:"-"`
	Redirect *Redirect `xml:"redirect"`
	Revision *Revision `xml:"revision"`
}

// IsRedirect reports whether this page's body is a pointer to another
// title rather than real content.
func (p *DetailedPage) IsRedirect() bool {
	return p.Redirect != nil && p.Redirect.Title != ""
}
