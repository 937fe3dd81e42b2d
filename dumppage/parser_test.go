// SPDX-License-Identifier: MIT

package dumppage

import (
	"strings"
	"testing"
)

func TestParseHeaders(t *testing.T) {
	xmlFragment := `
<page>
  <title>Alpha</title>
  <ns>0</ns>
  <id>5</id>
  <revision><id>1</id><timestamp>2020-01-01T00:00:00Z</timestamp><model>wikitext</model></revision>
</page>
<page>
  <title>Beta</title>
  <ns>0</ns>
  <id>7</id>
</page>
`
	pages, err := ParseHeaders(strings.NewReader(xmlFragment))
	if err != nil {
		t.Fatalf("ParseHeaders: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if pages[0].Title != "Alpha" || pages[0].ID != 5 {
		t.Errorf("pages[0] = %+v", pages[0])
	}
	if pages[1].Title != "Beta" || pages[1].ID != 7 {
		t.Errorf("pages[1] = %+v", pages[1])
	}
}

func TestParseDetailedMissingOptionalFields(t *testing.T) {
	xmlFragment := `
<page>
  <title>Stub</title>
  <ns>0</ns>
  <id>1</id>
  <revision>
    <id>42</id>
    <timestamp>2021-06-01T00:00:00Z</timestamp>
    <model>wikitext</model>
  </revision>
</page>
`
	pages, err := ParseDetailed(strings.NewReader(xmlFragment))
	if err != nil {
		t.Fatalf("ParseDetailed: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("len(pages) = %d, want 1", len(pages))
	}
	p := pages[0]
	if p.Redirect != nil {
		t.Errorf("Redirect = %+v, want nil", p.Redirect)
	}
	if p.Revision == nil {
		t.Fatalf("Revision is nil")
	}
	if p.Revision.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", p.Revision.ParentID)
	}
	if p.Revision.Format != nil {
		t.Errorf("Format = %v, want nil", p.Revision.Format)
	}
	if p.Revision.Text != nil {
		t.Errorf("Text = %+v, want nil", p.Revision.Text)
	}
}

func TestParseDetailedTextAbsentVsEmpty(t *testing.T) {
	withEmptyText := `
<page><title>A</title><ns>0</ns><id>1</id>
<revision><id>1</id><timestamp>t</timestamp><model>wikitext</model>
<text bytes="0" space="preserve"></text></revision></page>`
	withoutText := `
<page><title>B</title><ns>0</ns><id>2</id>
<revision><id>1</id><timestamp>t</timestamp><model>wikitext</model></revision></page>`

	pages, err := ParseDetailed(strings.NewReader(withEmptyText + withoutText))
	if err != nil {
		t.Fatalf("ParseDetailed: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("len(pages) = %d, want 2", len(pages))
	}
	if pages[0].Revision.Text == nil {
		t.Fatalf("page A: Text is nil, want present-but-empty")
	}
	if pages[0].Revision.Text.Value != "" {
		t.Errorf("page A: Text.Value = %q, want empty", pages[0].Revision.Text.Value)
	}
	if pages[1].Revision.Text != nil {
		t.Errorf("page B: Text = %+v, want nil (absent)", pages[1].Revision.Text)
	}
}

func TestParseDetailedRedirect(t *testing.T) {
	xmlFragment := `
<page>
  <title>Old Name</title>
  <ns>0</ns>
  <id>99</id>
  <redirect title="New Name" />
  <revision><id>1</id><timestamp>t</timestamp><model>wikitext</model></revision>
</page>`
	pages, err := ParseDetailed(strings.NewReader(xmlFragment))
	if err != nil {
		t.Fatalf("ParseDetailed: %v", err)
	}
	if !pages[0].IsRedirect() {
		t.Fatalf("IsRedirect() = false, want true")
	}
	if pages[0].Redirect.Title != "New Name" {
		t.Errorf("Redirect.Title = %q, want %q", pages[0].Redirect.Title, "New Name")
	}
}

func TestParseHeadersIgnoresUnknownElements(t *testing.T) {
	xmlFragment := `
<siteinfo><sitename>Wikipedia</sitename></siteinfo>
<page><title>Only</title><ns>0</ns><id>1</id></page>
<somethingElse><weird>true</weird></somethingElse>
`
	pages, err := ParseHeaders(strings.NewReader(xmlFragment))
	if err != nil {
		t.Fatalf("ParseHeaders: %v", err)
	}
	if len(pages) != 1 || pages[0].Title != "Only" {
		t.Errorf("pages = %+v", pages)
	}
}
