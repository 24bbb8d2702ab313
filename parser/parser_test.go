package parser

import (
	"strings"
	"testing"

	"iso3166-scraper/config"
)

func indexTable(rows string) string {
	return `<html><body><table class="wikitable sortable sort-under"><tbody>` + rows + `</tbody></table></body></html>`
}

func TestParseIndex(t *testing.T) {
	sel := config.Default().Selectors

	tests := []struct {
		name     string
		html     string
		expected []IndexRow
		wantErr  bool
	}{
		{
			name: "single data row with header",
			html: indexTable(
				`<tr><th>Code</th><th>Country name</th></tr>` +
					`<tr><td id="AE">AE</td><td><a href="/wiki/United_Arab_Emirates">United Arab Emirates</a></td></tr>`),
			expected: []IndexRow{
				{Alpha2: "AE", Name: "United Arab Emirates", Href: "/wiki/United_Arab_Emirates"},
			},
		},
		{
			name: "row order preserved",
			html: indexTable(
				`<tr><th>Code</th><th>Country name</th></tr>` +
					`<tr><td id="AD">AD</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>` +
					`<tr><td id="AE">AE</td><td><a href="/wiki/United_Arab_Emirates">United Arab Emirates</a></td></tr>` +
					`<tr><td id="AF">AF</td><td><a href="/wiki/Afghanistan">Afghanistan</a></td></tr>`),
			expected: []IndexRow{
				{Alpha2: "AD", Name: "Andorra", Href: "/wiki/Andorra"},
				{Alpha2: "AE", Name: "United Arab Emirates", Href: "/wiki/United_Arab_Emirates"},
				{Alpha2: "AF", Name: "Afghanistan", Href: "/wiki/Afghanistan"},
			},
		},
		{
			name: "multiple header rows skipped",
			html: indexTable(
				`<tr><th>Code</th><th>Country name</th></tr>` +
					`<tr><td>note</td><td>not a country row</td></tr>` +
					`<tr><td id="AD">AD</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>`),
			expected: []IndexRow{
				{Alpha2: "AD", Name: "Andorra", Href: "/wiki/Andorra"},
			},
		},
		{
			name: "extra classes on table still match",
			html: `<html><body><table class="wikitable sortable sort-under jquery-tablesorter"><tbody>` +
				`<tr><td id="AD">AD</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>` +
				`</tbody></table></body></html>`,
			expected: []IndexRow{
				{Alpha2: "AD", Name: "Andorra", Href: "/wiki/Andorra"},
			},
		},
		{
			name:    "no matching table",
			html:    `<html><body><table class="wikitable"><tbody><tr><td id="AD">AD</td></tr></tbody></table></body></html>`,
			wantErr: true,
		},
		{
			name: "data row missing anchor",
			html: indexTable(
				`<tr><td id="AD">AD</td><td>Andorra</td></tr>`),
			wantErr: true,
		},
		{
			name: "malformed id",
			html: indexTable(
				`<tr><td id="AND">AND</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>`),
			wantErr: true,
		},
		{
			name: "lowercase id rejected",
			html: indexTable(
				`<tr><td id="ad">ad</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewIndexParser(sel).ParseHTML(tt.html)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHTML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseHTML() returned %d rows, want %d", len(got), len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("row %d = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestParseIndexUniqueCodes(t *testing.T) {
	html := indexTable(
		`<tr><th>Code</th><th>Country name</th></tr>` +
			`<tr><td id="AD">AD</td><td><a href="/wiki/Andorra">Andorra</a></td></tr>` +
			`<tr><td id="AE">AE</td><td><a href="/wiki/United_Arab_Emirates">United Arab Emirates</a></td></tr>`)

	rows, err := NewIndexParser(config.Default().Selectors).ParseHTML(html)
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		if len(row.Alpha2) != 2 || row.Alpha2 != strings.ToUpper(row.Alpha2) {
			t.Errorf("alpha2 %q is not a two-letter uppercase code", row.Alpha2)
		}
		if seen[row.Alpha2] {
			t.Errorf("duplicate alpha2 %q", row.Alpha2)
		}
		seen[row.Alpha2] = true
	}
}

func TestDocumentStripsNewlines(t *testing.T) {
	doc, err := Document("<html><body><p>United\nArab\r\nEmirates</p></body></html>")
	if err != nil {
		t.Fatalf("Document() error = %v", err)
	}

	got := doc.Find("p").Text()
	if got != "UnitedArabEmirates" {
		t.Errorf("Document() text = %q, want %q", got, "UnitedArabEmirates")
	}
}
