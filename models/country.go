package models

// Country represents one row of the ISO-3166-1 alpha-2 index table
type Country struct {
	Alpha2 string `json:"alpha2"`
	Name   string `json:"name"`
	// FlagURL is only populated when a flag URL base was supplied;
	// the key is omitted from the JSON output otherwise
	FlagURL string `json:"flagUrl,omitempty"`
}

// CountryDetails is a Country enriched with fields scraped from the
// country's own Wikipedia article. The embedded Country flattens into
// the same JSON object, so an enriched record serializes as one map.
type CountryDetails struct {
	Country

	// Sovereign is true when the article carries a full national
	// infobox, false for dependent territories and for pages with
	// no recognized infobox at all
	Sovereign        bool    `json:"sovereign"`
	FullName         string  `json:"fullName"`
	Capital          *string `json:"capital"`
	OfficialLanguage *string `json:"officialLanguage"`
}
