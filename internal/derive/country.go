package derive

// CanonicalUK is the external-facing label for the United Kingdom. The
// map-data feed names the same geometry "England"; both spellings must
// land in one aggregation bucket.
const CanonicalUK = "UK"

// CanonicalCountry folds the feed's United Kingdom spellings into the
// canonical label. All aggregation and joining happens on the canonical
// name.
func CanonicalCountry(country string) string {
	if country == "England" {
		return CanonicalUK
	}
	return country
}

// countryFlagSuffix maps a country of the dataset to its flag-icon code.
var countryFlagSuffix = []struct {
	Country string
	Suffix  string
}{
	{"Argentina", "ar"},
	{"Australia", "au"},
	{"Austria", "at"},
	{"Belgium", "be"},
	{"Brazil", "br"},
	{"Canada", "ca"},
	{"Denmark", "dk"},
	{"Finland", "fi"},
	{"France", "fr"},
	{"Germany", "de"},
	{"Ireland", "ie"},
	{"Italy", "it"},
	{"Japan", "jp"},
	{"Mexico", "mx"},
	{"Netherlands", "nl"},
	{"Norway", "no"},
	{"Poland", "pl"},
	{"Portugal", "pt"},
	{"Singapore", "sg"},
	{"Spain", "es"},
	{"Sweden", "se"},
	{"Switzerland", "ch"},
	{"UK", "gb"},
	{"USA", "us"},
	{"Venezuela", "ve"},
}

// Countries lists every country of the reference list, in display order.
func Countries() []string {
	out := make([]string, len(countryFlagSuffix))
	for i, e := range countryFlagSuffix {
		out[i] = e.Country
	}
	return out
}

// FlagURL returns the flag image URL for a country, or "" when the
// country is not in the reference list.
func FlagURL(country string) string {
	for _, e := range countryFlagSuffix {
		if e.Country == CanonicalCountry(country) {
			return "https://cdnjs.cloudflare.com/ajax/libs/flag-icon-css/3.5.0/flags/4x3/" + e.Suffix + ".svg"
		}
	}
	return ""
}
