// Package data holds static reference data used to canonicalize complaint
// locations reported through the social scraper.
package data

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LocalityInfo contains metadata about a known locality.
type LocalityInfo struct {
	Canonical string // Normalized slug form
	Zone      string // Administrative zone
}

// localities maps normalized locality names to their info. Curated from the
// areas the demo social feed mentions plus common aliases; free-text
// locations that miss the table fall back to their cleaned form.
var localities = map[string]LocalityInfo{
	// Central
	"connaught place": {Canonical: "connaught-place", Zone: "central"},
	"cp":              {Canonical: "connaught-place", Zone: "central"},
	"karol bagh":      {Canonical: "karol-bagh", Zone: "central"},
	"paharganj":       {Canonical: "paharganj", Zone: "central"},

	// South
	"lajpat nagar":    {Canonical: "lajpat-nagar", Zone: "south"},
	"saket":           {Canonical: "saket", Zone: "south"},
	"vasant vihar":    {Canonical: "vasant-vihar", Zone: "south"},
	"green park":      {Canonical: "green-park", Zone: "south"},
	"green park extn": {Canonical: "green-park", Zone: "south"},
	"rk puram":        {Canonical: "rk-puram", Zone: "south"},
	"r k puram":       {Canonical: "rk-puram", Zone: "south"},
	"hauz khas":       {Canonical: "hauz-khas", Zone: "south"},
	"mg road":         {Canonical: "mg-road", Zone: "south"},
	"m g road":        {Canonical: "mg-road", Zone: "south"},

	// West
	"dwarka":           {Canonical: "dwarka", Zone: "west"},
	"dwarka sector 14": {Canonical: "dwarka-sector-14", Zone: "west"},
	"janakpuri":        {Canonical: "janakpuri", Zone: "west"},
	"rajouri garden":   {Canonical: "rajouri-garden", Zone: "west"},

	// North
	"rohini":       {Canonical: "rohini", Zone: "north"},
	"pitampura":    {Canonical: "pitampura", Zone: "north"},
	"model town":   {Canonical: "model-town", Zone: "north"},
	"civil lines":  {Canonical: "civil-lines", Zone: "north"},
	"kamla nagar":  {Canonical: "kamla-nagar", Zone: "north"},

	// East
	"laxmi nagar":    {Canonical: "laxmi-nagar", Zone: "east"},
	"preet vihar":    {Canonical: "preet-vihar", Zone: "east"},
	"mayur vihar":    {Canonical: "mayur-vihar", Zone: "east"},
	"shahdara":       {Canonical: "shahdara", Zone: "east"},
	"patparganj":     {Canonical: "patparganj", Zone: "east"},
}

// collapseSpaces folds runs of whitespace into single spaces.
var collapseSpaces = regexp.MustCompile(`\s+`)

// stripMarks removes combining marks after NFD decomposition, so accented
// spellings fold onto their ASCII forms.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and punctuation, and collapses
// whitespace. The result is the lookup key form.
func Normalize(name string) string {
	folded, _, err := transform.String(stripMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range strings.ToLower(folded) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(collapseSpaces.ReplaceAllString(b.String(), " "))
}

// Lookup finds locality info for a free-text location.
func Lookup(name string) (LocalityInfo, bool) {
	info, ok := localities[Normalize(name)]
	return info, ok
}

// Canonicalize returns the canonical slug for a known locality, or the
// normalized input when the locality is not in the table.
func Canonicalize(name string) string {
	normalized := Normalize(name)
	if info, ok := localities[normalized]; ok {
		return info.Canonical
	}
	return normalized
}
