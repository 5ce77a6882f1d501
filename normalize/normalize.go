// Package normalize canonicalizes the free-text fields coming out of the
// spreadsheets: locality names, person names, company names and waste-type
// labels. The typo tables are curated from two years of hand-edited exports.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	titleCaser   = cases.Title(language.Und)

	innerSpace = regexp.MustCompile(`\s+`)

	// Administrative prefixes on locality names ("Com. Sacuieu",
	// "Municipiul Oradea"). Longer variants listed first so "Comuna" is not
	// half-eaten by "Com".
	localityPrefix = regexp.MustCompile(`^(?i:municipiul|comuna|oras|ors|mun|com|sat)(?:\.\s*|\s+)`)

	illegalChars = regexp.MustCompile(`[\\/:*?"<>|]`)

	// Legal-entity suffixes on company names. Matching is for the identity
	// key only; display names keep the suffix.
	companySuffix = regexp.MustCompile(`(?i)\s+(S\.?R\.?L\.?|SRL|SA|S\.A\.|BV|DOO|SPOLKA.*|GMBH|LTD)\.?\s*$`)
)

// localityTypos is an exact-match (whole string, lowercased) correction
// table of misspellings observed in the data. Substring matching is
// deliberately avoided: it caused false corrections in early imports.
var localityTypos = map[string]string{
	"oradsea": "oradea", "oradaea": "oradea", "oradae": "oradea",
	"orade": "oradea", "oradera": "oradea", "oradrea": "oradea",
	"oradxea": "oradea",
	"simlu silvaniei":      "simleul silvaniei",
	"simleul sivaniei":     "simleul silvaniei",
	"simleul silvaniaei":   "simleul silvaniei",
	"simleul ilvaniei":     "simleul silvaniei",
	"simleul silaniei":     "simleul silvaniei",
	"simleulsilvaniei":     "simleul silvaniei",
	"simleu sivaniei":      "simleul silvaniei",
	"simleul silvaneii":    "simleul silvaniei",
	"simleu silvanies":     "simleul silvaniei",
	"simlaul silvaniei":    "simleul silvaniei",
	"simleu silvaniei":     "simleul silvaniei",
	"sacuieni": "sacueni", "sacuinei": "sacueni", "sacuieu": "sacueni",
	"sinmartin": "sanmartin", "sin,martin": "sanmartin",
}

// wasteLabelTypos are case-insensitive substring replacements. JENTI/JANTE
// is the rim-label variant pair that otherwise splits one waste type in two.
var wasteLabelTypos = []struct {
	pattern *regexp.Regexp
	fix     string
}{
	{regexp.MustCompile(`(?i)JENTI`), "JANTE"},
	{regexp.MustCompile(`(?i)HARTTIE`), "HARTIE"},
	{regexp.MustCompile(`(?i)ALUMINUI`), "ALUMINIU"},
}

// Clean trims and collapses inner whitespace. The second return is false for
// empty or all-whitespace input, so callers store NULL instead of "".
func Clean(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	s = innerSpace.ReplaceAllString(s, " ")
	return s, true
}

// FoldDiacritics converts Romanian diacritics to their ASCII base letters
// (Oraş -> Oras). The exports mix both spellings freely.
func FoldDiacritics(s string) string {
	result, _, err := transform.String(stripAccents, s)
	if err != nil {
		return s
	}
	return result
}

// Locality canonicalizes a city/commune name: administrative prefix
// stripped, known typos fixed, title-cased.
func Locality(s string) (string, bool) {
	s, ok := Clean(s)
	if !ok {
		return "", false
	}
	s = strings.ToLower(FoldDiacritics(s))
	s = localityPrefix.ReplaceAllString(s, "")
	s = illegalChars.ReplaceAllString(s, "")
	s, ok = Clean(s)
	if !ok {
		return "", false
	}
	if fix, found := localityTypos[s]; found {
		s = fix
	}
	return titleCaser.String(s), true
}

// PersonName title-cases a person name.
func PersonName(s string) (string, bool) {
	s, ok := Clean(s)
	if !ok {
		return "", false
	}
	return titleCaser.String(strings.ToLower(s)), true
}

// County title-cases a county name so Bihor, BIHOR and bihor collapse.
func County(s string) (string, bool) {
	s, ok := Clean(s)
	if !ok {
		return "", false
	}
	return titleCaser.String(strings.ToLower(FoldDiacritics(s))), true
}

// CompanyKey builds the matching key for a company: legal-entity suffix
// stripped, upper-cased. Distinct from the display name on purpose, so
// "Calitex SRL" and "CALITEX" land on one dimension row.
func CompanyKey(s string) (string, bool) {
	s, ok := Clean(s)
	if !ok {
		return "", false
	}
	s = companySuffix.ReplaceAllString(s, "")
	s, ok = Clean(s)
	if !ok {
		return "", false
	}
	return strings.ToUpper(s), true
}

// WasteLabel fixes known typos in a waste column label.
func WasteLabel(s string) string {
	for _, t := range wasteLabelTypos {
		s = t.pattern.ReplaceAllString(s, t.fix)
	}
	return s
}
