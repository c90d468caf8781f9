package speaker

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category identifies what kind of speaker a raw transcript label denotes.
type Category string

const (
	// CategoryPerson is an individual member; the only category that is matched.
	CategoryPerson Category = "person"
	// CategoryRole is an institutional title (president, secretary, clerk) or
	// a procedural line (votes, motions).
	CategoryRole Category = "role"
	// CategoryCrowd is a collective voice ("Des voix").
	CategoryCrowd Category = "crowd"
	// CategoryEmpty is a blank label.
	CategoryEmpty Category = "empty"
)

// roles are institutional titles matched exactly after lowering and accent
// stripping.
var roles = map[string]struct{}{
	"le president":             {},
	"la presidente":            {},
	"le vice-president":        {},
	"la vice-presidente":       {},
	"le president suppleant":   {},
	"la presidente suppleante": {},
	"le secretaire":            {},
	"la secretaire":            {},
	"le greffier":              {},
	"la greffiere":             {},
	"une voix":                 {},
}

// rolePrefixes catch titles carrying extra qualifiers ("Le Président (M. X)").
var rolePrefixes = []string{
	"le president",
	"la presidente",
	"le vice-president",
	"la vice-presidente",
	"le secretaire",
	"la secretaire",
	"le greffier",
	"la greffiere",
}

// roleKeywords mark procedural lines wherever they appear in the label.
var roleKeywords = []string{"vote", "motion", "grief"}

var crowds = map[string]struct{}{
	"des voix":       {},
	"plusieurs voix": {},
}

var (
	leadingNoisePattern = regexp.MustCompile(`^[\d\s]+`)

	// Trailing comma-introduced district mention, e.g. ", Chauveau".
	trailingDistrictPattern = regexp.MustCompile(`,\s*(\p{Lu}.*)$`)

	// Trailing action annotation after a parenthesis or dash; the opening
	// delimiter is optional so "Tremblay suite" and "Tremblay (suite)" both
	// strip.
	trailingActionPattern = regexp.MustCompile(
		`(?i)(?:\s+|\s*[(\-–—]\s*)(r[ée]plique|suite|en remplacement|par int[ée]rim|suppl[ée]ante?)[)\s]*$`)

	// Honorific glued to a capitalized name with no separating space,
	// e.g. "M.Caire".
	gluedHonorificPattern = regexp.MustCompile(`^(?:M\.|Mme\.?|m\.|mme\.?)(\p{Lu})`)

	honorificPattern = regexp.MustCompile(`(?i)^(m\.\s*|mme\s+|mme\.\s*|mr\.\s*|mr\s+)`)

	nonAlphaPattern   = regexp.MustCompile(`[^a-z ]`)
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// accentStripper removes combining marks after canonical decomposition.
var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripAccents(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

// Classify sorts a raw speaker label into a category. Leading numeric noise
// is ignored so that page references glued to a title still classify as that
// title.
func Classify(raw string) Category {
	if strings.TrimSpace(raw) == "" {
		return CategoryEmpty
	}

	cleaned := strings.TrimSpace(leadingNoisePattern.ReplaceAllString(strings.TrimSpace(raw), ""))
	key := stripAccents(strings.ToLower(cleaned))

	if _, ok := crowds[key]; ok {
		return CategoryCrowd
	}
	if _, ok := roles[key]; ok {
		return CategoryRole
	}
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(key, prefix) {
			return CategoryRole
		}
	}
	for _, keyword := range roleKeywords {
		if strings.Contains(key, keyword) {
			return CategoryRole
		}
	}
	return CategoryPerson
}

// Normalize classifies a raw speaker label and, for person labels, cleans it
// into the canonical comparable form. The returned district hint is the
// normalized trailing district mention, or empty when none was present.
// Non-person categories return an empty name and no hint.
func Normalize(raw string) (Category, string, string) {
	category := Classify(raw)
	if category != CategoryPerson {
		return category, "", ""
	}

	name := strings.TrimSpace(raw)

	districtHint := ""
	if m := trailingDistrictPattern.FindStringSubmatch(name); m != nil {
		districtHint = NormalizeMemberName(m[1])
		name = strings.TrimSpace(trailingDistrictPattern.ReplaceAllString(name, ""))
	}

	name = strings.TrimSpace(leadingNoisePattern.ReplaceAllString(name, ""))
	name = strings.TrimSpace(trailingActionPattern.ReplaceAllString(name, ""))
	name = gluedHonorificPattern.ReplaceAllString(name, "$1")
	name = strings.TrimSpace(honorificPattern.ReplaceAllString(name, ""))

	return category, canonical(name), districtHint
}

// NormalizeMemberName produces the canonical comparable form for a roster
// entry. A comma signals the "Lastname, Firstname" convention and the parts
// are reordered before normalization.
func NormalizeMemberName(name string) string {
	if before, after, found := strings.Cut(name, ","); found {
		name = strings.TrimSpace(after) + " " + strings.TrimSpace(before)
	}
	return canonical(name)
}

// ExtractLastName returns the final whitespace-delimited token of a
// normalized full name, or an empty string.
func ExtractLastName(normalized string) string {
	parts := strings.Fields(normalized)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// canonical lowercases, strips diacritics, deletes everything outside
// lowercase Latin letters and spaces, and collapses whitespace runs.
func canonical(s string) string {
	s = stripAccents(strings.ToLower(s))
	s = nonAlphaPattern.ReplaceAllString(s, "")
	s = multiSpacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
