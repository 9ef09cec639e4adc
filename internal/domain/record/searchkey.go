package record

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FoldSearchText lowercases s and strips diacritics so that "São João"
// and "SAO JOAO" compare equal.
func FoldSearchText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return strings.Join(strings.Fields(cases.Fold().String(stripped)), " ")
}

// buildSearchKey indexes everything an operator may type into the search box.
func buildSearchKey(identifier Identifier, name string, e *Enrichment) string {
	parts := []string{identifier.String(), FoldSearchText(name)}
	if e != nil {
		if e.TradeName != nil {
			parts = append(parts, FoldSearchText(*e.TradeName))
		}
		if e.LegalName != "" && e.LegalName != name {
			parts = append(parts, FoldSearchText(e.LegalName))
		}
	}
	return strings.Join(parts, " ")
}
