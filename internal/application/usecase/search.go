package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldSearchTerm normaliza un término de búsqueda: recorta espacios, pliega a
// minúsculas y elimina diacríticos, de modo que "Café " produce "cafe".
// Si la transformación falla se usa el término en minúsculas tal cual.
func FoldSearchTerm(term string) string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return ""
	}
	folded, _, err := transform.String(foldTransformer, term)
	if err != nil {
		return term
	}
	return folded
}
