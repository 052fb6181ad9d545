// Package buscar normaliza términos de búsqueda para comparaciones
// insensibles a mayúsculas y tildes (nombres en español: "Pérez" ~ "perez").
package buscar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar pasa el término a minúsculas y elimina marcas diacríticas.
func Normalizar(termino string) string {
	s := strings.ToLower(strings.TrimSpace(termino))
	out, _, err := transform.String(quitarTildes, s)
	if err != nil {
		return s
	}
	return out
}
