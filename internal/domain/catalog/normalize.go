// Package catalog contiene reglas de dominio del catálogo de vehículos que no dependen de la persistencia.
package catalog

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PlaceholderBaseURL servicio de imágenes genéricas usado cuando un producto llega sin fotos.
const PlaceholderBaseURL = "https://placehold.co/800x600?text="

// PlaceholderImage devuelve la URL de imagen genérica derivada del nombre del producto.
func PlaceholderImage(name string) string {
	label := strings.TrimSpace(name)
	if label == "" {
		label = "Vehiculo"
	}
	return PlaceholderBaseURL + url.QueryEscape(label)
}

// NormalizeImages une la imagen suelta y la lista de imágenes, descarta vacíos y duplicados
// (conservando el orden) y, si no queda ninguna, devuelve un único placeholder.
func NormalizeImages(name string, single string, images []string) []string {
	out := make([]string, 0, len(images)+1)
	seen := make(map[string]struct{}, len(images)+1)
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	add(single)
	for _, img := range images {
		add(img)
	}
	if len(out) == 0 {
		return []string{PlaceholderImage(name)}
	}
	return out
}

// FoldCategory pasa una categoría a minúsculas sin tildes ni espacios sobrantes
// ("  Sedán " y "sedan" comparan igual).
func FoldCategory(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// SameCategory compara dos categorías ignorando mayúsculas y tildes.
func SameCategory(a, b string) bool {
	return FoldCategory(a) == FoldCategory(b)
}
