// Package catalog reúne las reglas puras del catálogo: slugs de categorías y
// normalización de referencias de imágenes de productos.
package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// cyrillic transliteración al alfabeto del slug.
var cyrillic = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "shch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'і': "i", 'ї': "yi", 'є': "ye", 'ґ': "g",
}

// Slugify genera un slug ASCII a partir de un título en cualquier alfabeto.
// Puede devolver "" si el título no contiene caracteres transliterables.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))

	var b strings.Builder
	for _, r := range lower {
		if t, ok := cyrillic[r]; ok {
			b.WriteString(t)
			continue
		}
		b.WriteRune(r)
	}

	// Quita diacríticos latinos (é -> e) antes de filtrar al alfabeto [a-z0-9].
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), b.String())
	if err != nil {
		stripped = b.String()
	}

	var out strings.Builder
	dash := false
	for _, r := range stripped {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
			dash = false
			continue
		}
		if !dash && out.Len() > 0 {
			out.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(out.String(), "-")
}

// ValidateSlug comprueba el formato ^[a-z0-9]+(-[a-z0-9]+)*$.
func ValidateSlug(slug string) error {
	if slug == "" {
		return &domain.ValidationError{Field: "slug", Message: "el slug es obligatorio", Kind: domain.ErrInvalidSlug}
	}
	if !slugRe.MatchString(slug) {
		return &domain.ValidationError{Field: "slug", Message: "solo letras latinas minúsculas, dígitos y guiones simples", Kind: domain.ErrInvalidSlug}
	}
	return nil
}

// SlugTaken indica si otra categoría (distinta de exceptID) ya usa slug.
func SlugTaken(categories []entity.Category, slug string, exceptID entity.ID) bool {
	for _, c := range categories {
		if c.Slug != slug {
			continue
		}
		if !exceptID.IsZero() && c.ID.Equal(exceptID) {
			continue
		}
		return true
	}
	return false
}

// CheckSlug valida formato y unicidad; devuelve ErrDuplicate si está en uso.
func CheckSlug(categories []entity.Category, slug string, exceptID entity.ID) error {
	if err := ValidateSlug(slug); err != nil {
		return err
	}
	if SlugTaken(categories, slug, exceptID) {
		return &domain.ValidationError{Field: "slug", Message: "el slug \"" + slug + "\" ya está en uso", Kind: domain.ErrDuplicate}
	}
	return nil
}
