package catalog

import (
	"net/url"
	"path"
	"strings"
)

const (
	// ProductAssetsDir prefijo canónico de las imágenes de productos.
	ProductAssetsDir = "assets/products/"
	// PlaceholderImage imagen por defecto cuando no hay una utilizable.
	PlaceholderImage = ProductAssetsDir + "placeholder.jpg"
)

// NormalizeImageRef reduce una referencia de imagen a su forma canónica:
//   - data URIs se conservan tal cual;
//   - URLs absolutas de hosts de confianza (storage propio) se conservan;
//   - prefijos de dominio duplicados ("https://a.ruhttps://a.ru/x.jpg"), URLs de
//     hosts ajenos y segmentos repetidos se colapsan a assets/products/<archivo>;
//   - si no queda un nombre de archivo utilizable se devuelve PlaceholderImage.
func NormalizeImageRef(ref string, trustedHosts []string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(ref, "data:") {
		return ref
	}

	// Prefijo de dominio duplicado: quedarse con la última URL completa.
	if i := lastSchemeIndex(ref); i > 0 {
		ref = ref[i:]
	}

	p := ref
	if strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") {
		u, err := url.Parse(ref)
		if err != nil {
			return PlaceholderImage
		}
		if isTrusted(u.Hostname(), trustedHosts) {
			return ref
		}
		p = u.Path
	}

	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	base := path.Base(strings.TrimRight(p, "/"))
	if base == "" || base == "." || base == "/" || !strings.Contains(base, ".") {
		return PlaceholderImage
	}
	return ProductAssetsDir + base
}

// NormalizeImages normaliza cada referencia; una lista vacía produce [PlaceholderImage].
// Las referencias duplicadas tras normalizar se eliminan conservando el orden.
func NormalizeImages(refs []string, trustedHosts []string) []string {
	out := make([]string, 0, len(refs))
	seen := make(map[string]bool, len(refs))
	for _, r := range refs {
		if strings.TrimSpace(r) == "" {
			continue
		}
		n := NormalizeImageRef(r, trustedHosts)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if len(out) == 0 {
		return []string{PlaceholderImage}
	}
	return out
}

func lastSchemeIndex(s string) int {
	last := -1
	for _, scheme := range []string{"http://", "https://"} {
		if i := strings.LastIndex(s, scheme); i > last {
			last = i
		}
	}
	return last
}

func isTrusted(host string, trusted []string) bool {
	host = strings.ToLower(host)
	for _, t := range trusted {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" && host == t {
			return true
		}
	}
	return false
}
