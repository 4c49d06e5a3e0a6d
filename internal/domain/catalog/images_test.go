package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mebel-store/internal/domain/catalog"
)

func TestNormalizeImageRef(t *testing.T) {
	trusted := []string{"cdn.mebel.ru"}
	cases := []struct {
		in, want string
	}{
		{"http://foo.com/x/y/bed1.jpg", "assets/products/bed1.jpg"},
		{"assets/products/bed1.jpg", "assets/products/bed1.jpg"},
		{"/assets/products/assets/products/sofa.png", "assets/products/sofa.png"},
		{"https://mebel.ruhttps://mebel.ru/assets/products/chair.webp", "assets/products/chair.webp"},
		{"https://foo.com/img/table.jpg?w=300#x", "assets/products/table.jpg"},
		{"https://cdn.mebel.ru/storage/v1/table.jpg", "https://cdn.mebel.ru/storage/v1/table.jpg"},
		{"data:image/png;base64,AAAA", "data:image/png;base64,AAAA"},
		{"", catalog.PlaceholderImage},
		{"https://foo.com/", catalog.PlaceholderImage},
		{"just-a-name", catalog.PlaceholderImage},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.NormalizeImageRef(tc.in, trusted), "NormalizeImageRef(%q)", tc.in)
	}
}

func TestNormalizeImages(t *testing.T) {
	assert.Equal(t, []string{"assets/products/bed1.jpg"},
		catalog.NormalizeImages([]string{"http://foo.com/x/y/bed1.jpg"}, nil))
	assert.Equal(t, []string{catalog.PlaceholderImage}, catalog.NormalizeImages(nil, nil))
	assert.Equal(t, []string{catalog.PlaceholderImage}, catalog.NormalizeImages([]string{"", "  "}, nil))
	assert.Equal(t, []string{"assets/products/a.jpg", "assets/products/b.jpg"},
		catalog.NormalizeImages([]string{"a.jpg", "http://x.com/a.jpg", "b.jpg"}, nil),
		"los duplicados tras normalizar se eliminan")
}
