// Package seed expone las colecciones por defecto embebidas en defaults.yaml.
package seed

import (
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type document struct {
	Categories []struct {
		ID          int64  `yaml:"id"`
		Title       string `yaml:"title"`
		Slug        string `yaml:"slug"`
		Image       string `yaml:"image"`
		Description string `yaml:"description"`
		Order       int    `yaml:"order"`
		IsActive    bool   `yaml:"is_active"`
	} `yaml:"categories"`
	Products []struct {
		ID          int64    `yaml:"id"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       string   `yaml:"price"`
		CategoryID  int64    `yaml:"category_id"`
		Images      []string `yaml:"images"`
		Stock       int      `yaml:"stock"`
		Features    []string `yaml:"features"`
	} `yaml:"products"`
	Shops []struct {
		ID           string   `yaml:"id"`
		Title        string   `yaml:"title"`
		Address      string   `yaml:"address"`
		Description  string   `yaml:"description"`
		Image        string   `yaml:"image"`
		Phone        string   `yaml:"phone"`
		Email        string   `yaml:"email"`
		WorkingHours string   `yaml:"working_hours"`
		Lat          *float64 `yaml:"lat"`
		Lng          *float64 `yaml:"lng"`
	} `yaml:"shops"`
	Slides []struct {
		ID          int64  `yaml:"id"`
		Image       string `yaml:"image"`
		Title       string `yaml:"title"`
		Description string `yaml:"description"`
		Order       int    `yaml:"order"`
		IsActive    bool   `yaml:"is_active"`
	} `yaml:"slides"`
	ContactInfo struct {
		Phone        string                `yaml:"phone"`
		Email        string                `yaml:"email"`
		Address      string                `yaml:"address"`
		WorkingHours string                `yaml:"working_hours"`
		MapEmbed     string                `yaml:"map_embed"`
		Social       []entity.SocialLink   `yaml:"social"`
		About        []entity.AboutSection `yaml:"about"`
	} `yaml:"contact_info"`
}

var (
	once   sync.Once
	parsed document
	errDoc error
)

func load() (document, error) {
	once.Do(func() {
		errDoc = yaml.Unmarshal(defaultsYAML, &parsed)
		if errDoc != nil {
			errDoc = fmt.Errorf("seed: defaults.yaml: %w", errDoc)
		}
	})
	return parsed, errDoc
}

// seedTime fecha fija de creación de los datos por defecto.
var seedTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Categories categorías por defecto (Гостиная, Спальня, Кухня).
func Categories() []entity.Category {
	doc, err := load()
	if err != nil {
		return nil
	}
	out := make([]entity.Category, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		out = append(out, entity.Category{
			ID:          entity.IntID(c.ID),
			Title:       c.Title,
			Image:       c.Image,
			Slug:        c.Slug,
			Description: c.Description,
			Order:       c.Order,
			IsActive:    c.IsActive,
			CreatedAt:   seedTime,
		})
	}
	return out
}

// Products productos de ejemplo; el nombre de categoría se resuelve contra Categories.
func Products() []entity.Product {
	doc, err := load()
	if err != nil {
		return nil
	}
	names := make(map[int64]string)
	for _, c := range doc.Categories {
		names[c.ID] = c.Title
	}
	out := make([]entity.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			price = decimal.Zero
		}
		out = append(out, entity.Product{
			ID:           entity.IntID(p.ID),
			Name:         p.Name,
			Description:  p.Description,
			Price:        price,
			CategoryID:   entity.IntID(p.CategoryID),
			CategoryName: names[p.CategoryID],
			Images:       append([]string(nil), p.Images...),
			Stock:        p.Stock,
			Features:     append([]string(nil), p.Features...),
			CreatedAt:    seedTime,
			UpdatedAt:    seedTime,
		})
	}
	return out
}

// Shops tiendas por defecto.
func Shops() []entity.Shop {
	doc, err := load()
	if err != nil {
		return nil
	}
	out := make([]entity.Shop, 0, len(doc.Shops))
	for _, s := range doc.Shops {
		shop := entity.Shop{
			ID:           entity.StringID(s.ID),
			Title:        s.Title,
			Address:      s.Address,
			Description:  s.Description,
			Image:        s.Image,
			Phone:        s.Phone,
			Email:        s.Email,
			WorkingHours: s.WorkingHours,
		}
		if s.Lat != nil && s.Lng != nil {
			shop.Coordinates = &entity.Coordinates{Lat: *s.Lat, Lng: *s.Lng}
		}
		out = append(out, shop)
	}
	return out
}

// Slides banners por defecto.
func Slides() []entity.Slide {
	doc, err := load()
	if err != nil {
		return nil
	}
	out := make([]entity.Slide, 0, len(doc.Slides))
	for _, s := range doc.Slides {
		out = append(out, entity.Slide{
			ID:          entity.IntID(s.ID),
			Image:       s.Image,
			Title:       s.Title,
			Description: s.Description,
			Order:       s.Order,
			IsActive:    s.IsActive,
		})
	}
	return out
}

// ContactInfo registro de contacto por defecto (id = 1).
func ContactInfo() entity.ContactInfo {
	doc, err := load()
	if err != nil {
		return entity.ContactInfo{ID: entity.IntID(entity.ContactInfoID)}
	}
	c := doc.ContactInfo
	return entity.ContactInfo{
		ID:           entity.IntID(entity.ContactInfoID),
		Phone:        c.Phone,
		Email:        c.Email,
		Address:      c.Address,
		WorkingHours: c.WorkingHours,
		MapEmbed:     c.MapEmbed,
		Social:       append([]entity.SocialLink{}, c.Social...),
		About:        append([]entity.AboutSection{}, c.About...),
	}.Clone()
}
