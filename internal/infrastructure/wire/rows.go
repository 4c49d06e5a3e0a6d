package wire

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// Tablas remotas.
const (
	TableCategories      = "categories"
	TableProducts        = "products"
	TableShops           = "shops"
	TableSlides          = "slides"
	TableContactInfo     = "contact_info"
	TableContactMessages = "contact_messages"
)

// CategoryRow fila de la tabla categories.
type CategoryRow struct {
	ID          entity.ID `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Entity mapea la fila al dominio.
func (r CategoryRow) Entity() entity.Category {
	return entity.Category{
		ID:          r.ID,
		Title:       r.Title,
		Image:       r.Image,
		Slug:        r.Slug,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.Time,
	}
}

// ProductRow fila de la tabla products; images y features pueden venir como texto JSON.
type ProductRow struct {
	ID           entity.ID       `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   entity.ID       `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Images       json.RawMessage `json:"images"`
	Stock        int             `json:"stock"`
	Features     json.RawMessage `json:"features"`
	CreatedAt    Timestamp       `json:"created_at"`
	UpdatedAt    Timestamp       `json:"updated_at"`
}

func (r ProductRow) Entity() entity.Product {
	features := DecodeStringList(r.Features)
	if features == nil {
		features = []string{}
	}
	return entity.Product{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		CategoryID:   r.CategoryID,
		CategoryName: r.CategoryName,
		Images:       DecodeImages(r.Images),
		Stock:        r.Stock,
		Features:     features,
		CreatedAt:    r.CreatedAt.Time,
		UpdatedAt:    r.UpdatedAt.Time,
	}
}

// ShopRow fila de la tabla shops; las coordenadas son dos columnas anulables.
type ShopRow struct {
	ID           entity.ID `json:"id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	WorkingHours string    `json:"working_hours"`
	Lat          *float64  `json:"lat"`
	Lng          *float64  `json:"lng"`
}

func (r ShopRow) Entity() entity.Shop {
	s := entity.Shop{
		ID:           r.ID,
		Title:        r.Title,
		Address:      r.Address,
		Description:  r.Description,
		Image:        r.Image,
		Phone:        r.Phone,
		Email:        r.Email,
		WorkingHours: r.WorkingHours,
	}
	if r.Lat != nil && r.Lng != nil {
		s.Coordinates = &entity.Coordinates{Lat: *r.Lat, Lng: *r.Lng}
	}
	return s
}

// SlideRow fila de la tabla slides.
type SlideRow struct {
	ID          entity.ID `json:"id"`
	Image       string    `json:"image"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"is_active"`
}

func (r SlideRow) Entity() entity.Slide {
	return entity.Slide{
		ID:          r.ID,
		Image:       r.Image,
		Title:       r.Title,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

// ContactInfoRow fila única de contact_info; social y about como texto JSON.
type ContactInfoRow struct {
	ID           entity.ID       `json:"id"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	WorkingHours string          `json:"working_hours"`
	MapEmbed     string          `json:"map_embed"`
	Social       json.RawMessage `json:"social"`
	About        json.RawMessage `json:"about"`
}

func (r ContactInfoRow) Entity() entity.ContactInfo {
	social := DecodeList[entity.SocialLink](r.Social)
	if social == nil {
		social = []entity.SocialLink{}
	}
	about := DecodeList[entity.AboutSection](r.About)
	if about == nil {
		about = []entity.AboutSection{}
	}
	id := r.ID
	if id.IsZero() {
		id = entity.IntID(entity.ContactInfoID)
	}
	return entity.ContactInfo{
		ID:           id,
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		WorkingHours: r.WorkingHours,
		MapEmbed:     r.MapEmbed,
		Social:       social,
		About:        about,
	}
}

// ContactMessageRow fila de contact_messages.
type ContactMessageRow struct {
	ID        entity.ID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Processed bool      `json:"processed"`
	CreatedAt Timestamp `json:"created_at"`
}

func (r ContactMessageRow) Entity() entity.ContactMessage {
	return entity.ContactMessage{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Message:   r.Message,
		Processed: r.Processed,
		CreatedAt: r.CreatedAt.Time,
	}
}

func createdAt(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}
