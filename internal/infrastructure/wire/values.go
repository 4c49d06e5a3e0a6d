package wire

import (
	"sort"
	"time"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// Values columnas → valor para INSERT/UPDATE. Los valores son tipos primitivos,
// decimal o time, aptos tanto para JSON como para parámetros de pgx.
type Values map[string]any

// Columns nombres de columna en orden estable.
func (v Values) Columns() []string {
	cols := make([]string, 0, len(v))
	for k := range v {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// IDValue representación primitiva de un ID (int64, string o nil).
func IDValue(id entity.ID) any {
	if id.IsZero() {
		return nil
	}
	if n, ok := id.Int(); ok {
		return n
	}
	return id.String()
}

// CategoryValues columnas de inserción (sin id: lo asigna el servidor).
func CategoryValues(c entity.Category) Values {
	return Values{
		"title":       c.Title,
		"image":       c.Image,
		"slug":        c.Slug,
		"description": c.Description,
		"order":       c.Order,
		"is_active":   c.IsActive,
		"created_at":  createdAt(c.CreatedAt),
	}
}

// CategoryPatchValues solo los campos presentes en el patch.
func CategoryPatchValues(p entity.CategoryPatch) Values {
	v := Values{}
	if p.Title != nil {
		v["title"] = *p.Title
	}
	if p.Image != nil {
		v["image"] = *p.Image
	}
	if p.Slug != nil {
		v["slug"] = *p.Slug
	}
	if p.Description != nil {
		v["description"] = *p.Description
	}
	if p.Order != nil {
		v["order"] = *p.Order
	}
	if p.IsActive != nil {
		v["is_active"] = *p.IsActive
	}
	return v
}

func ProductValues(p entity.Product) Values {
	created := createdAt(p.CreatedAt)
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = created
	}
	return Values{
		"name":          p.Name,
		"description":   p.Description,
		"price":         p.Price,
		"category_id":   IDValue(p.CategoryID),
		"category_name": p.CategoryName,
		"images":        EncodeList(p.Images),
		"stock":         p.Stock,
		"features":      EncodeList(p.Features),
		"created_at":    created,
		"updated_at":    updated.UTC(),
	}
}

// ProductPatchValues incluye updated_at solo si hay algún campo que escribir.
func ProductPatchValues(p entity.ProductPatch) Values {
	v := Values{}
	if p.Name != nil {
		v["name"] = *p.Name
	}
	if p.Description != nil {
		v["description"] = *p.Description
	}
	if p.Price != nil {
		v["price"] = *p.Price
	}
	if p.CategoryID != nil {
		v["category_id"] = IDValue(*p.CategoryID)
	}
	if p.CategoryName != nil {
		v["category_name"] = *p.CategoryName
	}
	if p.Images != nil {
		v["images"] = EncodeList(*p.Images)
	}
	if p.Stock != nil {
		v["stock"] = *p.Stock
	}
	if p.Features != nil {
		v["features"] = EncodeList(*p.Features)
	}
	if len(v) > 0 {
		v["updated_at"] = time.Now().UTC()
	}
	return v
}

func ShopValues(s entity.Shop) Values {
	v := Values{
		"title":         s.Title,
		"address":       s.Address,
		"description":   s.Description,
		"image":         s.Image,
		"phone":         s.Phone,
		"email":         s.Email,
		"working_hours": s.WorkingHours,
		"lat":           nil,
		"lng":           nil,
	}
	// Los IDs de tienda son cadenas; si ya hay uno (uuid local) se conserva.
	if !s.ID.IsZero() {
		v["id"] = IDValue(s.ID)
	}
	if s.Coordinates != nil {
		v["lat"] = s.Coordinates.Lat
		v["lng"] = s.Coordinates.Lng
	}
	return v
}

func ShopPatchValues(p entity.ShopPatch) Values {
	v := Values{}
	if p.Title != nil {
		v["title"] = *p.Title
	}
	if p.Address != nil {
		v["address"] = *p.Address
	}
	if p.Description != nil {
		v["description"] = *p.Description
	}
	if p.Image != nil {
		v["image"] = *p.Image
	}
	if p.Phone != nil {
		v["phone"] = *p.Phone
	}
	if p.Email != nil {
		v["email"] = *p.Email
	}
	if p.WorkingHours != nil {
		v["working_hours"] = *p.WorkingHours
	}
	if p.Coordinates != nil {
		if c := *p.Coordinates; c != nil {
			v["lat"], v["lng"] = c.Lat, c.Lng
		} else {
			v["lat"], v["lng"] = nil, nil
		}
	}
	return v
}

func SlideValues(s entity.Slide) Values {
	return Values{
		"image":       s.Image,
		"title":       s.Title,
		"description": s.Description,
		"order":       s.Order,
		"is_active":   s.IsActive,
	}
}

func SlidePatchValues(p entity.SlidePatch) Values {
	v := Values{}
	if p.Image != nil {
		v["image"] = *p.Image
	}
	if p.Title != nil {
		v["title"] = *p.Title
	}
	if p.Description != nil {
		v["description"] = *p.Description
	}
	if p.Order != nil {
		v["order"] = *p.Order
	}
	if p.IsActive != nil {
		v["is_active"] = *p.IsActive
	}
	return v
}

// ContactInfoValues registro completo para upsert (id fijo).
func ContactInfoValues(c entity.ContactInfo) Values {
	return Values{
		"id":            entity.ContactInfoID,
		"phone":         c.Phone,
		"email":         c.Email,
		"address":       c.Address,
		"working_hours": c.WorkingHours,
		"map_embed":     c.MapEmbed,
		"social":        EncodeList(c.Social),
		"about":         EncodeList(c.About),
	}
}

func ContactMessageValues(m entity.ContactMessage) Values {
	v := Values{
		"name":       m.Name,
		"phone":      m.Phone,
		"email":      m.Email,
		"message":    m.Message,
		"processed":  m.Processed,
		"created_at": createdAt(m.CreatedAt),
	}
	if !m.ID.IsZero() {
		v["id"] = IDValue(m.ID)
	}
	return v
}

func ContactMessagePatchValues(p entity.ContactMessagePatch) Values {
	v := Values{}
	if p.Processed != nil {
		v["processed"] = *p.Processed
	}
	return v
}
