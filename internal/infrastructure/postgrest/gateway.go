package postgrest

import (
	"context"
	"fmt"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/internal/infrastructure/wire"
)

// row fila de cable que sabe mapearse a su entidad.
type row[T any] interface {
	Entity() T
}

// Table gateway genérico de una tabla: fila R ⇄ entidad T, patch P ⇒ columnas.
type Table[T, P any, R row[T]] struct {
	client *Client
	name   string
	order  string
	values func(T) wire.Values
	patch  func(P) wire.Values
}

// FetchAll lee la tabla completa en su orden natural.
func (t *Table[T, P, R]) FetchAll(ctx context.Context) ([]T, error) {
	var rows []R
	if err := t.client.Select(ctx, t.name, t.order, &rows); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Entity())
	}
	return out, nil
}

// Create inserta item y devuelve la fila creada por el servidor.
func (t *Table[T, P, R]) Create(ctx context.Context, item T) (*T, error) {
	var rows []R
	if err := t.client.Insert(ctx, t.name, t.values(item), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgrest %s: insert sin representación", t.name)
	}
	created := rows[0].Entity()
	return &created, nil
}

// Update escribe solo las columnas presentes en patch; un patch vacío no llama al backend.
func (t *Table[T, P, R]) Update(ctx context.Context, id entity.ID, patch P) error {
	values := t.patch(patch)
	if len(values) == 0 {
		return nil
	}
	return t.client.Update(ctx, t.name, id, values)
}

func (t *Table[T, P, R]) Delete(ctx context.Context, id entity.ID) error {
	return t.client.Delete(ctx, t.name, id)
}

var (
	_ repository.CategoryGateway       = (*CategoryGateway)(nil)
	_ repository.CategoryNameLookup    = (*CategoryGateway)(nil)
	_ repository.ProductGateway        = (*ProductGateway)(nil)
	_ repository.ShopGateway           = (*Table[entity.Shop, entity.ShopPatch, wire.ShopRow])(nil)
	_ repository.SlideGateway          = (*Table[entity.Slide, entity.SlidePatch, wire.SlideRow])(nil)
	_ repository.ContactMessageGateway = (*Table[entity.ContactMessage, entity.ContactMessagePatch, wire.ContactMessageRow])(nil)
	_ repository.ContactInfoGateway    = (*ContactInfoGateway)(nil)
)

// CategoryGateway categorías ordenadas por "order"; también resuelve títulos por ID.
type CategoryGateway struct {
	*Table[entity.Category, entity.CategoryPatch, wire.CategoryRow]
}

// NewCategoryGateway construye el gateway de categorías.
func NewCategoryGateway(c *Client) *CategoryGateway {
	return &CategoryGateway{&Table[entity.Category, entity.CategoryPatch, wire.CategoryRow]{
		client: c,
		name:   wire.TableCategories,
		order:  "order.asc",
		values: wire.CategoryValues,
		patch:  wire.CategoryPatchValues,
	}}
}

// CategoryTitle devuelve el título de la categoría id ("" si no existe).
func (g *CategoryGateway) CategoryTitle(ctx context.Context, id entity.ID) (string, error) {
	var rows []struct {
		Title string `json:"title"`
	}
	if err := g.client.SelectByID(ctx, g.name, "title", id, &rows); err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].Title, nil
}

// ProductGateway productos; completa category_name antes de insertar si falta.
type ProductGateway struct {
	*Table[entity.Product, entity.ProductPatch, wire.ProductRow]
	categories repository.CategoryNameLookup
}

func NewProductGateway(c *Client, categories repository.CategoryNameLookup) *ProductGateway {
	return &ProductGateway{
		Table: &Table[entity.Product, entity.ProductPatch, wire.ProductRow]{
			client: c,
			name:   wire.TableProducts,
			order:  "id.asc",
			values: wire.ProductValues,
			patch:  wire.ProductPatchValues,
		},
		categories: categories,
	}
}

// Create trabaja sobre una copia: el producto del llamador no se modifica.
func (g *ProductGateway) Create(ctx context.Context, p entity.Product) (*entity.Product, error) {
	p = p.Clone()
	if p.CategoryName == "" && !p.CategoryID.IsZero() && g.categories != nil {
		name, err := g.categories.CategoryTitle(ctx, p.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("resolver nombre de categoría: %w", err)
		}
		p.CategoryName = name
	}
	return g.Table.Create(ctx, p)
}

func NewShopGateway(c *Client) *Table[entity.Shop, entity.ShopPatch, wire.ShopRow] {
	return &Table[entity.Shop, entity.ShopPatch, wire.ShopRow]{
		client: c,
		name:   wire.TableShops,
		order:  "title.asc",
		values: wire.ShopValues,
		patch:  wire.ShopPatchValues,
	}
}

func NewSlideGateway(c *Client) *Table[entity.Slide, entity.SlidePatch, wire.SlideRow] {
	return &Table[entity.Slide, entity.SlidePatch, wire.SlideRow]{
		client: c,
		name:   wire.TableSlides,
		order:  "order.asc",
		values: wire.SlideValues,
		patch:  wire.SlidePatchValues,
	}
}

// NewContactMessageGateway solicitudes de contacto, las más recientes primero.
func NewContactMessageGateway(c *Client) *Table[entity.ContactMessage, entity.ContactMessagePatch, wire.ContactMessageRow] {
	return &Table[entity.ContactMessage, entity.ContactMessagePatch, wire.ContactMessageRow]{
		client: c,
		name:   wire.TableContactMessages,
		order:  "created_at.desc",
		values: wire.ContactMessageValues,
		patch:  wire.ContactMessagePatchValues,
	}
}

// ContactInfoGateway registro único de contacto (id = 1).
type ContactInfoGateway struct {
	client *Client
}

func NewContactInfoGateway(c *Client) *ContactInfoGateway {
	return &ContactInfoGateway{client: c}
}

// Fetch devuelve nil, nil si el registro aún no existe.
func (g *ContactInfoGateway) Fetch(ctx context.Context) (*entity.ContactInfo, error) {
	var rows []wire.ContactInfoRow
	if err := g.client.SelectByID(ctx, wire.TableContactInfo, "*", entity.IntID(entity.ContactInfoID), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	info := rows[0].Entity()
	return &info, nil
}

func (g *ContactInfoGateway) Upsert(ctx context.Context, info entity.ContactInfo) (*entity.ContactInfo, error) {
	var rows []wire.ContactInfoRow
	if err := g.client.Upsert(ctx, wire.TableContactInfo, wire.ContactInfoValues(info), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("postgrest %s: upsert sin representación", wire.TableContactInfo)
	}
	saved := rows[0].Entity()
	return &saved, nil
}
