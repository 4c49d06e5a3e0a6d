package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/internal/infrastructure/wire"
)

var (
	_ repository.CategoryGateway       = (*CategoryGateway)(nil)
	_ repository.CategoryNameLookup    = (*CategoryGateway)(nil)
	_ repository.ProductGateway        = (*ProductGateway)(nil)
	_ repository.ContactInfoGateway    = (*ContactInfoGateway)(nil)
	_ repository.ContactMessageGateway = NewContactMessageGateway(nil)
)

// Table gateway genérico de una tabla sobre pgx (usable con pool o tx).
type Table[T, P any] struct {
	q       Querier
	name    string
	columns string // lista SELECT/RETURNING; el id siempre como texto
	order   string
	scan    func(pgx.Row) (T, error)
	values  func(T) wire.Values
	patch   func(P) wire.Values
}

// FetchAll lee la tabla completa en su orden natural.
func (t *Table[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", t.columns, ident(t.name), t.order)
	rows, err := t.q.Query(ctx, sql)
	if err != nil {
		return nil, wrap("list", t.name, err)
	}
	defer rows.Close()
	var list []T
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, wrap("scan", t.name, err)
		}
		list = append(list, item)
	}
	return list, wrap("list", t.name, rows.Err())
}

func (t *Table[T, P]) Create(ctx context.Context, item T) (*T, error) {
	sql, args := buildInsert(t.name, t.values(item), t.columns)
	created, err := t.scan(t.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrap("insert", t.name, err)
	}
	return &created, nil
}

// Update escribe solo las columnas presentes en patch.
func (t *Table[T, P]) Update(ctx context.Context, id entity.ID, patch P) error {
	values := t.patch(patch)
	if len(values) == 0 {
		return nil
	}
	sql, args := buildUpdate(t.name, values, id.String())
	_, err := t.q.Exec(ctx, sql, args...)
	return wrap("update", t.name, err)
}

func (t *Table[T, P]) Delete(ctx context.Context, id entity.ID) error {
	_, err := t.q.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id::text = $1", ident(t.name)), id.String())
	return wrap("delete", t.name, err)
}

var (
	_ repository.CategoryGateway       = (*CategoryGateway)(nil)
	_ repository.CategoryNameLookup    = (*CategoryGateway)(nil)
	_ repository.ProductGateway        = (*ProductGateway)(nil)
	_ repository.ShopGateway           = (*Table[entity.Shop, entity.ShopPatch])(nil)
	_ repository.SlideGateway          = (*Table[entity.Slide, entity.SlidePatch])(nil)
	_ repository.ContactMessageGateway = (*Table[entity.ContactMessage, entity.ContactMessagePatch])(nil)
	_ repository.ContactInfoGateway    = (*ContactInfoGateway)(nil)
)

const categoryColumns = `id::text, title, image, slug, description, "order", is_active, created_at`

func scanCategory(r pgx.Row) (entity.Category, error) {
	var (
		row wire.CategoryRow
		id  string
	)
	if err := r.Scan(&id, &row.Title, &row.Image, &row.Slug, &row.Description, &row.Order, &row.IsActive, &row.CreatedAt.Time); err != nil {
		return entity.Category{}, err
	}
	row.ID = entity.ParseID(id)
	return row.Entity(), nil
}

// CategoryGateway categorías ordenadas por "order".
type CategoryGateway struct {
	*Table[entity.Category, entity.CategoryPatch]
}

func NewCategoryGateway(q Querier) *CategoryGateway {
	return &CategoryGateway{&Table[entity.Category, entity.CategoryPatch]{
		q:       q,
		name:    wire.TableCategories,
		columns: categoryColumns,
		order:   `"order", id`,
		scan:    scanCategory,
		values:  wire.CategoryValues,
		patch:   wire.CategoryPatchValues,
	}}
}

// CategoryTitle devuelve el título de la categoría id ("" si no existe).
func (g *CategoryGateway) CategoryTitle(ctx context.Context, id entity.ID) (string, error) {
	var title string
	err := g.q.QueryRow(ctx, `SELECT title FROM categories WHERE id::text = $1`, id.String()).Scan(&title)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", wrap("get", g.name, err)
	}
	return title, nil
}

const productColumns = `id::text, name, description, price, COALESCE(category_id::text, ''), category_name, images, stock, features, created_at, updated_at`

func scanProduct(r pgx.Row) (entity.Product, error) {
	var (
		row              wire.ProductRow
		id, categoryID   string
		images, features string
	)
	if err := r.Scan(&id, &row.Name, &row.Description, &row.Price, &categoryID, &row.CategoryName,
		&images, &row.Stock, &features, &row.CreatedAt.Time, &row.UpdatedAt.Time); err != nil {
		return entity.Product{}, err
	}
	row.ID = entity.ParseID(id)
	row.CategoryID = entity.ParseID(categoryID)
	row.Images = json.RawMessage(images)
	row.Features = json.RawMessage(features)
	return row.Entity(), nil
}

// ProductGateway productos; completa category_name antes de insertar si falta.
type ProductGateway struct {
	*Table[entity.Product, entity.ProductPatch]
	categories repository.CategoryNameLookup
}

func NewProductGateway(q Querier, categories repository.CategoryNameLookup) *ProductGateway {
	return &ProductGateway{
		Table: &Table[entity.Product, entity.ProductPatch]{
			q:       q,
			name:    wire.TableProducts,
			columns: productColumns,
			order:   "id",
			scan:    scanProduct,
			values:  wire.ProductValues,
			patch:   wire.ProductPatchValues,
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

const shopColumns = `id::text, title, address, description, image, phone, email, working_hours, lat, lng`

func scanShop(r pgx.Row) (entity.Shop, error) {
	var (
		row wire.ShopRow
		id  string
	)
	if err := r.Scan(&id, &row.Title, &row.Address, &row.Description, &row.Image,
		&row.Phone, &row.Email, &row.WorkingHours, &row.Lat, &row.Lng); err != nil {
		return entity.Shop{}, err
	}
	row.ID = entity.StringID(id)
	return row.Entity(), nil
}

func NewShopGateway(q Querier) *Table[entity.Shop, entity.ShopPatch] {
	return &Table[entity.Shop, entity.ShopPatch]{
		q:       q,
		name:    wire.TableShops,
		columns: shopColumns,
		order:   "title, id",
		scan:    scanShop,
		values:  wire.ShopValues,
		patch:   wire.ShopPatchValues,
	}
}

const slideColumns = `id::text, image, title, description, "order", is_active`

func scanSlide(r pgx.Row) (entity.Slide, error) {
	var (
		row wire.SlideRow
		id  string
	)
	if err := r.Scan(&id, &row.Image, &row.Title, &row.Description, &row.Order, &row.IsActive); err != nil {
		return entity.Slide{}, err
	}
	row.ID = entity.ParseID(id)
	return row.Entity(), nil
}

func NewSlideGateway(q Querier) *Table[entity.Slide, entity.SlidePatch] {
	return &Table[entity.Slide, entity.SlidePatch]{
		q:       q,
		name:    wire.TableSlides,
		columns: slideColumns,
		order:   `"order", id`,
		scan:    scanSlide,
		values:  wire.SlideValues,
		patch:   wire.SlidePatchValues,
	}
}

const messageColumns = `id::text, name, phone, email, message, processed, created_at`

func scanMessage(r pgx.Row) (entity.ContactMessage, error) {
	var (
		row wire.ContactMessageRow
		id  string
	)
	if err := r.Scan(&id, &row.Name, &row.Phone, &row.Email, &row.Message, &row.Processed, &row.CreatedAt.Time); err != nil {
		return entity.ContactMessage{}, err
	}
	row.ID = entity.StringID(id)
	return row.Entity(), nil
}

// NewContactMessageGateway solicitudes de contacto, las más recientes primero.
func NewContactMessageGateway(q Querier) *Table[entity.ContactMessage, entity.ContactMessagePatch] {
	return &Table[entity.ContactMessage, entity.ContactMessagePatch]{
		q:       q,
		name:    wire.TableContactMessages,
		columns: messageColumns,
		order:   "created_at DESC",
		scan:    scanMessage,
		values:  wire.ContactMessageValues,
		patch:   wire.ContactMessagePatchValues,
	}
}

const contactInfoColumns = `id::text, phone, email, address, working_hours, map_embed, social, about`

// ContactInfoGateway registro único de contacto (id = 1).
type ContactInfoGateway struct {
	q Querier
}

func NewContactInfoGateway(q Querier) *ContactInfoGateway {
	return &ContactInfoGateway{q: q}
}

func scanContactInfo(r pgx.Row) (*entity.ContactInfo, error) {
	var (
		row           wire.ContactInfoRow
		id            string
		social, about string
	)
	if err := r.Scan(&id, &row.Phone, &row.Email, &row.Address, &row.WorkingHours, &row.MapEmbed, &social, &about); err != nil {
		return nil, err
	}
	row.ID = entity.ParseID(id)
	row.Social = json.RawMessage(social)
	row.About = json.RawMessage(about)
	info := row.Entity()
	return &info, nil
}

// Fetch devuelve nil, nil si el registro aún no existe.
func (g *ContactInfoGateway) Fetch(ctx context.Context) (*entity.ContactInfo, error) {
	info, err := scanContactInfo(g.q.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM contact_info WHERE id = $1", contactInfoColumns), entity.ContactInfoID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("get", wire.TableContactInfo, err)
	}
	return info, nil
}

func (g *ContactInfoGateway) Upsert(ctx context.Context, info entity.ContactInfo) (*entity.ContactInfo, error) {
	sql, args := buildUpsert(wire.TableContactInfo, wire.ContactInfoValues(info), contactInfoColumns)
	saved, err := scanContactInfo(g.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, wrap("upsert", wire.TableContactInfo, err)
	}
	return saved, nil
}
