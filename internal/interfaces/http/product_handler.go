package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// ProductHandler maneja las peticiones HTTP para productos.
type ProductHandler struct {
	store *usecase.ProductStore
}

// NewProductHandler construye el handler.
func NewProductHandler(store *usecase.ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

// List godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Param        category_id  query  string  false  "Filtrar por categoría"
// @Success      200  {object}  dto.ListResponse[entity.Product]
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if raw := c.Query("category_id"); raw != "" {
		return c.JSON(dto.NewList(h.store.ByCategory(entity.ParseID(raw))))
	}
	return c.JSON(dto.NewList(h.store.GetAll()))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "producto")
	}
	p, found := h.store.Find(id)
	if !found {
		return notFound(c, "producto")
	}
	return c.JSON(p)
}

// Create godoc
// @Summary      Crear producto
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.Add(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         admin-products
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Product
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "producto")
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.store.Update(c.UserContext(), id, in.ToPatch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin-products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok || !h.store.Delete(c.UserContext(), id) {
		return notFound(c, "producto")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
