package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para categorías.
type CategoryHandler struct {
	store *usecase.CategoryStore
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(store *usecase.CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// ListActive godoc
// @Summary      Listar categorías activas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Category]
// @Router       /api/categories [get]
func (h *CategoryHandler) ListActive(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.store.Active()))
}

// GetBySlug godoc
// @Summary      Obtener categoría por slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200   {object}  entity.Category
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{slug} [get]
func (h *CategoryHandler) GetBySlug(c *fiber.Ctx) error {
	cat, ok := h.store.BySlug(c.Params("slug"))
	if !ok || !cat.IsActive {
		return notFound(c, "categoría")
	}
	return c.JSON(cat)
}

// List godoc
// @Summary      Listar todas las categorías (incluye inactivas)
// @Tags         admin-categories
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Category]
// @Router       /api/admin/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.store.GetAll()))
}

// Create godoc
// @Summary      Crear categoría
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Datos de la categoría"
// @Success      201   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
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
// @Summary      Actualizar categoría
// @Tags         admin-categories
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Category
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "categoría")
	}
	var in dto.UpdateCategoryRequest
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
// @Summary      Eliminar categoría (prohibido si tiene productos)
// @Tags         admin-categories
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "categoría")
	}
	deleted, err := h.store.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return notFound(c, "categoría")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
