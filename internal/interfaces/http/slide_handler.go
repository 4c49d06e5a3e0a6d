package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// SlideHandler maneja los slides de la portada.
type SlideHandler struct {
	store *usecase.SlideStore
}

func NewSlideHandler(store *usecase.SlideStore) *SlideHandler {
	return &SlideHandler{store: store}
}

// ListActive godoc
// @Summary      Listar slides activos de la portada
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Slide]
// @Router       /api/slides [get]
func (h *SlideHandler) ListActive(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.store.Active()))
}

// List godoc
// @Summary      Listar todos los slides
// @Tags         admin-slides
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Slide]
// @Router       /api/admin/slides [get]
func (h *SlideHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.store.GetAll()))
}

// Create godoc
// @Summary      Crear slide
// @Tags         admin-slides
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SlideRequest  true  "Datos del slide"
// @Success      201   {object}  entity.Slide
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/slides [post]
func (h *SlideHandler) Create(c *fiber.Ctx) error {
	var in dto.SlideRequest
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
// @Summary      Actualizar slide
// @Tags         admin-slides
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del slide"
// @Param        body  body  dto.UpdateSlideRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Slide
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/slides/{id} [put]
func (h *SlideHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "slide")
	}
	var in dto.UpdateSlideRequest
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
// @Summary      Eliminar slide
// @Tags         admin-slides
// @Param        id  path  string  true  "ID del slide"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/slides/{id} [delete]
func (h *SlideHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok || !h.store.Delete(c.UserContext(), id) {
		return notFound(c, "slide")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
