package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// ShopHandler maneja las peticiones HTTP para tiendas físicas.
type ShopHandler struct {
	store *usecase.ShopStore
}

func NewShopHandler(store *usecase.ShopStore) *ShopHandler {
	return &ShopHandler{store: store}
}

// List godoc
// @Summary      Listar tiendas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[entity.Shop]
// @Router       /api/shops [get]
func (h *ShopHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.NewList(h.store.GetAll()))
}

// Create godoc
// @Summary      Crear tienda
// @Tags         admin-shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShopRequest  true  "Datos de la tienda"
// @Success      201   {object}  entity.Shop
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/shops [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var in dto.ShopRequest
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
// @Summary      Actualizar tienda
// @Tags         admin-shops
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la tienda"
// @Param        body  body  dto.UpdateShopRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.Shop
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/shops/{id} [put]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "tienda")
	}
	var in dto.UpdateShopRequest
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
// @Summary      Eliminar tienda
// @Tags         admin-shops
// @Param        id  path  string  true  "ID de la tienda"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/shops/{id} [delete]
func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok || !h.store.Delete(c.UserContext(), id) {
		return notFound(c, "tienda")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
