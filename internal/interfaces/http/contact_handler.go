package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// ContactHandler datos de contacto de la empresa y formulario de solicitudes.
type ContactHandler struct {
	info     *usecase.ContactInfoStore
	messages *usecase.ContactMessageStore
}

// NewContactHandler construye el handler.
func NewContactHandler(info *usecase.ContactInfoStore, messages *usecase.ContactMessageStore) *ContactHandler {
	return &ContactHandler{info: info, messages: messages}
}

// GetInfo godoc
// @Summary      Datos de contacto
// @Tags         contact
// @Produce      json
// @Success      200  {object}  entity.ContactInfo
// @Router       /api/contact-info [get]
func (h *ContactHandler) GetInfo(c *fiber.Ctx) error {
	return c.JSON(h.info.Get())
}

// UpdateInfo godoc
// @Summary      Actualizar datos de contacto
// @Description  social y about ausentes se conservan; una lista vacía los borra.
// @Tags         admin-contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateContactInfoRequest  true  "Campos a modificar"
// @Success      200   {object}  entity.ContactInfo
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/contact-info [put]
func (h *ContactHandler) UpdateInfo(c *fiber.Ctx) error {
	var in dto.UpdateContactInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.info.Upsert(c.UserContext(), in.ToPatch())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Submit godoc
// @Summary      Enviar solicitud de contacto
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ContactMessageRequest  true  "Solicitud"
// @Success      201   {object}  entity.ContactMessage
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contact-messages [post]
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var in dto.ContactMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.messages.Submit(c.UserContext(), in.ToEntity())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMessages godoc
// @Summary      Listar solicitudes (más recientes primero)
// @Tags         admin-contact
// @Produce      json
// @Param        pending  query  bool  false  "Solo pendientes"
// @Success      200  {object}  dto.ListResponse[entity.ContactMessage]
// @Router       /api/admin/contact-messages [get]
func (h *ContactHandler) ListMessages(c *fiber.Ctx) error {
	if c.QueryBool("pending") {
		return c.JSON(dto.NewList(h.messages.Pending()))
	}
	return c.JSON(dto.NewList(h.messages.GetAll()))
}

// MarkMessage godoc
// @Summary      Marcar solicitud como procesada
// @Tags         admin-contact
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID de la solicitud"
// @Param        body  body  dto.UpdateContactMessageRequest  true  "Estado"
// @Success      200   {object}  entity.ContactMessage
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/contact-messages/{id} [patch]
func (h *ContactHandler) MarkMessage(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return notFound(c, "solicitud")
	}
	var in dto.UpdateContactMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.messages.MarkProcessed(c.UserContext(), id, in.Processed)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteMessage godoc
// @Summary      Eliminar solicitud
// @Tags         admin-contact
// @Param        id  path  string  true  "ID de la solicitud"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/contact-messages/{id} [delete]
func (h *ContactHandler) DeleteMessage(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok || !h.messages.Delete(c.UserContext(), id) {
		return notFound(c, "solicitud")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
