package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
)

// StorageManager control de sincronización de todas las colecciones (lo implementa app.Container).
type StorageManager interface {
	Preferred() syncstore.Mode
	Backend() string
	Collections() []usecase.SyncedCollection
	SwitchMode(ctx context.Context, mode syncstore.Mode) error
	Reload(ctx context.Context) error
	ClearCache()
}

// StorageHandler administración del modo de almacenamiento y del espejo local.
type StorageHandler struct {
	mgr StorageManager
}

func NewStorageHandler(mgr StorageManager) *StorageHandler {
	return &StorageHandler{mgr: mgr}
}

// Get godoc
// @Summary      Modo de almacenamiento de cada colección
// @Tags         admin-storage
// @Produce      json
// @Success      200  {object}  dto.StorageResponse
// @Router       /api/admin/storage [get]
func (h *StorageHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.snapshot())
}

// Switch godoc
// @Summary      Cambiar el modo de todas las colecciones y guardar la preferencia
// @Tags         admin-storage
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SwitchStorageRequest  true  "local | remote"
// @Success      200   {object}  dto.StorageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/admin/storage [put]
func (h *StorageHandler) Switch(c *fiber.Ctx) error {
	var in dto.SwitchStorageRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	mode, err := syncstore.ParseMode(in.Mode)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.mgr.SwitchMode(c.UserContext(), mode); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.snapshot())
}

// Reload godoc
// @Summary      Releer todas las colecciones desde su fuente actual
// @Tags         admin-storage
// @Produce      json
// @Success      200  {object}  dto.StorageResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/admin/storage/reload [post]
func (h *StorageHandler) Reload(c *fiber.Ctx) error {
	if err := h.mgr.Reload(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.snapshot())
}

// ClearCache godoc
// @Summary      Vaciar el espejo local
// @Tags         admin-storage
// @Success      204
// @Router       /api/admin/cache [delete]
func (h *StorageHandler) ClearCache(c *fiber.Ctx) error {
	h.mgr.ClearCache()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StorageHandler) snapshot() dto.StorageResponse {
	cols := h.mgr.Collections()
	out := dto.StorageResponse{
		Preferred: h.mgr.Preferred().String(),
		Remote:    h.mgr.Backend(),
		Stores:    make([]dto.StoreModeResponse, 0, len(cols)),
	}
	for _, col := range cols {
		out.Stores = append(out.Stores, dto.StoreModeResponse{Kind: col.Kind(), Mode: col.Mode().String(), Count: col.Len()})
	}
	return out
}
