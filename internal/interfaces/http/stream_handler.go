package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mebel-store/internal/application/dto"
)

const streamPing = 15 * time.Second

// StreamHandler publica por server-sent events cada instantánea de una colección.
type StreamHandler struct {
	deps RouterDeps
}

func NewStreamHandler(deps RouterDeps) *StreamHandler {
	return &StreamHandler{deps: deps}
}

// Stream godoc
// @Summary      Suscribirse a los cambios de una colección (SSE)
// @Description  Emite la instantánea actual y una nueva tras cada mutación.
// @Tags         admin-storage
// @Produce      text/event-stream
// @Param        kind  path  string  true  "categories | products | shops | slides | contact-info | contact-messages"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/stream/{kind} [get]
func (h *StreamHandler) Stream(c *fiber.Ctx) error {
	kind := c.Params("kind")
	switch kind {
	case "categories":
		return streamSnapshots(c, kind, h.deps.Categories.Observe)
	case "products":
		return streamSnapshots(c, kind, h.deps.Products.Observe)
	case "shops":
		return streamSnapshots(c, kind, h.deps.Shops.Observe)
	case "slides":
		return streamSnapshots(c, kind, h.deps.Slides.Observe)
	case "contact-info":
		return streamSnapshots(c, kind, h.deps.ContactInfo.Observe)
	case "contact-messages":
		return streamSnapshots(c, kind, h.deps.ContactMessages.Observe)
	default:
		return notFound(c, "colección "+kind)
	}
}

// streamSnapshots la suscripción se cancela al cerrarse el cliente (falla el flush)
// o al cerrarse el store.
func streamSnapshots[T any](c *fiber.Ctx, kind string, observe func() (<-chan []T, func())) error {
	ch, cancel := observe()
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer cancel()
		ping := time.NewTicker(streamPing)
		defer ping.Stop()
		for {
			select {
			case items, ok := <-ch:
				if !ok {
					return
				}
				data, err := json.Marshal(dto.NewList(items))
				if err != nil {
					return
				}
				fmt.Fprintf(w, "event: %s\ndata: %s\n\n", kind, data)
			case <-ping.C:
				fmt.Fprint(w, ": ping\n\n")
			}
			if err := w.Flush(); err != nil {
				return
			}
		}
	})
	return nil
}
