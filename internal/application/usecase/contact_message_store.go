package usecase

import (
	"context"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var _ SyncedCollection = (*ContactMessageStore)(nil)

// ContactMessageStore solicitudes enviadas desde el formulario de contacto.
type ContactMessageStore struct {
	managed[entity.ContactMessage, entity.ContactMessagePatch]
}

func NewContactMessageStore(ctx context.Context, gw repository.ContactMessageGateway, opts Options, log *logger.Logger) *ContactMessageStore {
	b := syncstore.Binding[entity.ContactMessage, entity.ContactMessagePatch]{
		Kind:     "contact-messages",
		CacheKey: "contact_messages",
		ID:       func(m entity.ContactMessage) entity.ID { return m.ID },
		WithID:   func(m entity.ContactMessage, id entity.ID) entity.ContactMessage { m.ID = id; return m },
		Apply:    func(p entity.ContactMessagePatch, m entity.ContactMessage) entity.ContactMessage { return p.Apply(m) },
		NextID:   func([]entity.ContactMessage) entity.ID { return entity.StringID(uuid.NewString()) },
	}
	return &ContactMessageStore{managed[entity.ContactMessage, entity.ContactMessagePatch]{
		engine: syncstore.New(ctx, b, gw, opts.Cache, opts.Mode, log),
	}}
}

// GetAll solicitudes, las más recientes primero.
func (s *ContactMessageStore) GetAll() []entity.ContactMessage {
	all := s.engine.GetAll()
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return all
}

// Pending solicitudes sin procesar.
func (s *ContactMessageStore) Pending() []entity.ContactMessage {
	var out []entity.ContactMessage
	for _, m := range s.GetAll() {
		if !m.Processed {
			out = append(out, m)
		}
	}
	return out
}

// Submit registra una solicitud: nombre, mensaje y al menos un medio de contacto.
func (s *ContactMessageStore) Submit(ctx context.Context, m entity.ContactMessage) (entity.ContactMessage, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Phone = strings.TrimSpace(m.Phone)
	m.Email = strings.TrimSpace(m.Email)
	m.Message = strings.TrimSpace(m.Message)
	switch {
	case m.Name == "":
		return entity.ContactMessage{}, domain.NewValidationError("name", "el nombre es obligatorio")
	case m.Message == "":
		return entity.ContactMessage{}, domain.NewValidationError("message", "el mensaje es obligatorio")
	case m.Phone == "" && m.Email == "":
		return entity.ContactMessage{}, domain.NewValidationError("phone", "indique un teléfono o un email")
	}
	if m.Email != "" {
		if _, err := mail.ParseAddress(m.Email); err != nil {
			return entity.ContactMessage{}, domain.NewValidationError("email", "email inválido")
		}
	}
	m.ID = entity.ID{}
	m.Processed = false
	m.CreatedAt = time.Now().UTC()
	return s.engine.Add(ctx, m)
}

// MarkProcessed cambia el estado de procesamiento.
func (s *ContactMessageStore) MarkProcessed(ctx context.Context, id entity.ID, processed bool) (entity.ContactMessage, error) {
	return s.engine.Update(ctx, id, entity.ContactMessagePatch{Processed: &processed})
}

func (s *ContactMessageStore) Delete(ctx context.Context, id entity.ID) bool {
	return s.engine.Delete(ctx, id)
}
