package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var _ SyncedCollection = (*ContactInfoStore)(nil)

var _ repository.CollectionGateway[entity.ContactInfo, entity.ContactInfoPatch] = singletonGateway{}

var singletonID = entity.IntID(entity.ContactInfoID)

// ContactInfoStore registro único de contacto. En lugar de Add expone Upsert.
type ContactInfoStore struct {
	managed[entity.ContactInfo, entity.ContactInfoPatch]
	defaults func() entity.ContactInfo
}

// NewContactInfoStore construye el store singleton. gw nil = solo local.
func NewContactInfoStore(ctx context.Context, gw repository.ContactInfoGateway, opts Options, defaults func() entity.ContactInfo, log *logger.Logger) *ContactInfoStore {
	if defaults == nil {
		defaults = func() entity.ContactInfo { return entity.ContactInfo{} }
	}
	b := syncstore.Binding[entity.ContactInfo, entity.ContactInfoPatch]{
		Kind:     "contact-info",
		CacheKey: "contact_info",
		ID:       func(c entity.ContactInfo) entity.ID { return c.ID },
		WithID:   func(c entity.ContactInfo, _ entity.ID) entity.ContactInfo { c.ID = singletonID; return c },
		Apply:    func(p entity.ContactInfoPatch, c entity.ContactInfo) entity.ContactInfo { return p.Apply(c) },
		NextID:   func([]entity.ContactInfo) entity.ID { return singletonID },
		Defaults: func() []entity.ContactInfo { return []entity.ContactInfo{withSingletonID(defaults())} },
		Clone:    entity.ContactInfo.Clone,
	}
	s := &ContactInfoStore{defaults: defaults}
	var remote repository.CollectionGateway[entity.ContactInfo, entity.ContactInfoPatch]
	if gw != nil {
		remote = singletonGateway{gw: gw, local: s.Get}
	}
	s.managed = managed[entity.ContactInfo, entity.ContactInfoPatch]{engine: syncstore.New(ctx, b, remote, opts.Cache, opts.Mode, log)}
	return s
}

// Get devuelve el registro actual (o los datos por defecto si aún no hay ninguno).
func (s *ContactInfoStore) Get() entity.ContactInfo {
	if c, ok := s.Find(singletonID); ok {
		return c
	}
	return withSingletonID(s.defaults())
}

// Upsert aplica el patch sobre el registro existente o lo crea.
// Social/About omitidos conservan el valor previo; una lista vacía los borra.
func (s *ContactInfoStore) Upsert(ctx context.Context, p entity.ContactInfoPatch) (entity.ContactInfo, error) {
	if p.Email != nil {
		email := strings.TrimSpace(*p.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return entity.ContactInfo{}, domain.NewValidationError("email", "email inválido")
			}
		}
		p.Email = &email
	}
	if p.Social != nil {
		for _, link := range *p.Social {
			if strings.TrimSpace(link.Name) == "" || strings.TrimSpace(link.URL) == "" {
				return entity.ContactInfo{}, domain.NewValidationError("social", "cada red social necesita nombre y URL")
			}
		}
	}

	if _, ok := s.Find(singletonID); ok {
		return s.engine.Update(ctx, singletonID, p)
	}
	return s.engine.Add(ctx, p.Apply(entity.ContactInfo{ID: singletonID, Social: []entity.SocialLink{}, About: []entity.AboutSection{}}))
}

func withSingletonID(c entity.ContactInfo) entity.ContactInfo {
	c = c.Clone()
	c.ID = singletonID
	return c
}

// singletonGateway adapta ContactInfoGateway (fetch/upsert) al contrato de colección.
// Update lee el registro remoto y lo fusiona con el patch antes del upsert, para
// que los campos omitidos (en particular social) no se pierdan. Sin registro
// remoto la base es el registro en memoria, que ya incluye el patch.
type singletonGateway struct {
	gw    repository.ContactInfoGateway
	local func() entity.ContactInfo
}

func (g singletonGateway) FetchAll(ctx context.Context) ([]entity.ContactInfo, error) {
	info, err := g.gw.Fetch(ctx)
	if err != nil || info == nil {
		return nil, err
	}
	return []entity.ContactInfo{*info}, nil
}

func (g singletonGateway) Create(ctx context.Context, info entity.ContactInfo) (*entity.ContactInfo, error) {
	return g.gw.Upsert(ctx, withSingletonID(info))
}

func (g singletonGateway) Update(ctx context.Context, _ entity.ID, p entity.ContactInfoPatch) error {
	current, err := g.gw.Fetch(ctx)
	if err != nil {
		return err
	}
	var base entity.ContactInfo
	switch {
	case current != nil:
		base = *current
	case g.local != nil:
		base = g.local()
	default:
		base = entity.ContactInfo{ID: singletonID, Social: []entity.SocialLink{}, About: []entity.AboutSection{}}
	}
	_, err = g.gw.Upsert(ctx, p.Apply(base))
	return err
}

func (g singletonGateway) Delete(context.Context, entity.ID) error {
	return errors.New("contact-info: el registro de contacto no se puede eliminar")
}
