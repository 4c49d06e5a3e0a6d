package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var (
	linkA = entity.SocialLink{Name: "VK", URL: "https://vk.com/mebel", Icon: "vk"}
	linkB = entity.SocialLink{Name: "Telegram", URL: "https://t.me/mebel", Icon: "telegram"}
)

func TestContactInfoStore_SocialOmitidoSeConserva(t *testing.T) {
	gw := &fakeContactInfo{record: &entity.ContactInfo{
		ID:     entity.IntID(1),
		Phone:  "000",
		Social: []entity.SocialLink{linkA, linkB},
	}}
	s := usecase.NewContactInfoStore(ctx, gw, newOptions(syncstore.Remote), nil, logger.Nop())
	require.Equal(t, []entity.SocialLink{linkA, linkB}, s.Get().Social)

	phone := "123"
	got, err := s.Upsert(ctx, entity.ContactInfoPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "123", got.Phone)
	assert.Equal(t, []entity.SocialLink{linkA, linkB}, got.Social)
	assert.Equal(t, []entity.SocialLink{linkA, linkB}, gw.record.Social, "el registro remoto conserva social")
	assert.Equal(t, "123", gw.record.Phone)

	empty := []entity.SocialLink{}
	got, err = s.Upsert(ctx, entity.ContactInfoPatch{Social: &empty})
	require.NoError(t, err)
	assert.Equal(t, []entity.SocialLink{}, got.Social)
	assert.Empty(t, gw.record.Social)
	assert.Equal(t, syncstore.Remote, s.Mode())
}

func TestContactInfoStore_SinRegistroRemotoSubeElRegistroCompleto(t *testing.T) {
	gw := &fakeContactInfo{}
	defaults := func() entity.ContactInfo {
		return entity.ContactInfo{Email: "a@b.ru", Address: "ул. Ленина, 1", Social: []entity.SocialLink{linkA}}
	}
	s := usecase.NewContactInfoStore(ctx, gw, newOptions(syncstore.Remote), defaults, logger.Nop())
	require.Equal(t, syncstore.Remote, s.Mode())

	phone := "123"
	got, err := s.Upsert(ctx, entity.ContactInfoPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "a@b.ru", got.Email)

	require.NotNil(t, gw.record)
	assert.Equal(t, "123", gw.record.Phone)
	assert.Equal(t, "a@b.ru", gw.record.Email)
	assert.Equal(t, "ул. Ленина, 1", gw.record.Address)
	assert.Equal(t, []entity.SocialLink{linkA}, gw.record.Social)
	assert.Equal(t, syncstore.Remote, s.Mode())

	// Un arranque posterior adopta el registro remoto sin pérdidas.
	again := usecase.NewContactInfoStore(ctx, gw, newOptions(syncstore.Remote), nil, logger.Nop())
	assert.Equal(t, []entity.SocialLink{linkA}, again.Get().Social)
	assert.Equal(t, "123", again.Get().Phone)
}

func TestContactInfoStore_LocalConDefaults(t *testing.T) {
	defaults := func() entity.ContactInfo {
		return entity.ContactInfo{Phone: "seed", Social: []entity.SocialLink{linkA}}
	}
	s := usecase.NewContactInfoStore(ctx, nil, newOptions(syncstore.Local), defaults, logger.Nop())

	info := s.Get()
	assert.True(t, info.ID.Equal(entity.IntID(entity.ContactInfoID)))
	assert.Equal(t, "seed", info.Phone)

	addr := "ул. Ленина, 1"
	got, err := s.Upsert(ctx, entity.ContactInfoPatch{Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, "seed", got.Phone)
	assert.Equal(t, []entity.SocialLink{linkA}, got.Social)
	assert.Equal(t, 1, s.Len())
}

func TestContactInfoStore_RemotoVacioCreaRegistro(t *testing.T) {
	gw := &fakeContactInfo{}
	s := usecase.NewContactInfoStore(ctx, gw, newOptions(syncstore.Remote), nil, logger.Nop())
	// Sin registro remoto se usan los defaults; el upsert escribe el registro completo.
	phone := "555"
	_, err := s.Upsert(ctx, entity.ContactInfoPatch{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, gw.record)
	assert.Equal(t, "555", gw.record.Phone)
}

func TestContactInfoStore_Validacion(t *testing.T) {
	s := usecase.NewContactInfoStore(ctx, nil, newOptions(syncstore.Local), nil, logger.Nop())
	bad := "no-es-email"
	_, err := s.Upsert(ctx, entity.ContactInfoPatch{Email: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	links := []entity.SocialLink{{Name: "", URL: "x"}}
	_, err = s.Upsert(ctx, entity.ContactInfoPatch{Social: &links})
	assert.True(t, domain.IsValidation(err))
}

func TestContactInfoStore_FalloRemotoDegrada(t *testing.T) {
	gw := &fakeContactInfo{record: &entity.ContactInfo{ID: entity.IntID(1), Phone: "1"}}
	s := usecase.NewContactInfoStore(ctx, gw, newOptions(syncstore.Remote), nil, logger.Nop())
	gw.fail = true

	phone := "2"
	got, err := s.Upsert(ctx, entity.ContactInfoPatch{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "2", got.Phone)
	assert.Equal(t, syncstore.Local, s.Mode())
}
