package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/domain"
	"github.com/phrazzld/passeio-api/internal/mocks"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/service"
	"github.com/phrazzld/passeio-api/internal/service/crud"
	"github.com/phrazzld/passeio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuideMockRepo(seed ...domain.Guide) *mocks.MockRepository[domain.Guide, uuid.UUID] {
	repo := mocks.NewMockRepository(func(g domain.Guide) uuid.UUID { return g.ID }, seed...)
	repo.AssignID = func(g domain.Guide) domain.Guide {
		g.ID = uuid.New()
		return g
	}
	return repo
}

func TestNewGuideService(t *testing.T) {
	_, err := service.NewGuideService(nil, logger.Discard())
	assert.ErrorIs(t, err, service.ErrNilRepository)

	_, err = service.NewGuideService(newGuideMockRepo(), nil)
	assert.ErrorIs(t, err, service.ErrNilLogger)

	svc, err := service.NewGuideService(newGuideMockRepo(), logger.Discard())
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestGuideMapper_RoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	guide := domain.Guide{ID: uuid.New(), Name: "Ana", Email: "ana@example.com", CreatedAt: now, UpdatedAt: now}

	dto := service.GuideMapper.ToDTO(guide)
	assert.Equal(t, guide.ID, dto.ID)
	assert.Equal(t, now, dto.CreatedAt)

	back := service.GuideMapper.ToEntity(dto)
	assert.Equal(t, guide.ID, back.ID)
	assert.Equal(t, guide.Name, back.Name)
	assert.Equal(t, guide.Email, back.Email)
	assert.True(t, back.CreatedAt.IsZero(), "timestamps are owned by the store")
}

func TestGuideDTO_StringOmitsEmail(t *testing.T) {
	dto := service.GuideDTO{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	assert.NotContains(t, dto.String(), "ana@example.com")
	assert.Contains(t, dto.String(), `name="Ana"`)
}

func TestGuideService_Operations(t *testing.T) {
	ctx := context.Background()
	existing := domain.Guide{ID: uuid.New(), Name: "Ana", Email: "ana@example.com"}
	repo := newGuideMockRepo(existing)
	svc, err := service.NewGuideService(repo, logger.Discard())
	require.NoError(t, err)

	t.Run("list", func(t *testing.T) {
		all, err := svc.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, existing.ID, all[0].ID)
	})

	t.Run("register assigns id", func(t *testing.T) {
		dto, err := svc.Register(ctx, service.GuideDTO{Name: "Bruno", Email: "bruno@example.com"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, dto.ID)
		assert.Len(t, repo.Entities(), 2)
	})

	t.Run("find", func(t *testing.T) {
		dto, err := svc.FindByID(ctx, existing.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", dto.Name)
	})

	t.Run("find nil id", func(t *testing.T) {
		_, err := svc.FindByID(ctx, uuid.Nil)
		assert.ErrorIs(t, err, crud.ErrBadRequest)
		assert.EqualError(t, err, "id must not be null.")
	})

	t.Run("delete missing", func(t *testing.T) {
		id := uuid.New()
		err := svc.DeleteByID(ctx, id)
		assert.ErrorIs(t, err, crud.ErrElementNotFound)
		assert.EqualError(t, err, "No such entity with id "+id.String()+" was found.")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteByID(ctx, existing.ID))
		_, err := svc.FindByID(ctx, existing.ID)
		assert.ErrorIs(t, err, crud.ErrElementNotFound)
	})
}

func TestGuideService_RegisterDuplicate(t *testing.T) {
	repo := newGuideMockRepo()
	repo.SaveFn = func(ctx context.Context, g domain.Guide) (domain.Guide, error) {
		return domain.Guide{}, store.NewStoreError("guides", "save", "upsert failed", store.ErrDuplicate)
	}
	svc, err := service.NewGuideService(repo, logger.Discard())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), service.GuideDTO{Name: "Ana", Email: "ana@example.com"})

	var regErr *crud.ElementRegistrationError
	require.ErrorAs(t, err, &regErr)
	assert.Contains(t, regErr.Message, "entity already exists")
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestGuideService_PassesThroughUnexpectedErrors(t *testing.T) {
	boom := errors.New("connection refused")
	repo := newGuideMockRepo()
	repo.FindAllFn = func(ctx context.Context) ([]domain.Guide, error) { return nil, boom }
	svc, err := service.NewGuideService(repo, logger.Discard())
	require.NoError(t, err)

	_, err = svc.ListAll(context.Background())
	assert.Same(t, boom, err)
}
