package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/domain"
	"github.com/phrazzld/passeio-api/internal/service/crud"
	"github.com/phrazzld/passeio-api/internal/store"
)

// GuideDTO is the external representation of a guide.
// Timestamps are set by the store and ignored on input.
type GuideDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=200"`
	Email     string    `json:"email" validate:"required,email,max=320"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// String omits the email address so DTOs can be logged.
func (d GuideDTO) String() string {
	return fmt.Sprintf("GuideDTO{id=%s, name=%q}", d.ID, d.Name)
}

// GuideMapper converts between GuideDTO and domain.Guide.
var GuideMapper = crud.Mapper[GuideDTO, domain.Guide]{
	ToDTO: func(g domain.Guide) GuideDTO {
		return GuideDTO{
			ID:        g.ID,
			Name:      g.Name,
			Email:     g.Email,
			CreatedAt: g.CreatedAt,
			UpdatedAt: g.UpdatedAt,
		}
	},
	ToEntity: func(d GuideDTO) domain.Guide {
		return domain.Guide{
			ID:    d.ID,
			Name:  d.Name,
			Email: d.Email,
		}
	},
}

// GuideService provides the CRUD operations for guides.
type GuideService interface {
	crud.CrudService[GuideDTO, uuid.UUID]
}

// GuideServiceImpl implements GuideService.
type GuideServiceImpl struct {
	*crud.Service[GuideDTO, uuid.UUID, domain.Guide]
}

// NewGuideService creates a GuideService backed by repo.
func NewGuideService(repo store.Repository[domain.Guide, uuid.UUID], logger *slog.Logger) (GuideService, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	svc, err := crud.New(repo, GuideMapper, logger.With("component", "guide_service"))
	if err != nil {
		return nil, fmt.Errorf("failed to create guide service: %w", err)
	}
	return &GuideServiceImpl{Service: svc}, nil
}
