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

// TourDTO is the external representation of a tour.
type TourDTO struct {
	ID              uuid.UUID `json:"id"`
	GuideID         uuid.UUID `json:"guide_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Destination     string    `json:"destination" validate:"required,max=200"`
	PriceCents      int64     `json:"price_cents" validate:"gte=0"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,gt=0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// String renders the tour for debug logs.
func (d TourDTO) String() string {
	return fmt.Sprintf("TourDTO{id=%s, guide_id=%s, title=%q, destination=%q, price_cents=%d, duration_minutes=%d}",
		d.ID, d.GuideID, d.Title, d.Destination, d.PriceCents, d.DurationMinutes)
}

// TourMapper converts between TourDTO and domain.Tour.
var TourMapper = crud.Mapper[TourDTO, domain.Tour]{
	ToDTO: func(t domain.Tour) TourDTO {
		return TourDTO{
			ID:              t.ID,
			GuideID:         t.GuideID,
			Title:           t.Title,
			Destination:     t.Destination,
			PriceCents:      t.PriceCents,
			DurationMinutes: t.DurationMinutes,
			CreatedAt:       t.CreatedAt,
			UpdatedAt:       t.UpdatedAt,
		}
	},
	ToEntity: func(d TourDTO) domain.Tour {
		return domain.Tour{
			ID:              d.ID,
			GuideID:         d.GuideID,
			Title:           d.Title,
			Destination:     d.Destination,
			PriceCents:      d.PriceCents,
			DurationMinutes: d.DurationMinutes,
		}
	},
}

// TourService provides the CRUD operations for tours.
type TourService interface {
	crud.CrudService[TourDTO, uuid.UUID]
}

// TourServiceImpl implements TourService.
type TourServiceImpl struct {
	*crud.Service[TourDTO, uuid.UUID, domain.Tour]
}

// NewTourService creates a TourService backed by repo.
func NewTourService(repo store.Repository[domain.Tour, uuid.UUID], logger *slog.Logger) (TourService, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	svc, err := crud.New(repo, TourMapper, logger.With("component", "tour_service"))
	if err != nil {
		return nil, fmt.Errorf("failed to create tour service: %w", err)
	}
	return &TourServiceImpl{Service: svc}, nil
}
