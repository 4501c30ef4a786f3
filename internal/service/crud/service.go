package crud

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/redact"
	"github.com/phrazzld/passeio-api/internal/store"
)

// InvalidIDMessage is the message of the BadRequestError returned for an invalid id.
const InvalidIDMessage = "id must not be null."

// CrudService is the set of operations every entity service exposes.
type CrudService[DTO any, ID comparable] interface {
	// ListAll returns every stored element in repository order.
	ListAll(ctx context.Context) ([]DTO, error)

	// Register creates or updates an element and returns its stored state.
	Register(ctx context.Context, dto DTO) (DTO, error)

	// DeleteByID removes the element with the given id.
	DeleteByID(ctx context.Context, id ID) error

	// FindByID returns the element with the given id.
	FindByID(ctx context.Context, id ID) (DTO, error)
}

// Mapper converts between the external DTO shape and the stored entity.
// Both functions must be pure.
type Mapper[DTO, E any] struct {
	ToDTO    func(E) DTO
	ToEntity func(DTO) E
}

// Service implements CrudService on top of a store.Repository.
// It holds no mutable state and is safe for concurrent use whenever the
// repository is.
type Service[DTO any, ID comparable, E any] struct {
	repo   store.Repository[E, ID]
	mapper Mapper[DTO, E]
	logger *slog.Logger
}

var _ CrudService[struct{}, int] = (*Service[struct{}, int, struct{}])(nil)

// New creates a Service. repo and both mapper functions are required.
// A nil logger disables logging.
func New[DTO any, ID comparable, E any](
	repo store.Repository[E, ID],
	mapper Mapper[DTO, E],
	logger *slog.Logger,
) (*Service[DTO, ID, E], error) {
	if repo == nil {
		return nil, errors.New("repository cannot be nil")
	}
	if mapper.ToDTO == nil || mapper.ToEntity == nil {
		return nil, errors.New("mapper functions cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Service[DTO, ID, E]{
		repo:   repo,
		mapper: mapper,
		logger: logger,
	}, nil
}

// ListAll fetches every entity and maps each one to a DTO, keeping the
// repository's order. Repository errors are returned unmodified.
func (s *Service[DTO, ID, E]) ListAll(ctx context.Context) ([]DTO, error) {
	entities, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]DTO, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, s.mapper.ToDTO(entity))
	}
	return dtos, nil
}

// Register maps dto to an entity, upserts it, and returns the stored state as a DTO.
// Integrity violations become an *ElementRegistrationError.
func (s *Service[DTO, ID, E]) Register(ctx context.Context, dto DTO) (DTO, error) {
	log := s.log(ctx)

	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, "registering element", slog.String("dto", fmt.Sprint(dto)))
	}

	saved, err := s.repo.Save(ctx, s.mapper.ToEntity(dto))
	if err != nil {
		var zero DTO
		if store.IsIntegrityViolation(err) {
			s.logFault(ctx, log, "element registration rejected", err)
			return zero, &ElementRegistrationError{Message: err.Error(), Err: err}
		}
		return zero, err
	}

	result := s.mapper.ToDTO(saved)
	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, "element registered", slog.String("dto", fmt.Sprint(result)))
	}
	return result, nil
}

// DeleteByID removes the entity with the given id.
func (s *Service[DTO, ID, E]) DeleteByID(ctx context.Context, id ID) error {
	log := s.log(ctx)
	s.logID(ctx, log, "deleting element", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return s.translateLookup(ctx, log, id, err)
	}
	return nil
}

// FindByID retrieves the entity with the given id and maps it to a DTO.
func (s *Service[DTO, ID, E]) FindByID(ctx context.Context, id ID) (DTO, error) {
	log := s.log(ctx)
	s.logID(ctx, log, "finding element", id)

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero DTO
		return zero, s.translateLookup(ctx, log, id, err)
	}
	return s.mapper.ToDTO(entity), nil
}

// translateLookup maps the faults of id-based repository calls.
func (s *Service[DTO, ID, E]) translateLookup(ctx context.Context, log *slog.Logger, id ID, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		s.logFault(ctx, log, "invalid element id", err)
		return &BadRequestError{Message: InvalidIDMessage, Err: err}
	case errors.Is(err, store.ErrNotFound):
		s.logFault(ctx, log, "element not found", err)
		return &ElementNotFoundError{Message: NotFoundMessage(id), Err: err}
	default:
		return err
	}
}

// NotFoundMessage formats the ElementNotFoundError message for id.
func NotFoundMessage[ID any](id ID) string {
	return fmt.Sprintf("No such entity with id %v was found.", id)
}

func (s *Service[DTO, ID, E]) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, s.logger)
}

func (s *Service[DTO, ID, E]) logID(ctx context.Context, log *slog.Logger, msg string, id ID) {
	if log.Enabled(ctx, slog.LevelDebug) {
		log.DebugContext(ctx, msg, slog.String("id", fmt.Sprint(id)))
	}
}

func (s *Service[DTO, ID, E]) logFault(ctx context.Context, log *slog.Logger, msg string, err error) {
	log.ErrorContext(ctx, msg,
		slog.String("error", redact.Error(err)),
		slog.String("error_type", fmt.Sprintf("%T", err)))
}
