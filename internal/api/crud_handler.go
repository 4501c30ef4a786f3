package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/api/shared"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/service/crud"
)

// IDCodec parses path ids and stamps them onto request DTOs.
type IDCodec[DTO any, ID comparable] struct {
	Parse  func(string) (ID, error)
	WithID func(DTO, ID) DTO
}

// CrudHandler serves the CRUD operations of one resource.
type CrudHandler[DTO any, ID comparable] struct {
	resource string
	service  crud.CrudService[DTO, ID]
	ids      IDCodec[DTO, ID]
	logger   *slog.Logger
}

// NewCrudHandler creates a handler for resource, e.g. "guides".
func NewCrudHandler[DTO any, ID comparable](
	resource string,
	service crud.CrudService[DTO, ID],
	ids IDCodec[DTO, ID],
	logger *slog.Logger,
) *CrudHandler[DTO, ID] {
	if service == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("service cannot be nil for CrudHandler")
	}
	if ids.Parse == nil || ids.WithID == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("id codec cannot be nil for CrudHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CrudHandler")
	}

	return &CrudHandler[DTO, ID]{
		resource: resource,
		service:  service,
		ids:      ids,
		logger: logger.With(
			slog.String("component", "crud_handler"),
			slog.String("resource", resource),
		),
	}
}

// Routes registers the resource's endpoints relative to r.
func (h *CrudHandler[DTO, ID]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Register)
	r.Get("/{id}", h.Find)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

// List handles GET /{resource}.
func (h *CrudHandler[DTO, ID]) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.service.ListAll(r.Context())
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dtos)
}

// Register handles POST /{resource}. The body may carry an id, in which
// case an existing element is replaced.
func (h *CrudHandler[DTO, ID]) Register(w http.ResponseWriter, r *http.Request) {
	dto, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.register(w, r, dto, http.StatusCreated)
}

// Update handles PUT /{resource}/{id}; the path id overrides any id in the body.
func (h *CrudHandler[DTO, ID]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var zero ID
	if id == zero {
		shared.RespondWithError(w, r, http.StatusBadRequest, crud.InvalidIDMessage)
		return
	}

	dto, ok := h.decode(w, r)
	if !ok {
		return
	}
	h.register(w, r, h.ids.WithID(dto, id), http.StatusOK)
}

// Find handles GET /{resource}/{id}.
func (h *CrudHandler[DTO, ID]) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	dto, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, dto)
}

// Delete handles DELETE /{resource}/{id}.
func (h *CrudHandler[DTO, ID]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteByID(r.Context(), id); err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CrudHandler[DTO, ID]) register(w http.ResponseWriter, r *http.Request, dto DTO, status int) {
	saved, err := h.service.Register(r.Context(), dto)
	if err != nil {
		h.respondWithServiceError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, status, saved)
}

func (h *CrudHandler[DTO, ID]) decode(w http.ResponseWriter, r *http.Request) (DTO, bool) {
	var dto DTO
	if err := shared.DecodeJSON(w, r, &dto); err != nil {
		message := "Invalid request format"
		if errors.Is(err, shared.ErrEmptyBody) {
			message = "Request body is required"
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, message, err)
		return dto, false
	}
	if err := shared.ValidateRequest(&dto); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return dto, false
	}
	return dto, true
}

func (h *CrudHandler[DTO, ID]) pathID(w http.ResponseWriter, r *http.Request) (ID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := h.ids.Parse(raw)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Debug("invalid id in path",
			slog.String("id", raw))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			fmt.Sprintf("Invalid %s id", h.resource), err)
		return id, false
	}
	return id, true
}

func (h *CrudHandler[DTO, ID]) respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

// UUIDCodec builds an IDCodec for DTOs identified by a uuid.UUID.
func UUIDCodec[DTO any](withID func(DTO, uuid.UUID) DTO) IDCodec[DTO, uuid.UUID] {
	return IDCodec[DTO, uuid.UUID]{Parse: uuid.Parse, WithID: withID}
}
