package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/api"
	"github.com/phrazzld/passeio-api/internal/api/shared"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/service/crud"
	"github.com/phrazzld/passeio-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widgetDTO struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name" validate:"required"`
	Weight int       `json:"weight" validate:"gte=0"`
}

// fakeService implements crud.CrudService with function fields.
type fakeService struct {
	listAllFn    func(ctx context.Context) ([]widgetDTO, error)
	registerFn   func(ctx context.Context, dto widgetDTO) (widgetDTO, error)
	deleteByIDFn func(ctx context.Context, id uuid.UUID) error
	findByIDFn   func(ctx context.Context, id uuid.UUID) (widgetDTO, error)
}

func (f *fakeService) ListAll(ctx context.Context) ([]widgetDTO, error) {
	return f.listAllFn(ctx)
}

func (f *fakeService) Register(ctx context.Context, dto widgetDTO) (widgetDTO, error) {
	return f.registerFn(ctx, dto)
}

func (f *fakeService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return f.deleteByIDFn(ctx, id)
}

func (f *fakeService) FindByID(ctx context.Context, id uuid.UUID) (widgetDTO, error) {
	return f.findByIDFn(ctx, id)
}

func newRouter(svc crud.CrudService[widgetDTO, uuid.UUID]) http.Handler {
	handler := api.NewCrudHandler("widget", svc, api.UUIDCodec(func(d widgetDTO, id uuid.UUID) widgetDTO {
		d.ID = id
		return d
	}), logger.Discard())

	r := chi.NewRouter()
	r.Route("/api/widgets", handler.Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req = req.WithContext(shared.WithTraceID(req.Context(), "trace-1234"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestNewCrudHandler_Panics(t *testing.T) {
	codec := api.UUIDCodec(func(d widgetDTO, id uuid.UUID) widgetDTO { return d })
	assert.Panics(t, func() { api.NewCrudHandler[widgetDTO, uuid.UUID]("widget", nil, codec, logger.Discard()) })
	assert.Panics(t, func() { api.NewCrudHandler("widget", &fakeService{}, codec, nil) })
	assert.Panics(t, func() {
		api.NewCrudHandler("widget", &fakeService{}, api.IDCodec[widgetDTO, uuid.UUID]{}, logger.Discard())
	})
}

func TestCrudHandler_List(t *testing.T) {
	items := []widgetDTO{{ID: uuid.New(), Name: "a"}, {ID: uuid.New(), Name: "b"}}
	h := newRouter(&fakeService{listAllFn: func(ctx context.Context) ([]widgetDTO, error) { return items, nil }})

	rec := do(t, h, http.MethodGet, "/api/widgets", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var got []widgetDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, items, got)
}

func TestCrudHandler_ListEmpty(t *testing.T) {
	h := newRouter(&fakeService{listAllFn: func(ctx context.Context) ([]widgetDTO, error) { return []widgetDTO{}, nil }})

	rec := do(t, h, http.MethodGet, "/api/widgets", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCrudHandler_Register(t *testing.T) {
	assigned := uuid.New()
	var received widgetDTO
	h := newRouter(&fakeService{registerFn: func(ctx context.Context, dto widgetDTO) (widgetDTO, error) {
		received = dto
		dto.ID = assigned
		return dto, nil
	}})

	rec := do(t, h, http.MethodPost, "/api/widgets", `{"name":"gear","weight":3}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, widgetDTO{Name: "gear", Weight: 3}, received)
	var got widgetDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, assigned, got.ID)
}

func TestCrudHandler_RegisterInvalidBody(t *testing.T) {
	called := false
	h := newRouter(&fakeService{registerFn: func(ctx context.Context, dto widgetDTO) (widgetDTO, error) {
		called = true
		return dto, nil
	}})

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"empty body", "", "Request body is required"},
		{"malformed json", `{"name":`, "Invalid request format"},
		{"unknown field", `{"name":"gear","color":"red"}`, "Invalid request format"},
		{"trailing data", `{"name":"gear"} {}`, "Invalid request format"},
		{"missing name", `{"weight":1}`, "Invalid name: required field"},
		{"negative weight", `{"name":"gear","weight":-1}`, "Invalid weight: too small"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/api/widgets", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.message, resp.Error)
			assert.Equal(t, "trace-1234", resp.TraceID)
		})
	}
	assert.False(t, called, "service must not be called for invalid input")
}

func TestCrudHandler_UpdateUsesPathID(t *testing.T) {
	id := uuid.New()
	h := newRouter(&fakeService{registerFn: func(ctx context.Context, dto widgetDTO) (widgetDTO, error) {
		return dto, nil
	}})

	rec := do(t, h, http.MethodPut, "/api/widgets/"+id.String(), `{"id":"`+uuid.NewString()+`","name":"gear"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got widgetDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, id, got.ID)
}

func TestCrudHandler_UpdateNilID(t *testing.T) {
	h := newRouter(&fakeService{})

	rec := do(t, h, http.MethodPut, "/api/widgets/"+uuid.Nil.String(), `{"name":"gear"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, crud.InvalidIDMessage, decodeError(t, rec).Error)
}

func TestCrudHandler_FindAndDelete(t *testing.T) {
	known := widgetDTO{ID: uuid.New(), Name: "gear"}
	lookup := func(id uuid.UUID) error {
		switch {
		case id == uuid.Nil:
			return &crud.BadRequestError{Message: crud.InvalidIDMessage, Err: store.ErrInvalidID}
		case id != known.ID:
			return &crud.ElementNotFoundError{Message: crud.NotFoundMessage(id), Err: store.ErrNotFound}
		}
		return nil
	}
	h := newRouter(&fakeService{
		findByIDFn: func(ctx context.Context, id uuid.UUID) (widgetDTO, error) {
			if err := lookup(id); err != nil {
				return widgetDTO{}, err
			}
			return known, nil
		},
		deleteByIDFn: func(ctx context.Context, id uuid.UUID) error { return lookup(id) },
	})
	missing := uuid.New()

	tests := []struct {
		name    string
		method  string
		path    string
		status  int
		message string
	}{
		{"find", http.MethodGet, "/api/widgets/" + known.ID.String(), http.StatusOK, ""},
		{"find missing", http.MethodGet, "/api/widgets/" + missing.String(), http.StatusNotFound,
			"No such entity with id " + missing.String() + " was found."},
		{"find nil", http.MethodGet, "/api/widgets/" + uuid.Nil.String(), http.StatusBadRequest, "id must not be null."},
		{"find malformed", http.MethodGet, "/api/widgets/not-a-uuid", http.StatusBadRequest, "Invalid widget id"},
		{"delete", http.MethodDelete, "/api/widgets/" + known.ID.String(), http.StatusNoContent, ""},
		{"delete missing", http.MethodDelete, "/api/widgets/" + missing.String(), http.StatusNotFound,
			"No such entity with id " + missing.String() + " was found."},
		{"delete nil", http.MethodDelete, "/api/widgets/" + uuid.Nil.String(), http.StatusBadRequest, "id must not be null."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.path, "")

			assert.Equal(t, tt.status, rec.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, decodeError(t, rec).Error)
			}
		})
	}
}

func TestCrudHandler_ServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name: "duplicate",
			err: &crud.ElementRegistrationError{
				Message: "UNIQUE constraint failed: widgets.name",
				Err:     store.ErrDuplicate,
			},
			status:  http.StatusConflict,
			message: "Element already exists",
		},
		{
			name:    "constraint",
			err:     &crud.ElementRegistrationError{Message: "CHECK constraint failed", Err: store.ErrInvalidEntity},
			status:  http.StatusConflict,
			message: "Element violates a data constraint",
		},
		{
			name:    "unexpected",
			err:     errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			status:  http.StatusInternalServerError,
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newRouter(&fakeService{registerFn: func(ctx context.Context, dto widgetDTO) (widgetDTO, error) {
				return widgetDTO{}, tt.err
			}})

			rec := do(t, h, http.MethodPost, "/api/widgets", `{"name":"gear"}`)

			assert.Equal(t, tt.status, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.message, resp.Error)
			assert.NotContains(t, rec.Body.String(), "10.0.0.5")
		})
	}
}
