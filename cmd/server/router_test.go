package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/passeio-api/internal/api/shared"
	"github.com/phrazzld/passeio-api/internal/config"
	"github.com/phrazzld/passeio-api/internal/platform/logger"
	"github.com/phrazzld/passeio-api/internal/service"
	"github.com/phrazzld/passeio-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Port: 8080, LogLevel: "error"}}

	app, err := newApplication(cfg, logger.Discard(), testdb.NewSQLite(t))
	require.NoError(t, err)

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, srv *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp := send(t, srv, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(shared.TraceIDHeader))
}

func TestGuideAndTourLifecycle(t *testing.T) {
	srv := newTestServer(t)

	resp := send(t, srv, http.MethodGet, "/api/guides", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[[]service.GuideDTO](t, resp))

	resp = send(t, srv, http.MethodPost, "/api/guides", `{"name":"Ana Souza","email":"ana@example.com"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	guide := decode[service.GuideDTO](t, resp)
	require.NotEqual(t, uuid.Nil, guide.ID)

	resp = send(t, srv, http.MethodPost, "/api/guides", `{"name":"Impostor","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Element already exists", decode[shared.ErrorResponse](t, resp).Error)

	resp = send(t, srv, http.MethodPost, "/api/tours", `{"guide_id":"`+guide.ID.String()+
		`","title":"Santa Teresa Walk","destination":"Rio de Janeiro","price_cents":12000,"duration_minutes":180}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	tour := decode[service.TourDTO](t, resp)

	resp = send(t, srv, http.MethodPut, "/api/tours/"+tour.ID.String(), `{"guide_id":"`+guide.ID.String()+
		`","title":"Santa Teresa Walk","destination":"Rio de Janeiro","price_cents":15000,"duration_minutes":180}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[service.TourDTO](t, resp)
	assert.Equal(t, tour.ID, updated.ID)
	assert.Equal(t, int64(15000), updated.PriceCents)

	resp = send(t, srv, http.MethodPost, "/api/tours", `{"guide_id":"`+uuid.NewString()+
		`","title":"Pelourinho","destination":"Salvador","price_cents":8000,"duration_minutes":120}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Element violates a data constraint", decode[shared.ErrorResponse](t, resp).Error)

	resp = send(t, srv, http.MethodDelete, "/api/guides/"+guide.ID.String(), "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "a guide with tours cannot be deleted")

	resp = send(t, srv, http.MethodDelete, "/api/tours/"+tour.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = send(t, srv, http.MethodGet, "/api/tours/"+tour.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "No such entity with id "+tour.ID.String()+" was found.",
		decode[shared.ErrorResponse](t, resp).Error)

	resp = send(t, srv, http.MethodDelete, "/api/guides/"+guide.ID.String(), "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = send(t, srv, http.MethodGet, "/api/guides/"+uuid.Nil.String(), "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "id must not be null.", decode[shared.ErrorResponse](t, resp).Error)
}

func TestRegisterValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := send(t, srv, http.MethodPost, "/api/guides", `{"name":"Ana","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid email: invalid email format", decode[shared.ErrorResponse](t, resp).Error)
}
