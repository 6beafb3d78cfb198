package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/seminar-backend/internal/handler"
	"github.com/iliyamo/seminar-backend/internal/model"
	"github.com/iliyamo/seminar-backend/internal/repository"
)

// stubStore satisfies handler.SeminarStore with canned data; the router
// tests only care about which handler a request reaches.
type stubStore struct {
	searched  bool
	fetchedID int64
}

func (s *stubStore) ListAll(ctx context.Context) ([]*model.Seminar, error) {
	return []*model.Seminar{}, nil
}

func (s *stubStore) GetByID(ctx context.Context, id int64) (*model.Seminar, error) {
	s.fetchedID = id
	return nil, repository.ErrSeminarNotFound
}

func (s *stubStore) Create(ctx context.Context, in repository.SeminarInput) (int64, error) {
	return 1, nil
}

func (s *stubStore) Update(ctx context.Context, id int64, in repository.SeminarInput) error {
	return repository.ErrSeminarNotFound
}

func (s *stubStore) Delete(ctx context.Context, id int64) error {
	return repository.ErrSeminarNotFound
}

func (s *stubStore) Search(ctx context.Context, q repository.SeminarSearchQuery) ([]*model.Seminar, error) {
	s.searched = true
	return []*model.Seminar{}, nil
}

func serve(t *testing.T, store *stubStore, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	RegisterRoutes(e, handler.NewSeminarHandler(store))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

// /api/seminars/search must dispatch to the search handler, not be
// swallowed by the :id route.
func TestSearchRouteNotCapturedByID(t *testing.T) {
	store := &stubStore{}
	rec := serve(t, store, http.MethodGet, "/api/seminars/search?keyword=AI")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, store.searched)
	assert.Zero(t, store.fetchedID)
}

func TestIDRouteDispatch(t *testing.T) {
	store := &stubStore{}
	rec := serve(t, store, http.MethodGet, "/api/seminars/12")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(12), store.fetchedID)
}

func TestHealthRoute(t *testing.T) {
	rec := serve(t, &stubStore{}, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body["status"])
}

// Unmatched paths come back as the standard failure envelope rather than
// Echo's default 404 body.
func TestUnknownRouteReturnsEnvelope(t *testing.T) {
	rec := serve(t, &stubStore{}, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}
