package handler // handler defines http handlers

import (
	"context"  // context carries request-scoped deadlines into the store
	"errors"   // errors provides sentinel comparison via errors.Is
	"net/http" // http provides status code constants
	"strconv"  // strconv parses string identifiers to numeric types
	"strings"  // strings offers trimming utilities

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/seminar-backend/internal/model"
	"github.com/iliyamo/seminar-backend/internal/repository"
)

// SeminarStore is the persistence surface the handlers depend on.  The
// concrete *repository.SeminarRepo satisfies it; tests substitute a fake.
type SeminarStore interface {
	ListAll(ctx context.Context) ([]*model.Seminar, error)
	GetByID(ctx context.Context, id int64) (*model.Seminar, error)
	Create(ctx context.Context, in repository.SeminarInput) (int64, error)
	Update(ctx context.Context, id int64, in repository.SeminarInput) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, q repository.SeminarSearchQuery) ([]*model.Seminar, error)
}

// SeminarHandler bundles the store and payload validator behind the
// seminar endpoints.
type SeminarHandler struct {
	Store    SeminarStore
	validate *validator.Validate
}

// NewSeminarHandler constructs a SeminarHandler and panics if the store is nil.
func NewSeminarHandler(store SeminarStore) *SeminarHandler {
	if store == nil {
		panic("nil store passed to NewSeminarHandler")
	}
	return &SeminarHandler{
		Store:    store,
		validate: validator.New(),
	}
}

// seminarRequest binds a create or update body.  Create enforces the
// required tags; update deliberately skips validation and passes the bound
// fields through as-is.
type seminarRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Speaker     string `json:"speaker" validate:"required"`
	Capacity    int    `json:"capacity"`
}

// input converts the bound body into the repository's field set.
func (b seminarRequest) input() repository.SeminarInput {
	return repository.SeminarInput{
		Title:       b.Title,
		Description: b.Description,
		Date:        b.Date,
		Location:    b.Location,
		Speaker:     b.Speaker,
		Capacity:    b.Capacity,
	}
}

// List handles GET /api/seminars and returns every seminar ordered by
// date descending.
func (h *SeminarHandler) List(c echo.Context) error {
	items, err := h.Store.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to fetch seminars", err)
	}
	return ok(c, http.StatusOK, Envelope{Data: items, Count: countOf(len(items))})
}

// GetByID handles GET /api/seminars/:id.
func (h *SeminarHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid seminar id", nil)
	}
	s, err := h.Store.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSeminarNotFound) {
			return fail(c, http.StatusNotFound, "seminar not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "failed to fetch seminar", err)
	}
	return ok(c, http.StatusOK, Envelope{Data: s})
}

// Create handles POST /api/seminars.  All fields except capacity are
// required; capacity falls back to 100 when absent or zero.
func (h *SeminarHandler) Create(c echo.Context) error {
	var body seminarRequest
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := h.validate.Struct(body); err != nil {
		return fail(c, http.StatusBadRequest, "required fields are missing", err)
	}
	if body.Capacity == 0 {
		body.Capacity = 100
	}
	id, err := h.Store.Create(c.Request().Context(), body.input())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create seminar", err)
	}
	return ok(c, http.StatusCreated, Envelope{Message: "seminar created", ID: id})
}

// Update handles PUT /api/seminars/:id.  The body is bound without
// required-field validation; every mutable column is overwritten with
// whatever the client sent, matching create's counterpart asymmetrically.
func (h *SeminarHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid seminar id", nil)
	}
	var body seminarRequest
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body", nil)
	}
	if err := h.Store.Update(c.Request().Context(), id, body.input()); err != nil {
		if errors.Is(err, repository.ErrSeminarNotFound) {
			return fail(c, http.StatusNotFound, "seminar not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "failed to update seminar", err)
	}
	return ok(c, http.StatusOK, Envelope{Message: "seminar updated"})
}

// Delete handles DELETE /api/seminars/:id.  Deleting an id that no longer
// exists reports 404, so a repeated delete is harmless.
func (h *SeminarHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid seminar id", nil)
	}
	if err := h.Store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrSeminarNotFound) {
			return fail(c, http.StatusNotFound, "seminar not found", nil)
		}
		return fail(c, http.StatusInternalServerError, "failed to delete seminar", err)
	}
	return ok(c, http.StatusOK, Envelope{Message: "seminar deleted"})
}

// searchParams echoes the supplied filters back to the client; absent
// filters serialize as null.
type searchParams struct {
	Keyword   *string `json:"keyword"`
	Speaker   *string `json:"speaker"`
	Location  *string `json:"location"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}

// Search handles GET /api/seminars/search.  All filters are optional and
// combine with AND; results keep the date-descending order of List.
func (h *SeminarHandler) Search(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	speaker := strings.TrimSpace(c.QueryParam("speaker"))
	location := strings.TrimSpace(c.QueryParam("location"))
	startDate := strings.TrimSpace(c.QueryParam("startDate"))
	endDate := strings.TrimSpace(c.QueryParam("endDate"))

	q := repository.SeminarSearchQuery{
		Keyword:   keyword,
		Speaker:   speaker,
		Location:  location,
		StartDate: startDate,
		EndDate:   endDate,
	}

	items, err := h.Store.Search(c.Request().Context(), q)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to search seminars", err)
	}
	return ok(c, http.StatusOK, Envelope{
		Data:  items,
		Count: countOf(len(items)),
		SearchParams: searchParams{
			Keyword:   nilIfEmpty(keyword),
			Speaker:   nilIfEmpty(speaker),
			Location:  nilIfEmpty(location),
			StartDate: nilIfEmpty(startDate),
			EndDate:   nilIfEmpty(endDate),
		},
	})
}

// parseID extracts the numeric :id path parameter.
func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
