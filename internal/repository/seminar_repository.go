// Package repository contains data access logic separated from HTTP handlers.
// This file defines the repository methods for CRUD operations on seminars.
// Every method issues exactly one statement against the seminars table; there
// are no retries and no multi-statement transactions, so each operation is
// atomic by construction.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values

	"github.com/iliyamo/seminar-backend/internal/model"
)

// ErrSeminarNotFound is returned when a seminar cannot be found in the DB.
// Handlers should translate this into an HTTP 404 response.
var ErrSeminarNotFound = errors.New("seminar not found")

// SeminarInput carries the mutable seminar fields supplied by a create or
// update request.  Date is kept as a string and bound as a statement
// parameter so that the database performs the parsing, the same way the
// other values are never interpolated into statement text.
type SeminarInput struct {
	Title       string
	Description string
	Date        string
	Location    string
	Speaker     string
	Capacity    int
}

// seminarCols is the column list shared by every SELECT against the table.
const seminarCols = "id, title, description, date, location, speaker, capacity, created_at, updated_at"

// SeminarRepo encapsulates all database queries related to seminars.  It
// depends on a sql.DB connection pool which is configured at startup and
// injected here, so tests can substitute their own provider.
type SeminarRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewSeminarRepo constructs a SeminarRepo with the provided DB handle.
func NewSeminarRepo(db *sql.DB) *SeminarRepo {
	return &SeminarRepo{db: db}
}

// ListAll returns every seminar ordered by date descending.
func (r *SeminarRepo) ListAll(ctx context.Context) ([]*model.Seminar, error) {
	const q = "SELECT " + seminarCols + " FROM seminars ORDER BY date DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}

// GetByID fetches a single seminar by its ID.  It returns
// ErrSeminarNotFound if no row matches.
func (r *SeminarRepo) GetByID(ctx context.Context, id int64) (*model.Seminar, error) {
	const q = "SELECT " + seminarCols + " FROM seminars WHERE id = ?"
	s, err := scanSeminar(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeminarNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new seminar and returns the auto-generated ID.  The
// created_at timestamp is assigned by the database at insert time.
func (r *SeminarRepo) Create(ctx context.Context, in SeminarInput) (int64, error) {
	const q = `INSERT INTO seminars (title, description, date, location, speaker, capacity, created_at)
	           VALUES (?, ?, ?, ?, ?, ?, NOW())`
	res, err := r.db.ExecContext(ctx, q, in.Title, in.Description, in.Date, in.Location, in.Speaker, in.Capacity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update overwrites all mutable columns of the seminar and refreshes
// updated_at.  It returns ErrSeminarNotFound when no row is affected.
// Required-field validation is a create-time concern only; whatever the
// caller supplies here is written as-is.
func (r *SeminarRepo) Update(ctx context.Context, id int64, in SeminarInput) error {
	const q = `UPDATE seminars
	           SET title = ?, description = ?, date = ?, location = ?, speaker = ?, capacity = ?, updated_at = NOW()
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, in.Title, in.Description, in.Date, in.Location, in.Speaker, in.Capacity, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeminarNotFound
	}
	return nil
}

// Delete removes the seminar permanently.  There is no soft delete; a
// second delete of the same id reports ErrSeminarNotFound.
func (r *SeminarRepo) Delete(ctx context.Context, id int64) error {
	const q = "DELETE FROM seminars WHERE id = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSeminarNotFound
	}
	return nil
}

// scanSeminar reads one row into a Seminar, mapping the nullable
// updated_at column onto a pointer.
func scanSeminar(row *sql.Row) (*model.Seminar, error) {
	var (
		s       model.Seminar
		updated sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.Location, &s.Speaker, &s.Capacity, &s.CreatedAt, &updated); err != nil {
		return nil, err
	}
	if updated.Valid {
		s.UpdatedAt = &updated.Time
	}
	return &s, nil
}

// scanSeminars drains a result set into a slice.  The slice is never nil
// so an empty result serializes as [] rather than null.
func scanSeminars(rows *sql.Rows) ([]*model.Seminar, error) {
	out := make([]*model.Seminar, 0)
	for rows.Next() {
		var (
			s       model.Seminar
			updated sql.NullTime
		)
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Date, &s.Location, &s.Speaker, &s.Capacity, &s.CreatedAt, &updated); err != nil {
			return nil, err
		}
		if updated.Valid {
			s.UpdatedAt = &updated.Time
		}
		out = append(out, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
