package repository

import (
	"context"
	"strings"

	"github.com/iliyamo/seminar-backend/internal/model"
)

// SeminarSearchQuery defines the optional filters for searching seminars.
// An empty field means the filter is not applied.
type SeminarSearchQuery struct {
	Keyword   string // substring match against title or description
	Speaker   string // substring match against speaker
	Location  string // substring match against location
	StartDate string // date >= StartDate
	EndDate   string // date <= EndDate
}

// whereClause translates the present filters into an AND-joined predicate
// plus the matching bound arguments, in clause order.  Values only ever
// travel as parameters, never as statement text.  With no filters present
// the predicate is the always-true base.
func (q SeminarSearchQuery) whereClause() (string, []any) {
	where := []string{}
	args := []any{}

	if q.Keyword != "" {
		where = append(where, "(title LIKE ? OR description LIKE ?)")
		kw := "%" + q.Keyword + "%"
		args = append(args, kw, kw)
	}
	if q.Speaker != "" {
		where = append(where, "speaker LIKE ?")
		args = append(args, "%"+q.Speaker+"%")
	}
	if q.Location != "" {
		where = append(where, "location LIKE ?")
		args = append(args, "%"+q.Location+"%")
	}
	if q.StartDate != "" {
		where = append(where, "date >= ?")
		args = append(args, q.StartDate)
	}
	if q.EndDate != "" {
		where = append(where, "date <= ?")
		args = append(args, q.EndDate)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return cond, args
}

// Search executes the filtered query.  Results are always ordered by date
// descending, matching ListAll, so a search without filters returns the
// same set as a plain listing.
func (r *SeminarRepo) Search(ctx context.Context, q SeminarSearchQuery) ([]*model.Seminar, error) {
	cond, args := q.whereClause()

	sqlText := "SELECT " + seminarCols + " FROM seminars WHERE " + cond + " ORDER BY date DESC"

	rows, err := r.db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSeminars(rows)
}
