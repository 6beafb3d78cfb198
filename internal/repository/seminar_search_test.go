package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereClause_NoFilters(t *testing.T) {
	cond, args := SeminarSearchQuery{}.whereClause()

	assert.Equal(t, "1=1", cond)
	assert.Empty(t, args)
}

func TestWhereClause_Keyword(t *testing.T) {
	cond, args := SeminarSearchQuery{Keyword: "AI"}.whereClause()

	assert.Equal(t, "(title LIKE ? OR description LIKE ?)", cond)
	require.Len(t, args, 2)
	assert.Equal(t, "%AI%", args[0])
	assert.Equal(t, "%AI%", args[1])
}

func TestWhereClause_Speaker(t *testing.T) {
	cond, args := SeminarSearchQuery{Speaker: "Jane"}.whereClause()

	assert.Equal(t, "speaker LIKE ?", cond)
	assert.Equal(t, []any{"%Jane%"}, args)
}

func TestWhereClause_Location(t *testing.T) {
	cond, args := SeminarSearchQuery{Location: "Seoul"}.whereClause()

	assert.Equal(t, "location LIKE ?", cond)
	assert.Equal(t, []any{"%Seoul%"}, args)
}

func TestWhereClause_DateRange(t *testing.T) {
	cond, args := SeminarSearchQuery{
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	}.whereClause()

	assert.Equal(t, "date >= ? AND date <= ?", cond)
	assert.Equal(t, []any{"2024-01-01", "2024-12-31"}, args)
}

// All five filters combine with AND in declaration order, and the bound
// arguments line up with clause appearance.
func TestWhereClause_AllFilters(t *testing.T) {
	cond, args := SeminarSearchQuery{
		Keyword:   "AI",
		Speaker:   "Jane",
		Location:  "Seoul",
		StartDate: "2024-01-01",
		EndDate:   "2024-12-31",
	}.whereClause()

	assert.Equal(t,
		"(title LIKE ? OR description LIKE ?) AND speaker LIKE ? AND location LIKE ? AND date >= ? AND date <= ?",
		cond)
	assert.Equal(t, []any{"%AI%", "%AI%", "%Jane%", "%Seoul%", "2024-01-01", "2024-12-31"}, args)
}

// Filter values are only ever emitted as bound arguments; an injection
// attempt stays out of the statement text entirely.
func TestWhereClause_ValuesNeverEnterStatementText(t *testing.T) {
	hostile := "'; DROP TABLE seminars; --"
	cond, args := SeminarSearchQuery{Keyword: hostile}.whereClause()

	assert.NotContains(t, cond, hostile)
	assert.Equal(t, []any{"%" + hostile + "%", "%" + hostile + "%"}, args)
}
