package repository

import "strings"

// Page selects a slice of an ordered listing. Column must already be a whitelisted
// column name, never raw user input.
type Page struct {
	Page   int
	Limit  int
	Column string
	Desc   bool
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func (p Page) OrderClause(table string) string {
	dir := "ASC"
	if p.Desc {
		dir = "DESC"
	}
	return table + "." + p.Column + " " + dir
}

// areaScale is the number of decimal places kept by area and production columns.
// SQLite sums them as floating point, so aggregates are rounded back to it.
const areaScale = 2

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// likePattern matches s anywhere in a column. Wildcards in s match literally,
// so the LIKE using it needs ESCAPE '!'.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.TrimSpace(s)) + "%"
}

// ProductionFilter narrows the harvests taken into account by top production queries.
type ProductionFilter struct {
	Year        *int
	CultureName string
	State       string
}
