// Package query builds parameterized PostgreSQL SELECT statements from a
// projection of view field names onto table columns.
package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names (struct field names) to qualified SQL
// columns for one base table and its joins.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	joins   []string
	columns []string
	lookup  map[string]string
}

// NewProjectionMap creates a projection over schema.table with the given alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		lookup: make(map[string]string),
	}
}

// Project adds a column of the base table under the given view name.
func (p *ProjectionMap) Project(column, viewName string) *ProjectionMap {
	return p.ProjectExpr(fmt.Sprintf("%s.%s", p.alias, column), viewName)
}

// ProjectExpr adds an already-qualified column or expression, typically from
// a joined table.
func (p *ProjectionMap) ProjectExpr(expr, viewName string) *ProjectionMap {
	p.columns = append(p.columns, expr)
	p.lookup[viewName] = expr
	return p
}

// Join appends a join clause to the FROM list, e.g.
// "JOIN public.manufacturers m ON m.id = c.manufacturer_id".
func (p *ProjectionMap) Join(clause string) *ProjectionMap {
	p.joins = append(p.joins, clause)
	return p
}

// Alias returns the base table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the FROM clause body including joins.
func (p *ProjectionMap) Table() string {
	from := fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
	if len(p.joins) == 0 {
		return from
	}
	return from + " " + strings.Join(p.joins, " ")
}

// Column resolves a view name to its column. Unknown names are returned unchanged.
func (p *ProjectionMap) Column(viewName string) string {
	if col, ok := p.lookup[viewName]; ok {
		return col
	}
	return viewName
}

// Has reports whether the view name is projected.
func (p *ProjectionMap) Has(viewName string) bool {
	_, ok := p.lookup[viewName]
	return ok
}

// Columns returns the comma-separated select list.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// ColumnList returns the select list as a slice.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, len(p.columns))
	copy(list, p.columns)
	return list
}
