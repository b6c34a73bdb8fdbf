package query_test

import (
	"math"
	"strings"
	"testing"

	"github.com/JaimeStill/taxi-service/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "cars", "c").
		Project("id", "ID").
		Project("model", "Model").
		ProjectExpr("m.name", "ManufacturerName").
		Join("JOIN public.manufacturers m ON m.id = c.manufacturer_id")
}

func TestProjectionMap(t *testing.T) {
	pm := newTestProjection()

	if pm.Alias() != "c" {
		t.Errorf("Alias() = %q, want c", pm.Alias())
	}

	wantTable := "public.cars c JOIN public.manufacturers m ON m.id = c.manufacturer_id"
	if pm.Table() != wantTable {
		t.Errorf("Table() = %q, want %q", pm.Table(), wantTable)
	}

	if pm.Columns() != "c.id, c.model, m.name" {
		t.Errorf("Columns() = %q", pm.Columns())
	}

	if got := pm.Column("ManufacturerName"); got != "m.name" {
		t.Errorf("Column(ManufacturerName) = %q, want m.name", got)
	}

	if got := pm.Column("Unknown"); got != "Unknown" {
		t.Errorf("Column(Unknown) = %q, want input", got)
	}

	if len(pm.ColumnList()) != 3 {
		t.Errorf("len(ColumnList()) = %d, want 3", len(pm.ColumnList()))
	}
}

func TestParseSortFields(t *testing.T) {
	tests := []struct {
		input string
		want  []query.SortField
	}{
		{"", nil},
		{"name", []query.SortField{{Field: "name"}}},
		{"-created_at", []query.SortField{{Field: "created_at", Descending: true}}},
		{"name, -country,", []query.SortField{{Field: "name"}, {Field: "country", Descending: true}}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := query.ParseSortFields(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuilder_BuildAll_DefaultSort(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "ID"})

	sql, args := b.BuildAll()

	want := "SELECT c.id, c.model, m.name FROM public.cars c JOIN public.manufacturers m ON m.id = c.manufacturer_id ORDER BY c.id ASC"
	if sql != want {
		t.Errorf("BuildAll() = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want empty", args)
	}
}

func TestBuilder_BuildAll_NoSort(t *testing.T) {
	sql, _ := query.NewBuilder(newTestProjection()).BuildAll()
	if strings.Contains(sql, "ORDER BY") {
		t.Errorf("BuildAll() without sort = %q", sql)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	tests := []struct {
		page, size int
		want       string
	}{
		{1, 20, "LIMIT 20 OFFSET 0"},
		{2, 20, "LIMIT 20 OFFSET 20"},
		{3, 10, "LIMIT 10 OFFSET 20"},
		{0, 10, "LIMIT 10 OFFSET 0"},
		{math.MaxInt, 100, "LIMIT 100 OFFSET 2147483600"},
	}

	for _, tt := range tests {
		sql, _ := query.NewBuilder(newTestProjection(), query.SortField{Field: "Model"}).BuildPage(tt.page, tt.size)
		if !strings.HasSuffix(sql, tt.want) {
			t.Errorf("BuildPage(%d, %d) = %q, want suffix %q", tt.page, tt.size, sql, tt.want)
		}
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	sql, args := query.NewBuilder(newTestProjection()).BuildSingle("ID", "abc")

	if !strings.HasSuffix(sql, "WHERE c.id = $1") {
		t.Errorf("BuildSingle() = %q", sql)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("args = %v", args)
	}
}

func TestBuilder_Conditions_ParameterNumbering(t *testing.T) {
	model := "Corolla"
	search := "toy"

	b := query.NewBuilder(newTestProjection()).
		WhereContains("Model", &model).
		WhereSearch(&search, "Model", "ManufacturerName").
		WhereIn("ID", []any{"a", "b"}).
		WhereEquals("ManufacturerName", "Toyota")

	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM public.cars c JOIN public.manufacturers m ON m.id = c.manufacturer_id" +
		" WHERE c.model ILIKE $1 ESCAPE '\\' AND (c.model ILIKE $2 ESCAPE '\\' OR m.name ILIKE $3 ESCAPE '\\')" +
		" AND c.id IN ($4, $5) AND m.name = $6"
	if sql != want {
		t.Errorf("BuildCount() =\n%q\nwant\n%q", sql, want)
	}

	if len(args) != 6 {
		t.Fatalf("len(args) = %d, want 6", len(args))
	}
	if args[0] != "%Corolla%" || args[1] != "%toy%" || args[5] != "Toyota" {
		t.Errorf("args = %v", args)
	}
}

func TestBuilder_SearchEscapesWildcards(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"%", `%\%%`},
		{"_", `%\_%`},
		{`a\b`, `%a\\b%`},
		{"50%_off", `%50\%\_off%`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			input := tt.input
			_, args := query.NewBuilder(newTestProjection()).
				WhereContains("Model", &input).
				WhereSearch(&input, "Model").
				BuildCount()

			if len(args) != 2 || args[0] != tt.want || args[1] != tt.want {
				t.Errorf("args = %v, want both %q", args, tt.want)
			}
		})
	}
}

func TestLastPage(t *testing.T) {
	for _, size := range []int{1, 20, 100} {
		last := query.LastPage(size)
		if offset := (last - 1) * size; offset < 0 || offset > query.MaxOffset {
			t.Errorf("LastPage(%d) = %d gives offset %d", size, last, offset)
		}
	}
}

func TestBuilder_Conditions_Ignored(t *testing.T) {
	empty := ""
	b := query.NewBuilder(newTestProjection()).
		WhereContains("Model", nil).
		WhereContains("Model", &empty).
		WhereSearch(nil, "Model").
		WhereIn("ID", nil).
		WhereEquals("ID", nil)

	sql, args := b.BuildCount()
	if strings.Contains(sql, "WHERE") || len(args) != 0 {
		t.Errorf("BuildCount() = %q, %v; want no conditions", sql, args)
	}
}

func TestBuilder_OrderByFields_SkipsUnknown(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "ID"}).
		OrderByFields([]query.SortField{
			{Field: "Model", Descending: true},
			{Field: "1; DROP TABLE cars"},
		})

	sql, _ := b.BuildAll()
	if !strings.HasSuffix(sql, "ORDER BY c.model DESC") {
		t.Errorf("BuildAll() = %q", sql)
	}
}

func TestBuilder_OrderByFields_AllUnknownKeepsDefault(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "ID"}).
		OrderByFields([]query.SortField{{Field: "nope"}})

	sql, _ := b.BuildAll()
	if !strings.HasSuffix(sql, "ORDER BY c.id ASC") {
		t.Errorf("BuildAll() = %q", sql)
	}
}
