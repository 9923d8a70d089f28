package table

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name      string
	Title     string
	CreatedAt string
	Score     decimal.NullDecimal
	Round     int
}

func personColumns() []Column[person] {
	return []Column[person]{
		{ID: "name", Header: "Name", Accessor: func(p person) any { return p.Name }},
		{ID: "title", Header: "Title", Accessor: func(p person) any { return p.Title }},
		{ID: "createdAt", Header: "Created", Accessor: func(p person) any { return p.CreatedAt }, NoGlobalFilter: true},
		{ID: "score", Header: "Score", Accessor: func(p person) any { return p.Score }, FilterFn: Equals},
		{ID: "round", Header: "Round", Accessor: func(p person) any { return p.Round }},
	}
}

func names(rows []person) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestApply_NewestSortsDescending(t *testing.T) {
	rows := []person{
		{Name: "Ann", CreatedAt: "2024-01-01"},
		{Name: "Bob", CreatedAt: "2024-02-01"},
	}
	e := New(personColumns()...)

	got := e.Apply(rows, State{Sorting: BuildSorting(SortNewest, "createdAt", "")})
	require.Equal(t, []string{"Bob", "Ann"}, names(got))

	got = e.Apply(rows, State{Sorting: BuildSorting(SortOldest, "createdAt", "")})
	require.Equal(t, []string{"Ann", "Bob"}, names(got))

	require.Equal(t, "Ann", rows[0].Name, "input must not be reordered")
}

func TestApply_GlobalFilterIsExactNotSubstring(t *testing.T) {
	rows := []person{
		{Name: "Ann", Title: "Senior Engineer"},
		{Name: "Bob", Title: "Engineer"},
	}
	e := New(personColumns()...)

	got := e.Apply(rows, State{GlobalFilter: "Engineer"})
	require.Equal(t, []string{"Bob"}, names(got))

	got = e.Apply(rows, State{GlobalFilter: "  senior ENGINEER "})
	require.Equal(t, []string{"Ann"}, names(got))

	got = e.Apply(rows, State{GlobalFilter: "engin"})
	require.Empty(t, got)
}

func TestApply_GlobalFilterSkipsOptedOutAndHiddenColumns(t *testing.T) {
	rows := []person{{Name: "Ann", Title: "Lead", CreatedAt: "2024-01-01"}}
	e := New(personColumns()...)

	require.Empty(t, e.Apply(rows, State{GlobalFilter: "2024-01-01"}), "createdAt opted out")

	st := State{GlobalFilter: "lead", ColumnVisibility: map[string]bool{"title": false}}
	require.Empty(t, e.Apply(rows, st), "hidden column must not match")

	st.ColumnVisibility = map[string]bool{"title": true}
	require.Len(t, e.Apply(rows, st), 1)
}

func TestApply_EmptyGlobalFilterMatchesAll(t *testing.T) {
	rows := []person{{Name: "Ann"}, {Name: "Bob"}}
	got := New(personColumns()...).Apply(rows, State{GlobalFilter: "   "})
	require.Len(t, got, 2)
}

func TestApply_ColumnFiltersAreAndedPerFilterFn(t *testing.T) {
	rows := []person{
		{Name: "Annabel", Title: "Engineer", Score: decimal.NewNullDecimal(decimal.RequireFromString("4.5"))},
		{Name: "Anna", Title: "Designer", Score: decimal.NewNullDecimal(decimal.RequireFromString("4.5"))},
		{Name: "Bob", Title: "Engineer", Score: decimal.NewNullDecimal(decimal.RequireFromString("3"))},
	}
	e := New(personColumns()...)

	got := e.Apply(rows, State{ColumnFilters: []ColumnFilter{{ColumnID: "name", Value: "ANN"}}})
	require.Equal(t, []string{"Annabel", "Anna"}, names(got))

	got = e.Apply(rows, State{ColumnFilters: []ColumnFilter{
		{ColumnID: "name", Value: "ann"},
		{ColumnID: "title", Value: "engineer"},
	}})
	require.Equal(t, []string{"Annabel"}, names(got))

	got = e.Apply(rows, State{ColumnFilters: []ColumnFilter{{ColumnID: "score", Value: "4"}}})
	require.Empty(t, got, "score uses Equals")

	got = e.Apply(rows, State{ColumnFilters: []ColumnFilter{{ColumnID: "score", Value: "4.5"}}})
	require.Len(t, got, 2)
}

func TestApply_GlobalAndColumnFiltersBothApply(t *testing.T) {
	rows := []person{
		{Name: "Ann", Title: "Senior Engineer"},
		{Name: "Bob", Title: "Engineer"},
		{Name: "Engineer", Title: "Designer"},
	}
	e := New(personColumns()...)

	got := e.Apply(rows, State{
		GlobalFilter:  "Engineer",
		ColumnFilters: []ColumnFilter{{ColumnID: "title", Value: "Engineer"}},
	})
	require.Equal(t, []string{"Bob"}, names(got), "column filter alone would also keep Ann; global alone would keep Engineer")

	got = e.Apply(rows, State{
		GlobalFilter:  "engineer",
		ColumnFilters: []ColumnFilter{{ColumnID: "name", Value: "bo"}},
	})
	require.Equal(t, []string{"Bob"}, names(got))

	got = e.Apply(rows, State{
		GlobalFilter:  "senior",
		ColumnFilters: []ColumnFilter{{ColumnID: "title", Value: "senior"}},
	})
	require.Empty(t, got, "substring column match does not relax the exact global match")
}

func TestApply_IgnoresEmptyAndUnknownFilters(t *testing.T) {
	rows := []person{{Name: "Ann"}, {Name: "Bob"}}
	got := New(personColumns()...).Apply(rows, State{ColumnFilters: []ColumnFilter{
		{ColumnID: "name", Value: ""},
		{ColumnID: "missing", Value: "x"},
	}})
	require.Len(t, got, 2)
}

func TestApply_FuzzyFilter(t *testing.T) {
	cols := personColumns()
	cols[0].FilterFn = Fuzzy
	rows := []person{{Name: "Somchai Jaidee"}, {Name: "Bob"}}

	got := New(cols...).Apply(rows, State{ColumnFilters: []ColumnFilter{{ColumnID: "name", Value: "smjd"}}})
	require.Equal(t, []string{"Somchai Jaidee"}, names(got))
}

func TestApply_MultiKeySortWithFallback(t *testing.T) {
	rows := []person{
		{Name: "a", CreatedAt: "2024-01-01", Round: 1},
		{Name: "b", CreatedAt: "2024-01-01", Round: 3},
		{Name: "c", CreatedAt: "2023-12-31", Round: 2},
	}
	e := New(personColumns()...)

	got := e.Apply(rows, State{Sorting: BuildSorting(SortOldest, "createdAt", "round")})
	require.Equal(t, []string{"c", "b", "a"}, names(got))
}

func TestApply_SortIsNumericForNumbers(t *testing.T) {
	rows := []person{{Name: "ten", Round: 10}, {Name: "nine", Round: 9}, {Name: "two", Round: 2}}
	got := New(personColumns()...).Apply(rows, State{Sorting: []SortKey{{ColumnID: "round"}}})
	require.Equal(t, []string{"two", "nine", "ten"}, names(got))
}

func TestApply_SortIsStableForTies(t *testing.T) {
	rows := []person{{Name: "first", Round: 1}, {Name: "second", Round: 1}, {Name: "third", Round: 1}}
	got := New(personColumns()...).Apply(rows, State{Sorting: []SortKey{{ColumnID: "round", Desc: true}}})
	require.Equal(t, []string{"first", "second", "third"}, names(got))
}

func TestApply_UnknownSortColumnKeepsOrder(t *testing.T) {
	rows := []person{{Name: "b"}, {Name: "a"}}
	got := New(personColumns()...).Apply(rows, State{Sorting: []SortKey{{ColumnID: "nope"}}})
	require.Equal(t, []string{"b", "a"}, names(got))
}

func TestCompare(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	cases := []struct {
		name string
		a, b any
		want int
	}{
		{"nil first", nil, "a", -1},
		{"both nil", nil, nil, 0},
		{"invalid decimal is nil", decimal.NullDecimal{}, decimal.NewFromInt(1), -1},
		{"decimal vs int", decimal.RequireFromString("2.5"), 3, -1},
		{"times", late, early, 1},
		{"zero time is nil", time.Time{}, early, -1},
		{"bools", false, true, -1},
		{"case insensitive", "apple", "Banana", -1},
		{"case tie-break", "a", "A", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Compare(tc.a, tc.b))
		})
	}
}

func TestStringify(t *testing.T) {
	require.Equal(t, "", Stringify(nil))
	require.Equal(t, "", Stringify(decimal.NullDecimal{}))
	require.Equal(t, "4.5", Stringify(decimal.NewNullDecimal(decimal.RequireFromString("4.50"))))
	require.Equal(t, "true", Stringify(true))
	require.Equal(t, "42", Stringify(int64(42)))
	require.Equal(t, "2024-03-01 09:30", Stringify(time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)))
	require.Equal(t, "", Stringify(time.Time{}))
}

func TestVisibleColumnsAndCell(t *testing.T) {
	e := New(personColumns()...)
	visible := e.VisibleColumns(map[string]bool{"score": false, "round": false})
	require.Len(t, visible, 3)
	require.Equal(t, "Ann", e.Cell(person{Name: "Ann"}, "name"))
	require.Equal(t, "", e.Cell(person{Name: "Ann"}, "unknown"))
}
