package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveColumnFilters(t *testing.T) {
	extra := []ColumnFilter{{ColumnID: "status", Value: "open"}}

	got := DeriveColumnFilters("ann", []string{"firstName", "lastName"}, extra)
	require.Equal(t, []ColumnFilter{
		{ColumnID: "firstName", Value: "ann"},
		{ColumnID: "lastName", Value: "ann"},
		{ColumnID: "status", Value: "open"},
	}, got)

	again := DeriveColumnFilters("ann", []string{"firstName", "lastName"}, extra)
	require.True(t, EqualFilters(got, again), "derivation must be idempotent")

	require.Equal(t, extra, DeriveColumnFilters("ann", nil, extra))
	require.Empty(t, DeriveColumnFilters("", nil, nil))
}

func TestDeriveColumnFilters_DoesNotAliasExtra(t *testing.T) {
	extra := make([]ColumnFilter, 1, 4)
	extra[0] = ColumnFilter{ColumnID: "status", Value: "open"}

	got := DeriveColumnFilters("x", []string{"name"}, extra)
	got[1].Value = "changed"
	require.Equal(t, "open", extra[0].Value)
}

func TestBuildSorting(t *testing.T) {
	require.Equal(t, []SortKey{{ColumnID: "createdAt", Desc: false}}, BuildSorting(SortOldest, "createdAt", ""))
	require.Equal(t, []SortKey{{ColumnID: "createdAt", Desc: true}}, BuildSorting(SortNewest, "createdAt", ""))
	require.Equal(t, []SortKey{
		{ColumnID: "createdAt", Desc: false},
		{ColumnID: "id", Desc: true},
	}, BuildSorting(SortOldest, "createdAt", "id"))
	require.Equal(t, []SortKey{{ColumnID: "score", Desc: false}}, BuildSorting("Highest", "score", ""))
	require.Nil(t, BuildSorting(SortNewest, "", "id"))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, Config{Search: true}.Validate())
	require.NoError(t, Config{Sort: true, SortColumn: "createdAt"}.Validate())
	require.Error(t, Config{Sort: true}.Validate())
	require.Error(t, Config{FilterColumns: []string{""}}.Validate())
	require.Error(t, Config{ExtraQuery: []ColumnFilter{{Value: "x"}}}.Validate())
}

func TestConfigSortOptions(t *testing.T) {
	require.Equal(t, DefaultSortOptions, Config{}.SortOptions())
	require.Equal(t, []string{"A", "B"}, Config{SelectOptions: []string{"A", "B"}}.SortOptions())
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		loading   bool
		searching bool
		rows      int
		want      Body
	}{
		{"loading beats empty", true, false, 0, Body{State: RenderLoading}},
		{"loading beats rows and searching", true, true, 3, Body{State: RenderLoading}},
		{"settled and empty", false, false, 0, Body{State: RenderEmpty}},
		{"searching and empty", false, true, 0, Body{State: RenderEmpty}},
		{"rows", false, false, 2, Body{State: RenderRows}},
		{"rows while searching", false, true, 2, Body{State: RenderRows, Searching: true}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Resolve(tc.loading, tc.searching, tc.rows))
		})
	}
	require.Equal(t, "No results.", EmptyMessage)
}

func TestResultLoading(t *testing.T) {
	require.True(t, Result[int]{IsFetching: true}.Loading())
	require.False(t, Result[int]{}.Loading(), "undefined data without a fetch is just empty")
	require.False(t, Result[int]{Loaded: true, IsFetching: true}.Loading(), "refetch keeps stale rows")
}

func TestEditState(t *testing.T) {
	var s EditState[int64, string]
	require.False(t, s.Editing())

	s.SetDraft("ignored")
	require.Nil(t, s.Draft)

	s.Begin(7, "notes")
	require.True(t, s.IsEditing(7))
	require.False(t, s.IsEditing(8))

	s.SetDraft("better notes")
	s.Begin(8, "other")
	require.True(t, s.IsEditing(8))
	require.Equal(t, "other", *s.Draft)

	id, draft, ok := s.Commit()
	require.True(t, ok)
	require.Equal(t, int64(8), id)
	require.Equal(t, "other", draft)
	require.False(t, s.Editing())

	_, _, ok = s.Commit()
	require.False(t, ok)
}
