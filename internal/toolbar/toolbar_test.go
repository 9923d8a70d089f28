package toolbar

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/five82/talentdesk/internal/table"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func searchConfig() table.Config {
	return table.Config{
		Search:     true,
		Sort:       true,
		SortColumn: "createdAt",
	}
}

func TestToolbar_BurstCommitsLastValueOnce(t *testing.T) {
	clock := newClock()
	tb := New(searchConfig(), WithClock(clock))
	start := tb.Version()

	for _, v := range []string{"a", "an", "ann"} {
		tb.SetSearch(v)
		clock.Advance(100 * time.Millisecond)
		require.False(t, tb.Poll())
		require.True(t, tb.Searching())
	}
	require.Equal(t, "", tb.GlobalFilter())

	clock.Advance(SearchDelay)
	require.True(t, tb.Poll())
	require.Equal(t, "ann", tb.GlobalFilter())
	require.False(t, tb.Searching())
	require.False(t, tb.Poll())
	require.Equal(t, start+1, tb.Version())
}

func TestToolbar_SpacedValuesEachCommit(t *testing.T) {
	clock := newClock()
	tb := New(searchConfig(), WithClock(clock))

	var got []string
	for _, v := range []string{"bob", "ann"} {
		tb.SetSearch(v)
		clock.Advance(SearchDelay + 50*time.Millisecond)
		require.True(t, tb.Poll())
		got = append(got, tb.GlobalFilter())
	}
	require.Equal(t, []string{"bob", "ann"}, got)
}

func TestToolbar_CommitMsgRoutedByTokenAndID(t *testing.T) {
	tb := New(searchConfig())
	other := New(searchConfig())

	tb.SetSearch("first")
	stale := tb.timer.Start("first")
	tb.SetSearch("second")
	latest := CommitMsg{id: tb.id, token: tb.timer.Start("second")}

	tb, _ = tb.Update(CommitMsg{id: tb.id, token: stale})
	require.Equal(t, "", tb.GlobalFilter(), "superseded token must not commit")

	other, _ = other.Update(latest)
	require.Equal(t, "", other.GlobalFilter(), "other toolbar ignores foreign commits")

	tb, _ = tb.Update(latest)
	require.Equal(t, "second", tb.GlobalFilter())
}

func TestToolbar_TypingSchedulesCommit(t *testing.T) {
	tb := New(searchConfig())
	tb.Focus()
	require.True(t, tb.Focused())

	tb, cmd := tb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	require.Equal(t, "x", tb.SearchText())
	require.True(t, tb.Searching())

	tb.Blur()
	tb, cmd = tb.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	require.Nil(t, cmd)
	require.Equal(t, "x", tb.SearchText())
}

func TestToolbar_FilterColumnsCarrySearch(t *testing.T) {
	clock := newClock()
	cfg := searchConfig()
	cfg.FilterColumns = []string{"firstName", "lastName"}
	cfg.ExtraQuery = []table.ColumnFilter{{ColumnID: "status", Value: "open"}}
	tb := New(cfg, WithClock(clock))

	require.Equal(t, []table.ColumnFilter{{ColumnID: "status", Value: "open"}}, tb.State().ColumnFilters)

	v0 := tb.Version()
	tb.SetSearch("ann")
	clock.Advance(SearchDelay)
	require.True(t, tb.Poll())

	st := tb.State()
	require.Equal(t, "ann", st.GlobalFilter, "search stays the global filter alongside column filters")
	require.Equal(t, []table.ColumnFilter{
		{ColumnID: "firstName", Value: "ann"},
		{ColumnID: "lastName", Value: "ann"},
		{ColumnID: "status", Value: "open"},
	}, st.ColumnFilters)
	require.Greater(t, tb.Version(), v0)
}

func TestToolbar_ColumnFiltersStableUntilInputsChange(t *testing.T) {
	clock := newClock()
	cfg := searchConfig()
	cfg.FilterColumns = []string{"name"}
	tb := New(cfg, WithClock(clock))

	tb.SetSearch("ann")
	clock.Advance(SearchDelay)
	tb.Poll()
	first := tb.ColumnFilters()
	v := tb.Version()

	tb.SetSearch("anna")
	tb.SetSearch("ann")
	clock.Advance(SearchDelay)
	require.True(t, tb.Poll())
	require.Equal(t, v, tb.Version())
	require.Same(t, &first[0], &tb.ColumnFilters()[0], "unchanged derivation keeps the same slice")
}

func TestToolbar_PublishesLastValueVerbatim(t *testing.T) {
	clock := newClock()
	cfg := searchConfig()
	cfg.FilterColumns = []string{"name"}
	tb := New(cfg, WithClock(clock))

	tb.SetSearch(" ann")
	tb.SetSearch(" ann ")
	clock.Advance(SearchDelay)
	require.True(t, tb.Poll())
	require.Equal(t, " ann ", tb.GlobalFilter())
	require.Equal(t, " ann ", tb.State().GlobalFilter)
	require.Equal(t, []table.ColumnFilter{{ColumnID: "name", Value: " ann "}}, tb.ColumnFilters())

	v := tb.Version()
	tb.SetSearch("ann")
	clock.Advance(SearchDelay)
	require.True(t, tb.Poll())
	require.Greater(t, tb.Version(), v, "a different value is a new state")
}

type position struct{ Title string }

func TestToolbar_StateAppliesExactGlobalAndColumnFilters(t *testing.T) {
	cfg := searchConfig()
	cfg.SortColumn = ""
	cfg.Sort = false
	cfg.FilterColumns = []string{"title"}
	tb := New(cfg, WithClock(newClock()))

	tb.SetSearch("Engineer")
	require.True(t, tb.Flush())

	engine := table.New(table.Column[position]{
		ID:       "title",
		Accessor: func(p position) any { return p.Title },
	})
	rows := []position{{Title: "Senior Engineer"}, {Title: "Engineer"}}
	require.Equal(t, []position{{Title: "Engineer"}}, engine.Apply(rows, tb.State()))
}

func TestToolbar_SetFilterColumnsResetsSearch(t *testing.T) {
	clock := newClock()
	cfg := searchConfig()
	cfg.FilterColumns = []string{"name"}
	tb := New(cfg, WithClock(clock))

	tb.SetSearch("ann")
	clock.Advance(SearchDelay)
	tb.Poll()
	tb.SetSearch("anna")
	require.True(t, tb.Searching())

	require.True(t, tb.SetFilterColumns([]string{"title"}))
	require.Equal(t, "", tb.SearchText())
	require.Equal(t, "", tb.GlobalFilter())
	require.False(t, tb.Searching(), "pending search is discarded")
	require.Equal(t, []table.ColumnFilter{{ColumnID: "title"}}, tb.State().ColumnFilters)

	clock.Advance(SearchDelay)
	require.False(t, tb.Poll())

	require.False(t, tb.SetFilterColumns([]string{"title"}), "same set is not a reset")
}

func TestToolbar_SortDefaultsToNewest(t *testing.T) {
	cfg := searchConfig()
	cfg.FallbackSortColumn = "id"
	tb := New(cfg)

	require.Equal(t, table.SortNewest, tb.SortOption())
	require.Equal(t, []table.SortKey{
		{ColumnID: "createdAt", Desc: true},
		{ColumnID: "id", Desc: true},
	}, tb.Sorting())

	v := tb.Version()
	tb.CycleSort()
	require.Equal(t, table.SortOldest, tb.SortOption())
	require.Equal(t, []table.SortKey{
		{ColumnID: "createdAt", Desc: false},
		{ColumnID: "id", Desc: true},
	}, tb.Sorting())
	require.Equal(t, v+1, tb.Version())

	require.False(t, tb.SelectSort("Sideways"))
	require.True(t, tb.SelectSort(table.SortNewest))
	require.False(t, tb.SelectSort(table.SortNewest))
}

func TestToolbar_SortDisabled(t *testing.T) {
	tb := New(table.Config{Search: true})
	tb.CycleSort()
	require.Nil(t, tb.Sorting())
	require.Nil(t, tb.State().Sorting)
}

func TestToolbar_SearchDisabled(t *testing.T) {
	tb := New(table.Config{})
	require.Nil(t, tb.SetSearch("x"))
	require.Nil(t, tb.Focus())
	require.False(t, tb.Searching())
}

func TestToolbar_FlushAndClear(t *testing.T) {
	tb := New(searchConfig(), WithClock(newClock()))
	tb.SetSearch("eve")
	require.True(t, tb.Flush())
	require.Equal(t, "eve", tb.GlobalFilter())
	require.False(t, tb.Flush())

	tb.ClearSearch()
	require.Equal(t, "", tb.GlobalFilter())
	require.Equal(t, "", tb.SearchText())
}

func TestToolbar_WithDelayDrivesDebounce(t *testing.T) {
	clock := newClock()
	tb := New(searchConfig(), WithClock(clock), WithDelay(50*time.Millisecond))
	require.Equal(t, 50*time.Millisecond, tb.timer.Delay())

	require.NotNil(t, tb.SetSearch("eve"))
	clock.Advance(49 * time.Millisecond)
	require.False(t, tb.Poll())
	clock.Advance(time.Millisecond)
	require.True(t, tb.Poll())
	require.Equal(t, "eve", tb.GlobalFilter())
}
