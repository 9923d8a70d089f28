// Package toolbar provides the search and sort controls that drive a table.
package toolbar

import (
	"slices"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/talentdesk/internal/debounce"
	"github.com/five82/talentdesk/internal/table"
)

// SearchDelay is how long typing must pause before the search is applied.
const SearchDelay = 600 * time.Millisecond

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// CommitMsg asks the toolbar with the matching id to apply a pending search.
type CommitMsg struct {
	id    int
	token debounce.Token
}

// Option customises a Toolbar.
type Option func(*Toolbar)

// WithClock replaces the wall clock used for debouncing.
func WithClock(c debounce.Clock) Option {
	return func(t *Toolbar) {
		t.clock = c
	}
}

// WithDelay overrides SearchDelay.
func WithDelay(d time.Duration) Option {
	return func(t *Toolbar) {
		t.delay = d
	}
}

// Toolbar owns the search field and sort selection of one table view and
// publishes them as a table.State.
type Toolbar struct {
	id    int
	cfg   table.Config
	clock debounce.Clock
	delay time.Duration

	input textinput.Model
	timer debounce.Timer

	global        string
	filterColumns []string
	columnFilters []table.ColumnFilter
	sortIdx       int
	sorting       []table.SortKey

	// version changes only when State would.
	version uint64
}

// New builds a toolbar for cfg. The first sort option is selected.
func New(cfg table.Config, opts ...Option) Toolbar {
	t := Toolbar{
		id:    nextID(),
		cfg:   cfg,
		delay: SearchDelay,
	}
	for _, opt := range opts {
		opt(&t)
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "Search..."
	ti.CharLimit = 120
	t.input = ti

	t.timer = debounce.New(t.delay, t.clock)
	t.filterColumns = slices.Clone(cfg.FilterColumns)
	t.columnFilters = table.DeriveColumnFilters("", t.filterColumns, cfg.ExtraQuery)
	t.sorting = t.buildSorting()
	return t
}

// Config returns the configuration the toolbar was built with.
func (t Toolbar) Config() table.Config {
	return t.cfg
}

// Focus gives the search field keyboard focus.
func (t *Toolbar) Focus() tea.Cmd {
	if !t.cfg.Search {
		return nil
	}
	return t.input.Focus()
}

// Blur removes keyboard focus from the search field.
func (t *Toolbar) Blur() {
	t.input.Blur()
}

// Focused reports whether the search field has focus.
func (t Toolbar) Focused() bool {
	return t.input.Focused()
}

// Update handles key input while focused and this toolbar's commit messages.
func (t Toolbar) Update(msg tea.Msg) (Toolbar, tea.Cmd) {
	switch msg := msg.(type) {
	case CommitMsg:
		if msg.id != t.id {
			return t, nil
		}
		if v, ok := t.timer.Fire(msg.token); ok {
			t.publish(v)
		}
		return t, nil

	case tea.KeyMsg:
		if !t.input.Focused() {
			return t, nil
		}
		before := t.input.Value()
		var cmd tea.Cmd
		t.input, cmd = t.input.Update(msg)
		if t.input.Value() == before {
			return t, cmd
		}
		return t, tea.Batch(cmd, t.schedule(t.input.Value()))
	}
	return t, nil
}

// SetSearch replaces the search text as if typed and schedules its commit.
func (t *Toolbar) SetSearch(text string) tea.Cmd {
	if !t.cfg.Search {
		return nil
	}
	t.input.SetValue(text)
	return t.schedule(text)
}

func (t *Toolbar) schedule(text string) tea.Cmd {
	tok := t.timer.Start(text)
	id := t.id
	return tea.Tick(t.timer.Delay(), func(time.Time) tea.Msg {
		return CommitMsg{id: id, token: tok}
	})
}

// Poll applies a pending search whose delay has elapsed on the toolbar's
// clock. It reports whether a search was applied.
func (t *Toolbar) Poll() bool {
	v, ok := t.timer.Due()
	if !ok {
		return false
	}
	t.publish(v)
	return true
}

// Flush applies a pending search immediately.
func (t *Toolbar) Flush() bool {
	if !t.timer.Pending() {
		return false
	}
	v := t.input.Value()
	t.timer.Stop()
	t.publish(v)
	return true
}

// ClearSearch empties the search field and the active filter.
func (t *Toolbar) ClearSearch() {
	t.timer.Stop()
	t.input.SetValue("")
	t.publish("")
}

func (t *Toolbar) publish(v string) {
	if v != t.global {
		t.version++
	}
	t.global = v
	t.recompute()
}

func (t *Toolbar) recompute() {
	next := table.DeriveColumnFilters(t.global, t.filterColumns, t.cfg.ExtraQuery)
	if table.EqualFilters(next, t.columnFilters) {
		return
	}
	t.columnFilters = next
	t.version++
}

// Searching reports whether typed text is waiting for the debounce window.
func (t Toolbar) Searching() bool {
	return t.timer.Pending()
}

// SearchText returns the raw contents of the search field.
func (t Toolbar) SearchText() string {
	return t.input.Value()
}

// GlobalFilter returns the applied search value.
func (t Toolbar) GlobalFilter() string {
	return t.global
}

// FilterColumns returns the active filter-column set.
func (t Toolbar) FilterColumns() []string {
	return t.filterColumns
}

// ColumnFilters returns the filters derived from the applied search. The
// same slice is returned until the derivation changes.
func (t Toolbar) ColumnFilters() []table.ColumnFilter {
	return t.columnFilters
}

// SetFilterColumns switches the filter context. A different column set
// discards the search text, the applied filter and any pending search.
func (t *Toolbar) SetFilterColumns(cols []string) bool {
	if slices.Equal(cols, t.filterColumns) {
		return false
	}
	t.filterColumns = slices.Clone(cols)
	t.timer.Stop()
	t.input.SetValue("")
	t.global = ""
	t.recompute()
	t.version++
	return true
}

// SortOption returns the selected sort choice.
func (t Toolbar) SortOption() string {
	opts := t.cfg.SortOptions()
	if t.sortIdx < 0 || t.sortIdx >= len(opts) {
		return opts[0]
	}
	return opts[t.sortIdx]
}

// SelectSort picks a sort choice by label. Unknown labels are ignored.
func (t *Toolbar) SelectSort(option string) bool {
	if !t.cfg.Sort {
		return false
	}
	i := slices.Index(t.cfg.SortOptions(), option)
	if i < 0 || i == t.sortIdx {
		return false
	}
	t.sortIdx = i
	t.resort()
	return true
}

// CycleSort advances to the next sort choice.
func (t *Toolbar) CycleSort() {
	if !t.cfg.Sort {
		return
	}
	t.sortIdx = (t.sortIdx + 1) % len(t.cfg.SortOptions())
	t.resort()
}

func (t *Toolbar) resort() {
	next := t.buildSorting()
	if table.EqualSorting(next, t.sorting) {
		return
	}
	t.sorting = next
	t.version++
}

func (t Toolbar) buildSorting() []table.SortKey {
	if !t.cfg.Sort {
		return nil
	}
	return table.BuildSorting(t.SortOption(), t.cfg.SortColumn, t.cfg.FallbackSortColumn)
}

// Sorting returns the published sort keys.
func (t Toolbar) Sorting() []table.SortKey {
	return t.sorting
}

// Version identifies the published state; it changes only when State would.
func (t Toolbar) Version() uint64 {
	return t.version
}

// State returns the table state to apply. The search is always the global
// filter; with filter columns configured it is also carried by the derived
// column filters, and the engine requires both to match.
func (t Toolbar) State() table.State {
	return table.State{
		GlobalFilter:     t.global,
		ColumnFilters:    t.columnFilters,
		Sorting:          t.sorting,
		ColumnVisibility: t.cfg.ColumnVisibility,
	}
}

// InputView renders the search field.
func (t Toolbar) InputView() string {
	return t.input.View()
}
