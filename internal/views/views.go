// Package views binds each recruitment resource to its table columns,
// toolbar configuration and filter presets.
package views

import (
	"fmt"
	"net/url"
	"slices"

	"github.com/five82/talentdesk/internal/recruit"
	"github.com/five82/talentdesk/internal/state"
	"github.com/five82/talentdesk/internal/table"
)

// Preset is a named filter-column set the search is also routed through.
// The search always needs an exact match in some column; a preset further
// narrows the rows to those whose preset column matches by its FilterFn.
// An empty column set applies the exact match alone.
type Preset struct {
	Name    string
	Columns []string
}

// Header describes one rendered column.
type Header struct {
	ID    string
	Title string
	Width int
}

// Row is one rendered row.
type Row struct {
	ID    int64
	Cells []string
}

// Projection is the visible table of a view at one point in time.
type Projection struct {
	Headers  []Header
	Rows     []Row
	Total    int
	Loaded   bool
	Fetching bool
}

// Loading reports whether the table should show its loading indicator.
func (p Projection) Loading() bool {
	return !p.Loaded && p.Fetching
}

// Definition is a table view over one resource.
type Definition interface {
	Resource() recruit.Resource
	Title() string
	Config() table.Config
	Presets() []Preset
	// Project filters and sorts the cached rows of the resource.
	Project(snap state.Snapshot, st table.State) Projection
	// WithExtraQuery returns a copy whose fixed filters are extra.
	WithExtraQuery(extra []table.ColumnFilter) Definition
}

type definition[R any] struct {
	resource recruit.Resource
	title    string
	cfg      table.Config
	presets  []Preset
	engine   *table.Engine[R]
	id       func(R) int64
}

func newDefinition[R any](res recruit.Resource, title string, cfg table.Config, presets []Preset, id func(R) int64, cols ...table.Column[R]) definition[R] {
	if len(presets) > 0 {
		cfg.FilterColumns = presets[0].Columns
	}
	return definition[R]{
		resource: res,
		title:    title,
		cfg:      cfg,
		presets:  presets,
		engine:   table.New(cols...),
		id:       id,
	}
}

func (d definition[R]) Resource() recruit.Resource { return d.resource }
func (d definition[R]) Title() string              { return d.title }
func (d definition[R]) Config() table.Config       { return d.cfg }
func (d definition[R]) Presets() []Preset          { return d.presets }

func (d definition[R]) WithExtraQuery(extra []table.ColumnFilter) Definition {
	d.cfg.ExtraQuery = slices.Clone(extra)
	return d
}

func (d definition[R]) Project(snap state.Snapshot, st table.State) Projection {
	res := state.Rows[R](snap, d.resource)
	cols := d.engine.VisibleColumns(st.ColumnVisibility)

	out := Projection{
		Headers:  make([]Header, 0, len(cols)),
		Total:    len(res.Data),
		Loaded:   res.Loaded,
		Fetching: res.IsFetching,
	}
	for _, c := range cols {
		out.Headers = append(out.Headers, Header{ID: c.ID, Title: c.Header, Width: c.Width})
	}

	visible := d.engine.Apply(res.Data, st)
	out.Rows = make([]Row, 0, len(visible))
	for _, r := range visible {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, table.Stringify(c.Accessor(r)))
		}
		out.Rows = append(out.Rows, Row{ID: d.id(r), Cells: cells})
	}
	return out
}

// Validate checks the configuration of every definition.
func Validate(defs []Definition) error {
	for _, d := range defs {
		if err := d.Config().Validate(); err != nil {
			return fmt.Errorf("view %s: %w", d.Resource(), err)
		}
	}
	return nil
}

// Find returns the definition of res.
func Find(defs []Definition, res recruit.Resource) (Definition, bool) {
	for _, d := range defs {
		if d.Resource() == res {
			return d, true
		}
	}
	return nil, false
}

// Query converts the fixed filters of a view into request parameters.
func Query(d Definition) url.Values {
	extra := d.Config().ExtraQuery
	if len(extra) == 0 {
		return nil
	}
	values := url.Values{}
	for _, f := range extra {
		values.Add(f.ColumnID, f.Value)
	}
	return values
}

// Queries returns the request parameters of every view keyed by resource.
func Queries(defs []Definition) map[recruit.Resource]url.Values {
	out := make(map[recruit.Resource]url.Values, len(defs))
	for _, d := range defs {
		if q := Query(d); q != nil {
			out[d.Resource()] = q
		}
	}
	return out
}
