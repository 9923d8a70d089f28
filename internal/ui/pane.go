package ui

import (
	"fmt"

	"github.com/five82/talentdesk/internal/state"
	"github.com/five82/talentdesk/internal/toolbar"
	"github.com/five82/talentdesk/internal/views"
)

// pane is one resource tab: its toolbar, selection and cached projection.
type pane struct {
	def      views.Definition
	bar      toolbar.Toolbar
	preset   int
	selected int

	proj   views.Projection
	key    projectionKey
	cached bool
}

// projectionKey identifies the inputs a projection was computed from.
type projectionKey struct {
	entry uint64
	bar   uint64
}

func newPane(def views.Definition, opts ...toolbar.Option) pane {
	return pane{
		def: def,
		bar: toolbar.New(def.Config(), opts...),
	}
}

// sync recomputes the projection when the resource entry or the toolbar
// state changed since the last call. The selection follows the previously
// selected row by ID.
func (p *pane) sync(snap state.Snapshot) {
	k := projectionKey{
		entry: snap.Entry(p.def.Resource()).Version,
		bar:   p.bar.Version(),
	}
	if p.cached && k == p.key {
		return
	}

	selectedID, hadSelection := p.selectedID()
	p.proj = p.def.Project(snap, p.bar.State())
	p.key = k
	p.cached = true

	if hadSelection {
		for i, r := range p.proj.Rows {
			if r.ID == selectedID {
				p.selected = i
				return
			}
		}
	}
	p.clampSelection()
}

func (p *pane) clampSelection() {
	switch {
	case len(p.proj.Rows) == 0:
		p.selected = 0
	case p.selected >= len(p.proj.Rows):
		p.selected = len(p.proj.Rows) - 1
	case p.selected < 0:
		p.selected = 0
	}
}

func (p *pane) move(delta int) {
	p.selected += delta
	p.clampSelection()
}

func (p pane) selectedID() (int64, bool) {
	if p.selected < 0 || p.selected >= len(p.proj.Rows) {
		return 0, false
	}
	return p.proj.Rows[p.selected].ID, true
}

func (p pane) presetName() string {
	presets := p.def.Presets()
	if len(presets) == 0 {
		return "All"
	}
	return presets[p.preset%len(presets)].Name
}

// cyclePreset switches the search to the next filter-column preset. A
// different column set clears the search.
func (p *pane) cyclePreset() {
	presets := p.def.Presets()
	if len(presets) < 2 {
		return
	}
	p.preset = (p.preset + 1) % len(presets)
	p.bar.SetFilterColumns(presets[p.preset].Columns)
}

func (p pane) title() string {
	if p.proj.Total == len(p.proj.Rows) {
		return fmt.Sprintf("%s (%d)", p.def.Title(), p.proj.Total)
	}
	return fmt.Sprintf("%s (%d/%d)", p.def.Title(), len(p.proj.Rows), p.proj.Total)
}
