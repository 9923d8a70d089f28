package table

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Engine computes the visible rows of a table.
type Engine[R any] struct {
	columns []Column[R]
	byID    map[string]int
}

// New builds an engine over the given columns. Later columns with a
// duplicate ID are ignored for lookups.
func New[R any](columns ...Column[R]) *Engine[R] {
	byID := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := byID[c.ID]; !dup {
			byID[c.ID] = i
		}
	}
	return &Engine[R]{columns: columns, byID: byID}
}

// Columns returns every configured column.
func (e *Engine[R]) Columns() []Column[R] {
	return e.columns
}

// Column looks a column up by ID.
func (e *Engine[R]) Column(id string) (Column[R], bool) {
	i, ok := e.byID[id]
	if !ok {
		return Column[R]{}, false
	}
	return e.columns[i], true
}

// VisibleColumns returns the columns not hidden by visibility. Columns
// missing from the map are visible.
func (e *Engine[R]) VisibleColumns(visibility map[string]bool) []Column[R] {
	out := make([]Column[R], 0, len(e.columns))
	for _, c := range e.columns {
		if visible, ok := visibility[c.ID]; ok && !visible {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Cell renders one cell of row.
func (e *Engine[R]) Cell(row R, columnID string) string {
	c, ok := e.Column(columnID)
	if !ok {
		return ""
	}
	return Stringify(c.value(row))
}

// Apply filters and sorts rows for st. The input slice is not modified.
func (e *Engine[R]) Apply(rows []R, st State) []R {
	global := normalize(st.GlobalFilter)
	filters := e.activeFilters(st.ColumnFilters)

	var globalCols []Column[R]
	if global != "" {
		for _, c := range e.VisibleColumns(st.ColumnVisibility) {
			if !c.NoGlobalFilter {
				globalCols = append(globalCols, c)
			}
		}
	}

	out := make([]R, 0, len(rows))
	for _, row := range rows {
		if global != "" && !matchesGlobal(row, global, globalCols) {
			continue
		}
		if !matchesFilters(row, filters) {
			continue
		}
		out = append(out, row)
	}

	e.sort(out, st.Sorting)
	return out
}

type boundFilter[R any] struct {
	column Column[R]
	value  string
}

func (e *Engine[R]) activeFilters(filters []ColumnFilter) []boundFilter[R] {
	out := make([]boundFilter[R], 0, len(filters))
	for _, f := range filters {
		value := normalize(f.Value)
		if value == "" {
			continue
		}
		c, ok := e.Column(f.ColumnID)
		if !ok {
			continue
		}
		out = append(out, boundFilter[R]{column: c, value: value})
	}
	return out
}

// matchesGlobal is exact equality, not substring: "senior engineer" does
// not match "engineer".
func matchesGlobal[R any](row R, global string, columns []Column[R]) bool {
	for _, c := range columns {
		if normalize(Stringify(c.value(row))) == global {
			return true
		}
	}
	return false
}

func matchesFilters[R any](row R, filters []boundFilter[R]) bool {
	for _, f := range filters {
		cell := normalize(Stringify(f.column.value(row)))
		if !f.column.filterFn()(cell, f.value) {
			return false
		}
	}
	return true
}

func (e *Engine[R]) sort(rows []R, keys []SortKey) {
	type boundKey struct {
		column Column[R]
		desc   bool
	}
	bound := make([]boundKey, 0, len(keys))
	for _, k := range keys {
		if c, ok := e.Column(k.ColumnID); ok {
			bound = append(bound, boundKey{column: c, desc: k.Desc})
		}
	}
	if len(bound) == 0 {
		return
	}
	slices.SortStableFunc(rows, func(a, b R) int {
		for _, k := range bound {
			c := Compare(k.column.value(a), k.column.value(b))
			if c == 0 {
				continue
			}
			if k.desc {
				return -c
			}
			return c
		}
		return 0
	})
}

// Compare orders two cell values: numerically for numbers and decimals,
// chronologically for times, false before true for bools, and lexically
// otherwise. Missing values sort first.
func Compare(a, b any) int {
	a, b = unwrap(a), unwrap(b)
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if da, ok := asDecimal(a); ok {
		if db, ok := asDecimal(b); ok {
			return da.Cmp(db)
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	if ba, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ba == bb:
				return 0
			case !ba:
				return -1
			default:
				return 1
			}
		}
	}

	sa, sb := Stringify(a), Stringify(b)
	if c := cmp.Compare(strings.ToLower(sa), strings.ToLower(sb)); c != 0 {
		return c
	}
	return cmp.Compare(sa, sb)
}

func unwrap(v any) any {
	switch val := v.(type) {
	case decimal.NullDecimal:
		if !val.Valid {
			return nil
		}
		return val.Decimal
	case *string:
		if val == nil {
			return nil
		}
		return *val
	case time.Time:
		if val.IsZero() {
			return nil
		}
		return val
	}
	return v
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch val := v.(type) {
	case decimal.Decimal:
		return val, true
	case int:
		return decimal.NewFromInt(int64(val)), true
	case int64:
		return decimal.NewFromInt(val), true
	case float64:
		return decimal.NewFromFloat(val), true
	}
	return decimal.Decimal{}, false
}
