package table

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
)

// ColumnFilter constrains one column.
type ColumnFilter struct {
	ColumnID string `validate:"required"`
	Value    string
}

// SortKey orders rows by one column.
type SortKey struct {
	ColumnID string
	Desc     bool
}

// State is the view state a table is computed from.
type State struct {
	GlobalFilter     string
	ColumnFilters    []ColumnFilter
	Sorting          []SortKey
	ColumnVisibility map[string]bool
}

// Sort choices offered when a view supplies no SelectOptions.
const (
	SortNewest = "Newest"
	SortOldest = "Oldest"
)

// DefaultSortOptions is the option list used when Config.SelectOptions is empty.
var DefaultSortOptions = []string{SortNewest, SortOldest}

// Config toggles the toolbar behaviours of one table view.
type Config struct {
	Search             bool
	Sort               bool
	FilterColumns      []string       `validate:"dive,required"`
	ExtraQuery         []ColumnFilter `validate:"dive"`
	SortColumn         string         `validate:"required_if=Sort true"`
	FallbackSortColumn string
	ColumnVisibility   map[string]bool
	SelectOptions      []string `validate:"dive,required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports configuration mistakes such as enabling sort without a column.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid table config: %w", err)
	}
	return nil
}

// SortOptions returns the selectable sort choices.
func (c Config) SortOptions() []string {
	if len(c.SelectOptions) == 0 {
		return DefaultSortOptions
	}
	return c.SelectOptions
}

// DeriveColumnFilters computes the column filters for a global filter: one
// filter per filter column carrying the global value, followed by the extra
// query pairs. The result depends only on its inputs.
func DeriveColumnFilters(global string, filterColumns []string, extra []ColumnFilter) []ColumnFilter {
	out := make([]ColumnFilter, 0, len(filterColumns)+len(extra))
	for _, col := range filterColumns {
		out = append(out, ColumnFilter{ColumnID: col, Value: global})
	}
	return append(out, extra...)
}

// BuildSorting returns the sort keys for a sort choice: the primary column,
// descending only for Newest, then the fallback column always descending.
func BuildSorting(option, sortColumn, fallbackColumn string) []SortKey {
	if sortColumn == "" {
		return nil
	}
	keys := []SortKey{{ColumnID: sortColumn, Desc: option == SortNewest}}
	if fallbackColumn != "" {
		keys = append(keys, SortKey{ColumnID: fallbackColumn, Desc: true})
	}
	return keys
}

// EqualFilters reports whether two filter lists are structurally identical.
func EqualFilters(a, b []ColumnFilter) bool {
	return slices.Equal(a, b)
}

// EqualSorting reports whether two sort key lists are structurally identical.
func EqualSorting(a, b []SortKey) bool {
	return slices.Equal(a, b)
}
