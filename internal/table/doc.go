// Package table computes the visible rows of a generic data table.
//
// # Overview
//
// An Engine is built from typed columns and applied to rows together with a
// State (global filter, column filters, sorting, column visibility). The
// engine never mutates its input and has no rendering concerns; views ask
// Resolve which body to draw and Stringify how to draw each cell.
//
// # Filtering
//
// The global filter is an exact, case-insensitive equality match against
// every visible column that has not opted out with NoGlobalFilter. A row
// whose cell is "Senior Engineer" does not match the filter "engineer".
//
// Column filters are AND-ed and use each column's FilterFn (Equals,
// Includes or Fuzzy). Filters with an empty value, or naming an unknown
// column, are ignored.
//
// # Sorting
//
// Rows are stably sorted by the Sorting keys in order. Compare orders
// numbers and decimals numerically, times chronologically and everything
// else lexically. There is no tie-break beyond the configured keys.
//
// # Render states
//
//	loading  -> indicator only (overrides everything)
//	0 rows   -> EmptyMessage
//	rows     -> rows, optionally prefixed by a searching row
package table
