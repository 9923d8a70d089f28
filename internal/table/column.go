package table

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/shopspring/decimal"
)

// FilterFn decides whether a stringified cell satisfies a column filter
// value. Both arguments arrive lower-cased and trimmed.
type FilterFn func(cell, value string) bool

// Equals matches when the cell equals the filter value.
func Equals(cell, value string) bool {
	return cell == value
}

// Includes matches when the cell contains the filter value.
func Includes(cell, value string) bool {
	return strings.Contains(cell, value)
}

// Fuzzy matches when the filter value's characters appear in order in the cell.
func Fuzzy(cell, value string) bool {
	return fuzzy.MatchNormalizedFold(value, cell)
}

// Column describes one column of rows of type R.
type Column[R any] struct {
	ID       string
	Header   string
	Accessor func(R) any

	// NoGlobalFilter opts the column out of global filter matching.
	NoGlobalFilter bool

	// FilterFn is used for column filters; nil means Includes.
	FilterFn FilterFn

	// Width is a rendering hint in terminal cells; zero lets the view decide.
	Width int
}

func (c Column[R]) value(row R) any {
	if c.Accessor == nil {
		return nil
	}
	return c.Accessor(row)
}

func (c Column[R]) filterFn() FilterFn {
	if c.FilterFn == nil {
		return Includes
	}
	return c.FilterFn
}

// Stringify renders a cell value the way it is displayed and matched.
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case decimal.Decimal:
		return val.String()
	case decimal.NullDecimal:
		if !val.Valid {
			return ""
		}
		return val.Decimal.String()
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02 15:04")
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
