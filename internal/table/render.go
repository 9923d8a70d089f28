package table

// EmptyMessage is shown when a settled table has no rows.
const EmptyMessage = "No results."

// RenderState is the body a table shows.
type RenderState int

const (
	// RenderRows shows the result rows.
	RenderRows RenderState = iota
	// RenderLoading replaces the whole row area with a loading indicator.
	RenderLoading
	// RenderEmpty shows EmptyMessage.
	RenderEmpty
)

func (s RenderState) String() string {
	switch s {
	case RenderLoading:
		return "loading"
	case RenderEmpty:
		return "empty"
	default:
		return "rows"
	}
}

// Body is the resolved presentation of a table body.
type Body struct {
	State RenderState
	// Searching prefixes a transient progress row above the rows.
	Searching bool
}

// Resolve picks the body for a table. Loading overrides everything; zero
// rows render the empty message; otherwise rows render, prefixed by the
// searching row while a search is being coalesced.
func Resolve(loading, searching bool, rows int) Body {
	switch {
	case loading:
		return Body{State: RenderLoading}
	case rows == 0:
		return Body{State: RenderEmpty}
	default:
		return Body{State: RenderRows, Searching: searching}
	}
}

// Result is what a data source hands a table. Loaded is false until the
// first successful fetch; an unloaded result is "no rows yet", not an error.
type Result[R any] struct {
	Data       []R
	Loaded     bool
	IsFetching bool
}

// Loading reports whether the table should show its loading indicator:
// nothing has arrived yet and a fetch is in flight.
func (r Result[R]) Loading() bool {
	return !r.Loaded && r.IsFetching
}
