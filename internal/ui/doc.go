// Package ui provides the Bubble Tea console for talentdesk.
//
// # Layout
//
//	TALENTDESK  12 rows  Updated 10:42:01 (now)  OFFLINE ...   header
//	 Candidates   Interviews   Positions ...                     tabs
//	/:Search  f:First name  s:Newest  x:Export  ...              command bar
//	┌──────────────── Candidates (12/40) ────────────────┐
//	│/ann            in First name   sort Newest          │     toolbar
//	│ID  First name  Last name  Position ...              │     columns
//	│⠋ Searching...                                       │     transient row
//	│1   Ann         Lee        Senior Engineer           │
//	└─────────────────────────────────────────────────────┘
//
// Each resource is a pane holding a toolbar.Toolbar and the projection of
// the cached rows through its views.Definition. Projections are recomputed
// only when the resource entry in the store or the toolbar state changes.
//
// # Data flow
//
// The app poller writes fetch results into state.Store. The model reads a
// snapshot on every tick, so the UI never blocks on the network. Search
// commits arrive as toolbar.CommitMsg after the debounce delay; the body is
// picked by table.Resolve (loading skeleton, "No results." or rows with a
// "Searching..." row on top while typing settles).
//
// # Editing
//
// On the Interviews tab, e edits the notes and score of the selected round
// in place of its row. Enter sends a PATCH through recruit.Fetcher and the
// returned round replaces the cached one.
//
// # Files
//
//   - app.go: Model, Update loop, key handling and Run
//   - pane.go: per-view toolbar, selection and projection cache
//   - grid.go: table body, skeleton and titled box rendering
//   - header.go: header, tabs and command bar
//   - edit.go: inline interview round editing
//   - export.go: xlsx export of the visible rows
//   - theme.go, style_helpers.go, strings.go, keys.go, help.go: presentation
package ui
