// Package state provides thread-safe state management for the console.
//
// # Overview
//
// The store shares the latest rows of every recruitment resource between
// the background poller and the UI. It is the only place where polling
// updates meet rendering.
//
//	Producer (Poller):             Consumer (UI):
//	┌─────────────────────┐        ┌──────────────────┐
//	│ MarkFetching(res)   │        │                  │
//	│ recruit.Fetch(res)  │        │                  │
//	│ Update(res, rows)   │───────→│ Snapshot()       │
//	│ repeat per resource │(mutex) │ Rows[R](snap,res)│
//	└─────────────────────┘        └──────────────────┘
//
// # Entries
//
// Each resource has an Entry holding the typed slice from recruit.Fetch and
// the flags the table needs:
//
//   - Loaded is false until the first successful fetch. Undefined data is
//     rendered as "no rows yet", never as an error.
//   - Fetching is true while a request is in flight.
//   - Version increases on every change so views can skip re-projection.
//
// Rows converts an entry into a table.Result. Loading is reported only for
// the first fetch; a refetch keeps showing the previous rows.
//
// # Update Semantics
//
//	store.Update(res, rows, nil)
//	→ entry.Data = rows, entry.Loaded = true
//	→ entry.LastError = nil, failures reset
//
//	store.Update(res, nil, err)
//	→ entry.Data kept
//	→ entry.LastError = err, failures incremented
//
// Snapshot.ConsecutiveFailures is the worst streak across resources and
// IsOffline reports two or more.
//
// # Immutability
//
// Snapshot copies the entries map and re-wraps errors. Stored slices are
// never modified in place; ApplyRound swaps in a patched copy. Rows clones
// the slice it returns.
package state
