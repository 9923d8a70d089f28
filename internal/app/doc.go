// Package app wires configuration, logging, the API client, the background
// poller and the console together.
//
// # Startup
//
//  1. config.Load reads ~/.config/talentdesk/config.toml (defaults when
//     missing) and command-line overrides are merged on top
//  2. logger.New opens the zap file logger; the console owns stdout
//  3. recruit.NewClient builds the HTTP client
//  4. views.All is validated and its fixed filters become poll queries
//  5. StartPoller begins refreshing every resource into a state.Store
//  6. ui.Run blocks until the user quits or the context is cancelled
//
// No refresh happens before the console starts, so the first frame shows
// each table's loading state.
//
// # Polling
//
// Each refresh fetches all resources with bounded concurrency and records
// every outcome in the store. A failed fetch keeps the last good rows. The
// wait between refreshes doubles with the worst failure streak of any
// resource, capped at 30 seconds.
//
// # Headless export
//
// Export runs one fetch and settles a toolbar the way the console would
// (preset, sort, search applied without the debounce delay) before writing
// the visible rows with the export package.
package app
