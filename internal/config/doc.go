// Package config handles loading and parsing the console configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/talentdesk/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Command-line flags and TALENTDESK_* environment variables are layered on
// top by the cobra commands through Merge.
//
// # Default Values
//
//   - Config file: ~/.config/talentdesk/config.toml
//   - API endpoint: 127.0.0.1:8080
//   - Log file: ~/.local/state/talentdesk/talentdesk.log
//   - Poll interval: 5 seconds
//
// # TOML Format
//
//	api_url = "https://hr.example.com"
//	api_token = "..."
//	log_path = "~/.local/state/talentdesk/talentdesk.log"
//	poll_seconds = 5
//
// All fields are optional. Tilde expansion is performed on paths. A parse
// error is returned to the caller and is fatal at startup.
package config
