// Package config loads dexview's TOML configuration.
//
// The file lives at ~/.config/dexview/config.toml unless a path is given.
// A missing file is not an error: Load returns Default(). Every key is
// optional and blank values fall back to their defaults.
//
//	api_base_url       = "https://pokeapi.co/api/v2"
//	request_timeout    = "10s"   # "0s" disables the client-side timeout
//	log_file           = "~/.local/share/dexview/dexview.log"
//	log_level          = "info"
//	format             = "text"  # or "html"
//	species            = ["pikachu", "ditto"]
//	drop_stale_results = true
//
// Paths starting with "~" are expanded against the user's home directory.
package config
