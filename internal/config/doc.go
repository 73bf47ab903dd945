// Package config handles configuration loading for coven-wiki.
//
// # Overview
//
// Configuration is loaded from YAML or TOML files with environment variable
// expansion. The package fills defaults for optional values and validates the rest.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from COVEN_WIKI_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/coven/wiki.yaml
//  3. ~/.config/coven/wiki.yaml
//
// Files ending in .toml are decoded as TOML; everything else is YAML.
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	tailscale:
//	  auth_key: "${TS_AUTHKEY}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "localhost:8000"
//	  read_header_timeout: "10s"
//
// Storage:
//
//	storage:
//	  backend: "files"            # files, sqlite
//	  path: "/var/lib/coven/wiki" # entries directory, or database file for sqlite
//
// Markdown rendering:
//
//	markup:
//	  extensions: ["gfm", "footnote", "typographer"]
//	  hard_wraps: false
//	  unsafe: false               # pass raw HTML through
//
// Render cache:
//
//	cache:
//	  ttl: "10m"
//	  max_entries: 512 # -1 disables
//
// Tailscale:
//
//	tailscale:
//	  enabled: false
//	  hostname: "wiki"
//	  auth_key: "${TS_AUTHKEY}"
//	  https: true
//	  funnel: false
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Usage
//
//	cfg, err := config.Load("/etc/coven/wiki.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
package config
