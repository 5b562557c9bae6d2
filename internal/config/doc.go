// Package config loads backyard's TOML configuration.
//
// # Resolution
//
// Load follows this order:
//
//  1. Start from Default (Los Angeles coordinates, the public eBird API base)
//  2. Read the file at the given path, or ~/.config/backyard/config.toml
//  3. A missing file keeps the defaults; blank values in the file are ignored
//  4. Apply BACKYARD_* environment overrides
//
// # Example
//
//	api_token = "..."
//	country_prefix = "US"
//	request_timeout = "15s"
//	requests_per_minute = 60
//	log_file = "~/.local/state/backyard/debug.log"
//
//	[sightings]
//	lat = 34.08
//	lng = -118.20
//	place_name = "Los Angeles, CA"
//
//	[display]
//	locale = "en-US"
//	timezone = "America/Los_Angeles"
//
//	[email]
//	service_id = "service_x"
//	template_id = "template_y"
//	public_key = "..."
//	recipient = "birds@example.com"
//
// The API token is never compiled into the binary; without one the eBird API
// answers 403 and the views show that error.
package config
