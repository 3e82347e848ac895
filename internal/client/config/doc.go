// Package config loads runtime configuration for the experiences CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables.
//  4. Command-line flags.
//
// Later sources override earlier ones; empty values never override.
//
// Environment
//
//	EXPERIENCES_API_URL          backend base URL (default http://localhost:3000/api)
//	EXPERIENCES_DB_PATH          SQLite file holding the session
//	EXPERIENCES_REQUEST_TIMEOUT  per-request timeout, e.g. "15s"
//	EXPERIENCES_LOG_LEVEL        debug | info | warn | error
//
// Flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   session database path
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://api.example.org/api",
//	  "request_timeout": "15s",
//	  "db_path": "session.db",
//	  "log_level": "info"
//	}
package config
