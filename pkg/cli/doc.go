// Package cli implements the command-line interface for the meal catalog.
//
// # Overview
//
// The meals CLI queries a meal catalog directly, without a running server,
// and can also start the HTTP API. Every command loads the same catalog
// sources the server accepts.
//
// # Commands
//
// serve - Run the HTTP API:
//
//	meals serve [--catalog SOURCE]
//
// get - Fetch one meal by id:
//
//	meals get --id 3 [--format yaml|json|table]
//
// search - Search meal labels:
//
//	meals search --keyword chicken [--max-results 5]
//
// Without --keyword the first --max-results meals are returned. Keywords
// shorter than 3 characters and negative limits are rejected.
//
// list - Print the whole catalog:
//
//	meals list --format table
//
// # Global Flags
//
//	--catalog, -c    Catalog source: file path, HTTP/HTTPS URL or cm://namespace/name
//	--log-level      Logging verbosity (debug, info, warn, error)
//	--output, -o     Output file path (default: stdout)
//	--format, -t     Output format: yaml, json, table (default: yaml)
//
// An empty catalog source uses the catalog compiled into the binary.
//
// # Environment Variables
//
//	MEALS_CATALOG  Default for --catalog
//	LOG_LEVEL      Default for --log-level
//
// # Exit Codes
//
//	0  Success
//	1  Invalid arguments, unknown meal or catalog failure
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/meal-catalog/pkg/cli.version=1.0.0'"
package cli
