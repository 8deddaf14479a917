// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the postcrossing API server.

Users register, ask for the address of the member most due a postcard,
and confirm postcards they received. Every user's sent and received
counts are kept in step with the postcards table.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postcrossing.db go run .

Or with flags:

	go run . -p 3000 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PLACEHOLDER_ADDRESS (-address): Address returned with every assignment
  - LOG_LEVEL (-log-level): debug, info, warn or error (default: info)

# Architecture

  - handlers: HTTP request handlers (users, postcards)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request metrics, JSON helpers
  - exchange: Registration, address assignment and receipt confirmation
  - selector: Due-score ranking of recipients
  - ledger: User and postcard storage on database/sql
  - metrics: Prometheus collectors
  - models: Request/response types
  - db: Connection setup and schema creation
  - cliparse: Configuration parsing
  - tabsort: Postcard tab ordering, with cmd/tabsort as its CLI

See package documentation for each component.
*/
package main
