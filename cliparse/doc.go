// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" (default) or "postgres"
  - PlaceholderAddress: Address returned with each assignment
  - LogLevel: slog level name (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-address    Placeholder delivery address
	-log-level  Log level
	-env-file   Dotenv file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	PLACEHOLDER_ADDRESS → -address
	LOG_LEVEL           → -log-level

CLI flags take precedence over environment variables. The dotenv file is
loaded with github.com/joho/godotenv before the fallback and never overrides
variables that are already set. A missing file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is not provided
  - PORT is not a number
  - the database type is not sqlite or postgres
  - the log level is unknown
*/
package cliparse
