// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5001)
  - DatabaseURL: PostgreSQL connection string (required)
  - BasePath: Prefix for every API route (default: /api)
  - BcryptCost: bcrypt work factor for password hashes (default: bcrypt.DefaultCost)
  - MaxOpenConns: Connection pool ceiling (default: 10)

# CLI Flags

	-p               Server port
	-d               Database URL
	-base-path       API path prefix
	-bcrypt-cost     bcrypt cost
	-max-open-conns  Pool size

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	BASE_PATH         → -base-path
	BCRYPT_COST       → -bcrypt-cost
	DB_MAX_OPEN_CONNS → -max-open-conns

CLI flags take precedence over environment variables. main loads a .env file
into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if DATABASE_URL is missing, a numeric variable
does not parse, or the bcrypt cost is outside bcrypt.MinCost..bcrypt.MaxCost.
*/
package cliparse
