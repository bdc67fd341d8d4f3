// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line flags and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

Commands that own their flag set bind the shared flags with NewFlagSet and
call ApplyEnv once parsing is done.

# Config Fields

  - LogLevel: slog level name (default: info)
  - Format: report format, text or json (default: text)
  - Sort: result order, votes, name or party (default: votes)
  - EnvFile: optional dotenv file loaded before reading the environment

# CLI Flags

	-l, --log-level   Log level
	-f, --format      Output format
	-s, --sort        Result order
	    --env-file    Env file

# Environment Variables

Flags fall back to environment variables:

	LOG_LEVEL          → --log-level
	PANCHAYAT_FORMAT   → --format
	PANCHAYAT_SORT     → --sort
	PANCHAYAT_ENV_FILE → --env-file

CLI flags take precedence over environment variables, and variables already
set in the environment take precedence over the env file.

# Validation

ApplyEnv returns an error for an unknown format, sort key or log level, or an
env file that cannot be read.
*/
package cliparse
