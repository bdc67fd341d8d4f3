// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the panchayat command.

Panchayat simulates a small village election: voters are checked against
eligibility rules and registered, each registered voter may cast one ballot
for a known candidate, and the tally is ranked into results with a winner.
Vote counts held in a nested region tree can be summed as well.

The same binary carries three small sibling tools: a tiffin plan pricer, a
dabbawala delivery tracker (library only) and a mehndi pattern printer.

# Running

	go run . simulate scenario.yaml
	go run . --format json --sort name simulate scenario.yaml
	go run . regions district.yaml
	go run . tiffin --name Asha --meal jain --days 10 --addon raita=15
	go run . pattern 4

# Configuration

Flags take precedence over environment variables:

  - LOG_LEVEL (-l): debug, info, warn or error (default: info)
  - PANCHAYAT_FORMAT (-f): text or json (default: text)
  - PANCHAYAT_SORT (-s): votes, name or party (default: votes)
  - PANCHAYAT_ENV_FILE (--env-file): dotenv file to load first

# Architecture

  - election: voter validation, sessions, tallies and region sums
  - simulation: scenario loading and replay
  - render: text and JSON output
  - commands: cobra command tree and logging setup
  - models: shared types
  - cliparse: configuration parsing
  - tiffin, dabbawala, mehndi: sibling exercises

See package documentation for each component.
*/
package main
