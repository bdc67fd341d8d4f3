// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package commands wires the panchayat command tree.

NewRoot returns a cobra root with four subcommands:

	simulate <scenario.yaml>   run an election scenario
	regions <tree.yaml>        sum votes across a region tree
	tiffin --name N [--meal M] [--days D] [--addon name=price ...]
	pattern <n>                print a mehndi border pattern

# Shared Flags

The root carries the flags from cliparse.NewFlagSet:

  - --log-level (-l): debug, info, warn or error
  - --format (-f): text or json
  - --sort (-s): votes, name or party
  - --env-file: dotenv file loaded before environment fallbacks

They are resolved in PersistentPreRunE, which then installs the default
slog logger on the command's stderr. Terminals get the text handler and
everything else gets JSON.

# Output

Every subcommand writes to cmd.OutOrStdout, either through the render
package or as indented JSON when --format json is set. Each RunE is wrapped
by withLogging, which records start and completion at debug level.
*/
package commands
