// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package simulation replays a YAML scenario through an election session and
// collects everything that happened into a models.Report.
package simulation
