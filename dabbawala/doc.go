// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package dabbawala tracks lunchbox deliveries for a single dabbawala.
package dabbawala
