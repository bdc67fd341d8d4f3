// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render writes results for people and for machines.

JSON encodes any value with two-space indentation:

	render.JSON(os.Stdout, report)

The text writers (Report, Regions, Plan, Lines) produce aligned,
human-readable output with thousands separators and ordinal ranks.

Every writer returns the first write error it hit.
*/
package render
