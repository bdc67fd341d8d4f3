// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"

	"github.com/danielhkuo/panchayat/models"
)

// JSON writes v as indented JSON followed by a newline
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// Report writes a simulation report as a human-readable summary
func Report(w io.Writer, r models.Report) error {
	p := &printer{w: w}

	p.printf("Session %s\n", r.SessionID)
	p.printf("Turnout: %s of %s registered voters\n", humanize.Comma(int64(r.Turnout)), humanize.Comma(int64(r.Registered)))

	for _, reg := range r.Registrations {
		if !reg.Accepted {
			p.printf("  registration refused: %s\n", reg.VoterID)
		}
	}
	for _, v := range r.Votes {
		if !v.Accepted {
			p.printf("  vote rejected: %s -> %s (%s)\n", v.VoterID, v.CandidateID, v.Reason)
		}
	}

	p.printf("\nResults\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, res := range r.Results {
		p.fprintf(tw, "  %s\t%s\t%s\t%s\n", humanize.Ordinal(i+1), res.Name, res.Party, plural(res.Votes, "vote"))
	}
	if p.err == nil {
		p.err = tw.Flush()
	}

	if r.Winner != nil {
		p.printf("\nWinner: %s (%s) with %s\n", r.Winner.Name, r.Winner.Party, plural(r.Winner.Votes, "vote"))
	} else {
		p.printf("\nNo votes cast\n")
	}

	if len(r.Regions) > 0 {
		p.printf("\n")
		p.err = errOr(p.err, Regions(w, r.Regions))
	}

	return p.err
}

// Regions writes per-region totals indented by depth
func Regions(w io.Writer, totals []models.RegionTotal) error {
	p := &printer{w: w}

	p.printf("Regions\n")
	for _, t := range totals {
		p.printf("  %s%s: %s\n", strings.Repeat("  ", t.Depth), t.Name, humanize.Comma(int64(t.Total)))
	}

	return p.err
}

// Plan writes a priced tiffin plan
func Plan(w io.Writer, plan models.Plan) error {
	p := &printer{w: w}

	p.printf("%s: %s meals for %s days\n", plan.Name, plan.MealType, humanize.Comma(int64(plan.Days)))
	if len(plan.AddonNames) > 0 {
		p.printf("Add-ons: %s\n", strings.Join(plan.AddonNames, ", "))
	}
	p.printf("Daily rate: ₹%s\n", humanize.Comma(int64(plan.DailyRate)))
	p.printf("Total: ₹%s\n", humanize.Comma(int64(plan.TotalCost)))

	return p.err
}

// Lines writes each string on its own line
func Lines(w io.Writer, lines []string) error {
	p := &printer{w: w}
	for _, line := range lines {
		p.printf("%s\n", line)
	}
	return p.err
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return humanize.Comma(int64(n)) + " " + unit + "s"
}

// printer remembers the first write error so callers check once at the end
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	p.fprintf(p.w, format, args...)
}

func (p *printer) fprintf(w io.Writer, format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(w, format, args...)
}

func errOr(first, second error) error {
	if first != nil {
		return first
	}
	return second
}
