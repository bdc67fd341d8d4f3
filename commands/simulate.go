// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/election"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/render"
	"github.com/danielhkuo/panchayat/simulation"
)

func newSimulateCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <scenario.yaml>",
		Short: "Run an election scenario and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: withLogging(func(cmd *cobra.Command, args []string) error {
			sc, err := simulation.Load(args[0])
			if err != nil {
				return err
			}

			report, err := simulation.NewRunner(*cfg, slog.Default()).Run(sc)
			if err != nil {
				return err
			}

			return write(cmd, cfg, report, func(w io.Writer) error {
				return render.Report(w, report)
			})
		}),
	}
}

func newRegionsCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "regions <tree.yaml>",
		Short: "Sum votes across a region tree",
		Args:  cobra.ExactArgs(1),
		RunE: withLogging(func(cmd *cobra.Command, args []string) error {
			root, err := simulation.LoadRegions(args[0])
			if err != nil {
				return err
			}

			report := models.RegionReport{
				Total:   election.CountVotesInRegions(root),
				Regions: election.RegionTotals(root),
			}

			return write(cmd, cfg, report, func(w io.Writer) error {
				if err := render.Regions(w, report.Regions); err != nil {
					return err
				}
				_, err := fmt.Fprintf(w, "Total: %d\n", report.Total)
				return err
			})
		}),
	}
}
