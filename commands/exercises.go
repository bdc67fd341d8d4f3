// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/panchayat/cliparse"
	"github.com/danielhkuo/panchayat/mehndi"
	"github.com/danielhkuo/panchayat/models"
	"github.com/danielhkuo/panchayat/render"
	"github.com/danielhkuo/panchayat/tiffin"
)

func newTiffinCommand(cfg *cliparse.Config) *cobra.Command {
	var (
		req    models.PlanRequest
		addons []string
	)

	cmd := &cobra.Command{
		Use:   "tiffin",
		Short: "Price a tiffin plan",
		Args:  cobra.NoArgs,
		RunE: withLogging(func(cmd *cobra.Command, args []string) error {
			parsed, err := parseAddons(addons)
			if err != nil {
				return err
			}

			plan, err := tiffin.CreatePlan(req)
			if err != nil {
				return err
			}
			plan = *tiffin.ApplyAddons(&plan, parsed...)

			return write(cmd, cfg, plan, func(w io.Writer) error {
				return render.Plan(w, plan)
			})
		}),
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Customer name")
	cmd.Flags().StringVar(&req.MealType, "meal", models.MealVeg, "Meal type: veg, nonveg or jain")
	cmd.Flags().IntVar(&req.Days, "days", tiffin.DefaultDays, "Number of days")
	cmd.Flags().StringSliceVar(&addons, "addon", nil, "Add-on as name=price, repeatable")

	return cmd
}

// parseAddons turns name=price pairs into addons, keeping their order
func parseAddons(pairs []string) ([]models.Addon, error) {
	addons := make([]models.Addon, 0, len(pairs))

	for _, pair := range pairs {
		name, price, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid addon %q: want name=price", pair)
		}

		n, err := strconv.Atoi(price)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid addon price %q", price)
		}

		addons = append(addons, models.Addon{Name: name, Price: n})
	}

	return addons, nil
}

func newPatternCommand(cfg *cliparse.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "pattern <n>",
		Short: "Print a mehndi border pattern",
		Args:  cobra.ExactArgs(1),
		RunE: withLogging(func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("pattern size must be an integer: %w", err)
			}

			rows := mehndi.GeneratePattern(n)

			return write(cmd, cfg, rows, func(w io.Writer) error {
				return render.Lines(w, rows)
			})
		}),
	}
}
