// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tiffin

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/danielhkuo/panchayat/models"
)

// DefaultDays is the plan length used when a request leaves it unset
const DefaultDays = 30

var (
	ErrMissingName = errors.New("name is required")
	ErrUnknownMeal = errors.New("unknown meal type")
	ErrNoPlans     = errors.New("no plans to combine")
)

// Daily rates in rupees
var dailyRates = map[string]int{
	models.MealVeg:    80,
	models.MealNonVeg: 120,
	models.MealJain:   90,
}

// DailyRate returns the rate for a meal type
func DailyRate(mealType string) (int, bool) {
	rate, ok := dailyRates[mealType]
	return rate, ok
}

// CreatePlan prices a plan. An empty meal type means veg and a non-positive
// day count means DefaultDays.
func CreatePlan(req models.PlanRequest) (models.Plan, error) {
	if req.Name == "" {
		return models.Plan{}, ErrMissingName
	}

	mealType := lo.Ternary(req.MealType == "", models.MealVeg, req.MealType)
	days := lo.Ternary(req.Days <= 0, DefaultDays, req.Days)

	rate, ok := DailyRate(mealType)
	if !ok {
		return models.Plan{}, fmt.Errorf("%w: %s", ErrUnknownMeal, mealType)
	}

	return models.Plan{
		Name:      req.Name,
		MealType:  mealType,
		Days:      days,
		DailyRate: rate,
		TotalCost: rate * days,
	}, nil
}

// CombinePlans summarizes any number of plans. The breakdown always lists
// every known meal type.
func CombinePlans(plans ...models.Plan) (models.PlanSummary, error) {
	if len(plans) == 0 {
		return models.PlanSummary{}, ErrNoPlans
	}

	breakdown := lo.MapValues(dailyRates, func(int, string) int { return 0 })
	for _, p := range plans {
		breakdown[p.MealType]++
	}

	return models.PlanSummary{
		TotalCustomers: len(plans),
		TotalRevenue:   lo.SumBy(plans, func(p models.Plan) int { return p.TotalCost }),
		MealBreakdown:  breakdown,
	}, nil
}

// ApplyAddons returns a copy of plan with every addon price added to the
// daily rate and the total recomputed. plan itself is left unchanged.
func ApplyAddons(plan *models.Plan, addons ...models.Addon) *models.Plan {
	if plan == nil {
		return nil
	}

	next := *plan
	next.AddonNames = slices.Clone(plan.AddonNames)

	next.DailyRate += lo.SumBy(addons, func(a models.Addon) int { return a.Price })
	next.AddonNames = append(next.AddonNames, lo.Map(addons, func(a models.Addon, _ int) string { return a.Name })...)
	next.TotalCost = next.DailyRate * next.Days

	return &next
}
