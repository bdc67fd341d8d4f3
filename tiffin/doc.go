// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tiffin prices monthly meal delivery plans.

Rates per day: veg 80, nonveg 120, jain 90.

	plan, err := tiffin.CreatePlan(models.PlanRequest{Name: "Rahul"})
	// plan.TotalCost == 2400 (veg, 30 days)

	summary, err := tiffin.CombinePlans(plan1, plan2, plan3)

	withRaita := tiffin.ApplyAddons(&plan, models.Addon{Name: "raita", Price: 15})
*/
package tiffin
