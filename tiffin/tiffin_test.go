// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tiffin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/panchayat/models"
)

func TestCreatePlan(t *testing.T) {
	tests := []struct {
		name    string
		req     models.PlanRequest
		want    models.Plan
		wantErr error
	}{
		{
			name: "defaults",
			req:  models.PlanRequest{Name: "Rahul"},
			want: models.Plan{Name: "Rahul", MealType: "veg", Days: 30, DailyRate: 80, TotalCost: 2400},
		},
		{
			name: "nonveg for a week",
			req:  models.PlanRequest{Name: "Priya", MealType: "nonveg", Days: 7},
			want: models.Plan{Name: "Priya", MealType: "nonveg", Days: 7, DailyRate: 120, TotalCost: 840},
		},
		{
			name: "jain",
			req:  models.PlanRequest{Name: "Amit", MealType: "jain", Days: 10},
			want: models.Plan{Name: "Amit", MealType: "jain", Days: 10, DailyRate: 90, TotalCost: 900},
		},
		{
			name: "negative days fall back to default",
			req:  models.PlanRequest{Name: "Kiran", MealType: "veg", Days: -3},
			want: models.Plan{Name: "Kiran", MealType: "veg", Days: 30, DailyRate: 80, TotalCost: 2400},
		},
		{
			name:    "missing name",
			req:     models.PlanRequest{MealType: "veg"},
			wantErr: ErrMissingName,
		},
		{
			name:    "unknown meal",
			req:     models.PlanRequest{Name: "Rahul", MealType: "vegan"},
			wantErr: ErrUnknownMeal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CreatePlan(tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombinePlans(t *testing.T) {
	rahul, _ := CreatePlan(models.PlanRequest{Name: "Rahul"})
	priya, _ := CreatePlan(models.PlanRequest{Name: "Priya", MealType: "nonveg"})
	amit, _ := CreatePlan(models.PlanRequest{Name: "Amit"})

	summary, err := CombinePlans(rahul, priya, amit)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.TotalCustomers)
	assert.Equal(t, 2400+3600+2400, summary.TotalRevenue)
	assert.Equal(t, map[string]int{"veg": 2, "nonveg": 1, "jain": 0}, summary.MealBreakdown)

	_, err = CombinePlans()
	assert.ErrorIs(t, err, ErrNoPlans)
}

func TestApplyAddons(t *testing.T) {
	plan, err := CreatePlan(models.PlanRequest{Name: "Rahul"})
	require.NoError(t, err)
	original := plan

	got := ApplyAddons(&plan, models.Addon{Name: "raita", Price: 15}, models.Addon{Name: "papad", Price: 5})
	require.NotNil(t, got)

	assert.Equal(t, 100, got.DailyRate)
	assert.Equal(t, 3000, got.TotalCost)
	assert.Equal(t, []string{"raita", "papad"}, got.AddonNames)
	assert.Equal(t, original, plan, "original plan must not change")

	again := ApplyAddons(got, models.Addon{Name: "sweet", Price: 20})
	assert.Equal(t, []string{"raita", "papad", "sweet"}, again.AddonNames)
	assert.Equal(t, []string{"raita", "papad"}, got.AddonNames)

	noAddons := ApplyAddons(&plan)
	assert.Equal(t, plan.TotalCost, noAddons.TotalCost)
	assert.Empty(t, noAddons.AddonNames)

	assert.Nil(t, ApplyAddons(nil, models.Addon{Name: "raita", Price: 15}))
}
