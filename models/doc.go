// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the plain data records shared by every package.

# Election Types

  - Candidate: id, name, party (fixed for a session's lifetime)
  - Voter: id, name, age (only the id is retained after registration)
  - ValidationRules: min_age, required_fields
  - ValidationResult: valid, reason
  - VoteReceipt: voter_id, candidate_id (success payload of a cast vote)
  - Result: candidate fields plus votes
  - Tally: candidate_id -> count
  - RegionNode: name, votes, sub_regions (read-only tree)
  - RegionTotal: per-region subtotal

# Scenario Types

Types decoded from scenario files and produced by a simulation run:

  - Scenario: candidates, voters, votes, regions
  - VoteRequest: voter, candidate
  - Registration, VoteOutcome: per-step outcomes
  - Report: everything a run produced

# Tiffin Types

  - PlanRequest, Plan, Addon, PlanSummary

Meal types:

	MealVeg    = "veg"
	MealNonVeg = "nonveg"
	MealJain   = "jain"

# Dabbawala Types

  - Delivery, DeliveryStats

Delivery status:

	DeliveryPending   = "pending"
	DeliveryCompleted = "completed"
*/
package models
