// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/panchayat/models"
)

// validate is safe for concurrent use and caches parsed tags
var validate = validator.New()

// Validator reports whether a voter satisfies a fixed set of rules
type Validator func(voter *models.Voter) models.ValidationResult

// DefaultRules are the rules applied by Session.RegisterVoter
func DefaultRules() models.ValidationRules {
	return models.ValidationRules{
		MinAge:         models.MinVotingAge,
		RequiredFields: []string{models.FieldID, models.FieldAge, models.FieldName},
	}
}

// NewValidator builds a Validator from rules. The rules are copied, so later
// changes to the caller's slice do not affect the returned function.
//
// Field names must match exactly ("id", "name", "age"); any other name is
// treated as absent. A required field also counts as missing when it holds
// its zero value, so an age of 0 is rejected as missing rather than as too
// young.
func NewValidator(rules models.ValidationRules) Validator {
	required := slices.Clone(rules.RequiredFields)
	ageTag := "gte=" + strconv.Itoa(rules.MinAge)

	return func(voter *models.Voter) models.ValidationResult {
		if voter == nil {
			return rejected("voter is missing")
		}

		fields := voterFields(voter)
		for _, name := range required {
			value, ok := fields[name]
			if !ok || validate.Var(value, "required") != nil {
				return rejected("missing required field: " + name)
			}
		}

		if validate.Var(voter.Age, ageTag) != nil {
			return rejected(fmt.Sprintf("voter must be at least %d", rules.MinAge))
		}

		return models.ValidationResult{Valid: true, Reason: "eligible"}
	}
}

func voterFields(v *models.Voter) map[string]any {
	return map[string]any{
		models.FieldID:   v.ID,
		models.FieldName: v.Name,
		models.FieldAge:  v.Age,
	}
}

func rejected(reason string) models.ValidationResult {
	return models.ValidationResult{Valid: false, Reason: reason}
}
