// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"maps"

	"github.com/danielhkuo/panchayat/models"
)

// TallyPure returns a new tally with candidateID incremented by one. current is
// never modified and may be nil.
func TallyPure(current models.Tally, candidateID string) models.Tally {
	next := make(models.Tally, len(current)+1)
	maps.Copy(next, current)
	next[candidateID]++
	return next
}
