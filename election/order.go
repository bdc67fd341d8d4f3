// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/danielhkuo/panchayat/models"
)

// Sort keys accepted by OrderFor
const (
	SortVotes = "votes"
	SortName  = "name"
	SortParty = "party"
)

// ByVotes orders results by votes, highest first
func ByVotes(a, b models.Result) int {
	return cmp.Compare(b.Votes, a.Votes)
}

func ByName(a, b models.Result) int {
	return strings.Compare(a.Name, b.Name)
}

func ByParty(a, b models.Result) int {
	return strings.Compare(a.Party, b.Party)
}

// OrderFor maps a sort key to its comparison function
func OrderFor(key string) (func(a, b models.Result) int, error) {
	switch key {
	case "", SortVotes:
		return ByVotes, nil
	case SortName:
		return ByName, nil
	case SortParty:
		return ByParty, nil
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
}
