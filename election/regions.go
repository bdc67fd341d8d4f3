// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"slices"

	"github.com/danielhkuo/panchayat/models"
)

// CountVotesInRegions sums the votes of a region and all of its descendants.
// A nil tree counts as 0, as does any nil sub-region. The tree is walked with
// an explicit stack so depth is bounded only by memory.
func CountVotesInRegions(root *models.RegionNode) int {
	total := 0

	stack := []*models.RegionNode{root}
	for len(stack) > 0 {
		last := len(stack) - 1
		node := stack[last]
		stack = stack[:last]

		if node == nil {
			continue
		}

		total += node.Votes
		stack = append(stack, node.SubRegions...)
	}

	return total
}

// RegionTotals lists every region in depth-first pre-order, siblings in their
// original order, with the total of its subtree. Subtree totals are folded in
// one reverse pass over the pre-order list, so the walk is linear in the
// number of regions.
func RegionTotals(root *models.RegionNode) []models.RegionTotal {
	type frame struct {
		node   *models.RegionNode
		depth  int
		parent int
	}

	var order []frame

	stack := []frame{{node: root, parent: -1}}
	for len(stack) > 0 {
		last := len(stack) - 1
		f := stack[last]
		stack = stack[:last]

		if f.node == nil {
			continue
		}

		idx := len(order)
		order = append(order, f)

		// Reversed so the first sub-region is popped first
		for _, child := range slices.Backward(f.node.SubRegions) {
			stack = append(stack, frame{node: child, depth: f.depth + 1, parent: idx})
		}
	}

	if len(order) == 0 {
		return nil
	}

	// Children always follow their parent in pre-order
	sums := make([]int, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		sums[i] += order[i].node.Votes
		if p := order[i].parent; p >= 0 {
			sums[p] += sums[i]
		}
	}

	totals := make([]models.RegionTotal, len(order))
	for i, f := range order {
		totals[i] = models.RegionTotal{
			Name:  f.node.Name,
			Depth: f.depth,
			Total: sums[i],
		}
	}

	return totals
}
