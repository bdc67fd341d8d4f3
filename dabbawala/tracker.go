// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dabbawala

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/danielhkuo/panchayat/models"
)

// Tracker records one dabbawala's deliveries. Its state is only reachable
// through its methods and trackers never share state.
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	name       string
	area       string
	nextID     int
	deliveries []*models.Delivery
}

func New(name, area string) *Tracker {
	return &Tracker{name: name, area: area}
}

// AddDelivery records a pending delivery and returns its id, starting at 1.
// It returns -1 if either endpoint is empty.
func (t *Tracker) AddDelivery(from, to string) int {
	if from == "" || to == "" {
		return -1
	}

	t.nextID++
	t.deliveries = append(t.deliveries, &models.Delivery{
		ID:     t.nextID,
		From:   from,
		To:     to,
		Status: models.DeliveryPending,
	})

	return t.nextID
}

// CompleteDelivery marks a pending delivery completed. It returns false if the
// id is unknown or the delivery was already completed.
func (t *Tracker) CompleteDelivery(id int) bool {
	d, ok := lo.Find(t.deliveries, func(d *models.Delivery) bool { return d.ID == id })
	if !ok || d.Status == models.DeliveryCompleted {
		return false
	}

	d.Status = models.DeliveryCompleted
	return true
}

// ActiveDeliveries returns copies of the pending deliveries in id order
func (t *Tracker) ActiveDeliveries() []models.Delivery {
	return lo.FilterMap(t.deliveries, func(d *models.Delivery, _ int) (models.Delivery, bool) {
		return *d, d.Status == models.DeliveryPending
	})
}

func (t *Tracker) Stats() models.DeliveryStats {
	total := len(t.deliveries)
	completed := lo.CountBy(t.deliveries, func(d *models.Delivery) bool {
		return d.Status == models.DeliveryCompleted
	})

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}

	return models.DeliveryStats{
		Name:        t.name,
		Area:        t.area,
		Total:       total,
		Completed:   completed,
		Pending:     total - completed,
		SuccessRate: fmt.Sprintf("%.2f%%", rate),
	}
}

// Reset drops every delivery and restarts ids at 1
func (t *Tracker) Reset() bool {
	t.deliveries = nil
	t.nextID = 0
	return true
}
