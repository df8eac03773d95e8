package services

import (
	"fmt"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/model/notification"
)

// DefaultHotspotThreshold is the fixed number of concurrent demands in one
// category that qualifies it as a hotspot. It is configuration, not adaptive.
const DefaultHotspotThreshold = 5

// DemandAggregator is a domain service that evaluates the full current
// demand snapshot: per-category counts, per-demand urgency, and hotspot
// candidates. It is stateless; every call works on the snapshot it is given
// (no incremental diffing).
//
// Key responsibilities:
//   - Classifying demands by urgency
//   - Detecting category-level concentration (hotspots)
//   - Drafting the alert records those findings translate into
//
// Example usage:
//
//	aggregator := services.NewDemandAggregator()
//	urgent := aggregator.DetectUrgent(snapshot)
//	hotspots := aggregator.DetectHotspots(snapshot, services.DefaultHotspotThreshold)
type DemandAggregator struct{}

// NewDemandAggregator creates a DemandAggregator.
func NewDemandAggregator() DemandAggregator {
	return DemandAggregator{}
}

// CountByCategory tallies the snapshot per category.
func (DemandAggregator) CountByCategory(demands []demand.Demand) map[demand.Category]int {
	counts := make(map[demand.Category]int, len(demands))
	for _, d := range demands {
		counts[d.Category]++
	}
	return counts
}

// DetectUrgent returns the demands classified as high urgency, preserving
// snapshot order.
func (DemandAggregator) DetectUrgent(demands []demand.Demand) []demand.Demand {
	urgent := make([]demand.Demand, 0)
	for _, d := range demands {
		if d.Urgency() == demand.High {
			urgent = append(urgent, d)
		}
	}
	return urgent
}

// DetectHotspots returns the categories whose member count meets or exceeds
// threshold, with their counts. A non-positive threshold falls back to
// DefaultHotspotThreshold.
func (a DemandAggregator) DetectHotspots(demands []demand.Demand, threshold int) map[demand.Category]int {
	if threshold <= 0 {
		threshold = DefaultHotspotThreshold
	}

	hotspots := make(map[demand.Category]int)
	for category, count := range a.CountByCategory(demands) {
		if count >= threshold {
			hotspots[category] = count
		}
	}
	return hotspots
}

// UrgentNotification drafts the alert for one high-urgency demand. Urgent
// alerts are high priority and persist until the user dismisses them; the
// demand's coordinates, when known, are rendered at display precision.
func (DemandAggregator) UrgentNotification(d demand.Demand) notification.Notification {
	n := notification.New(
		notification.TypeUrgent,
		notification.PriorityHigh,
		fmt.Sprintf("Urgent: %s needed", d.Category),
		fmt.Sprintf("%d x %s requested, expires in %.0f hours", d.Quantity, d.Category, d.ExpiresInHours),
	)
	n.AutoRemove = false
	if d.Location != nil {
		n.Location = d.Location.String()
	}
	return n
}

// HotspotNotification drafts the alert for one hotspot category.
func (DemandAggregator) HotspotNotification(category demand.Category, count int) notification.Notification {
	return notification.New(
		notification.TypeInfo,
		notification.PriorityMedium,
		"Demand Hotspot Alert",
		fmt.Sprintf("%d %s demands detected in your area", count, category),
	)
}
