package commands

import (
	"context"
	"sync"

	"hatbazar/internal/core/domain/model/demand"
	"hatbazar/internal/core/domain/services"
	"hatbazar/internal/core/ports"
)

// RefreshDemandsCommandHandler pulls the full demand snapshot, evaluates it
// and pushes the resulting alerts.
//
// The handler is stateful so consecutive refreshes do not re-alert: an
// urgent demand alerts once per demand id, a hotspot alerts once per
// category and re-arms when the category's count falls back below the
// threshold. The handler must therefore be created once and shared, not
// rebuilt per refresh.
type RefreshDemandsCommandHandler struct {
	source     ports.DemandSource
	aggregator services.DemandAggregator
	notifier   Notifier
	threshold  int

	mu            sync.Mutex
	notifiedIDs   map[string]struct{}
	hotCategories map[demand.Category]struct{}
}

// NewRefreshDemandsCommandHandler creates the stateful refresh handler.
// A non-positive threshold falls back to services.DefaultHotspotThreshold.
func NewRefreshDemandsCommandHandler(
	source ports.DemandSource,
	aggregator services.DemandAggregator,
	notifier Notifier,
	threshold int,
) *RefreshDemandsCommandHandler {
	if threshold <= 0 {
		threshold = services.DefaultHotspotThreshold
	}
	return &RefreshDemandsCommandHandler{
		source:        source,
		aggregator:    aggregator,
		notifier:      notifier,
		threshold:     threshold,
		notifiedIDs:   make(map[string]struct{}),
		hotCategories: make(map[demand.Category]struct{}),
	}
}

// Handle runs one refresh cycle. A failed snapshot pull surfaces as an
// external-call error and is not retried here; the scheduler re-fires on its
// own cadence.
func (h *RefreshDemandsCommandHandler) Handle(ctx context.Context, cmd RefreshDemandsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	snapshot, err := h.source.ListDemands(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, d := range h.aggregator.DetectUrgent(snapshot) {
		if _, seen := h.notifiedIDs[d.ID]; seen {
			continue
		}
		h.notifiedIDs[d.ID] = struct{}{}
		h.notifier.Add(ctx, h.aggregator.UrgentNotification(d))
	}

	hotspots := h.aggregator.DetectHotspots(snapshot, h.threshold)
	for category, count := range hotspots {
		if _, alerted := h.hotCategories[category]; alerted {
			continue
		}
		h.hotCategories[category] = struct{}{}
		h.notifier.Add(ctx, h.aggregator.HotspotNotification(category, count))
	}

	// Re-arm categories that cooled down so the next spike alerts again.
	for category := range h.hotCategories {
		if _, stillHot := hotspots[category]; !stillHot {
			delete(h.hotCategories, category)
		}
	}

	return nil
}
