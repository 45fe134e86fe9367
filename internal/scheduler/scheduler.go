// Package scheduler wires up the cron job that periodically re-runs matching
// for every published offer, so new talents and profile edits surface without
// waiting for an explicit trigger.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/services"
)

type Scheduler struct {
	cron      *cron.Cron
	log       *logger.Logger
	offerRepo repos.OfferRepo
	matching  services.MatchingService
	spec      string // cron spec, e.g. "@every 6h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(log *logger.Logger, offerRepo repos.OfferRepo, matching services.MatchingService, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		log:       log.With("component", "Scheduler"),
		offerRepo: offerRepo,
		matching:  matching,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so fresh deployments do not wait for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.log.Info("Cron started", "spec", s.spec)

	go s.runCycle(ctx)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info("Cron stopped")
}

// runCycle re-matches every published offer. Notifications stay on so talents
// who became eligible since the last cycle hear about it.
func (s *Scheduler) runCycle(ctx context.Context) {
	s.log.Info("Match cycle started")

	offers, err := s.offerRepo.GetPublished(ctx, nil)
	if err != nil {
		s.log.Error("Failed to load published offers", "error", err)
		return
	}
	if len(offers) == 0 {
		s.log.Info("No published offers, nothing to match")
		return
	}

	for _, offer := range offers {
		if _, err := s.matching.MatchTalentsForOffer(ctx, offer.ID, services.DefaultMinScore, true); err != nil {
			s.log.Error("Match run failed", "offer_id", offer.ID, "error", err)
		}
	}

	s.log.Info("Match cycle complete", "offers", len(offers))
}
