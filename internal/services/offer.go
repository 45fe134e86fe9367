package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/matching"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

type OfferService interface {
	GetOffer(ctx context.Context, offerID uuid.UUID) (*types.Offer, error)
	ListPublished(ctx context.Context) ([]*types.Offer, error)
	// PublishOffer flips the offer to PUBLISHED and runs matching against
	// the current talent pool.
	PublishOffer(ctx context.Context, offerID uuid.UUID) ([]matching.MatchResult, error)
}

type offerService struct {
	db        *gorm.DB
	log       *logger.Logger
	offerRepo repos.OfferRepo
	matching  MatchingService
}

func NewOfferService(db *gorm.DB, log *logger.Logger, offerRepo repos.OfferRepo, matching MatchingService) OfferService {
	return &offerService{
		db:        db,
		log:       log.With("service", "OfferService"),
		offerRepo: offerRepo,
		matching:  matching,
	}
}

func (os *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*types.Offer, error) {
	offer, err := os.offerRepo.GetByID(ctx, nil, offerID)
	if err != nil {
		return nil, fmt.Errorf("load offer %s: %w", offerID, err)
	}
	return offer, nil
}

func (os *offerService) ListPublished(ctx context.Context) ([]*types.Offer, error) {
	offers, err := os.offerRepo.GetPublished(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load published offers: %w", err)
	}
	return offers, nil
}

func (os *offerService) PublishOffer(ctx context.Context, offerID uuid.UUID) ([]matching.MatchResult, error) {
	if err := os.offerRepo.UpdateStatus(ctx, nil, offerID, types.OfferStatusPublished); err != nil {
		return nil, fmt.Errorf("publish offer %s: %w", offerID, err)
	}
	results, err := os.matching.MatchTalentsForOffer(ctx, offerID, DefaultMinScore, true)
	if err != nil {
		return nil, fmt.Errorf("run matching for offer %s: %w", offerID, err)
	}
	return results, nil
}
