package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

type TalentService interface {
	GetTalent(ctx context.Context, talentID uuid.UUID) (*types.Talent, error)
	// UpdateSkills persists the new skill list and refreshes the talent's
	// full match matrix against every published offer.
	UpdateSkills(ctx context.Context, talentID uuid.UUID, skills []string) (int, error)
}

type talentService struct {
	db         *gorm.DB
	log        *logger.Logger
	talentRepo repos.TalentRepo
	matching   MatchingService
}

func NewTalentService(db *gorm.DB, log *logger.Logger, talentRepo repos.TalentRepo, matching MatchingService) TalentService {
	return &talentService{
		db:         db,
		log:        log.With("service", "TalentService"),
		talentRepo: talentRepo,
		matching:   matching,
	}
}

func (ts *talentService) GetTalent(ctx context.Context, talentID uuid.UUID) (*types.Talent, error) {
	talent, err := ts.talentRepo.GetByID(ctx, nil, talentID)
	if err != nil {
		return nil, fmt.Errorf("load talent %s: %w", talentID, err)
	}
	return talent, nil
}

func (ts *talentService) UpdateSkills(ctx context.Context, talentID uuid.UUID, skills []string) (int, error) {
	if err := ts.talentRepo.UpdateSkills(ctx, nil, talentID, skills); err != nil {
		return 0, fmt.Errorf("update skills for talent %s: %w", talentID, err)
	}
	refreshed, err := ts.matching.UpdateMatchesForTalent(ctx, talentID)
	if err != nil {
		return 0, fmt.Errorf("refresh matches for talent %s: %w", talentID, err)
	}
	return refreshed, nil
}
