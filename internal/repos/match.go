package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

type MatchRepo interface {
	// GetByOfferAndTalent returns nil (not an error) when no match row
	// exists for the pair; the create-only batch path uses this to skip
	// already-evaluated pairs.
	GetByOfferAndTalent(ctx context.Context, tx *gorm.DB, offerID, talentID uuid.UUID) (*types.Match, error)
	Create(ctx context.Context, tx *gorm.DB, match *types.Match) (*types.Match, error)
	// Upsert inserts or fully refreshes the row keyed by (offer, talent).
	Upsert(ctx context.Context, tx *gorm.DB, match *types.Match) (*types.Match, error)
	GetByOfferOrderedByScore(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, limit int) ([]*types.Match, error)
	MarkNotified(ctx context.Context, tx *gorm.DB, matchID uuid.UUID, at time.Time) error
}

type matchRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMatchRepo(db *gorm.DB, baseLog *logger.Logger) MatchRepo {
	return &matchRepo{db: db, log: baseLog.With("repo", "MatchRepo")}
}

func (mr *matchRepo) GetByOfferAndTalent(ctx context.Context, tx *gorm.DB, offerID, talentID uuid.UUID) (*types.Match, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	var results []*types.Match
	if err := transaction.WithContext(ctx).
		Where("offer_id = ? AND talent_id = ?", offerID, talentID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (mr *matchRepo) Create(ctx context.Context, tx *gorm.DB, match *types.Match) (*types.Match, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if err := transaction.WithContext(ctx).Create(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

func (mr *matchRepo) Upsert(ctx context.Context, tx *gorm.DB, match *types.Match) (*types.Match, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "offer_id"}, {Name: "talent_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"score", "score_details", "matched_skills", "missing_skills",
				"matched_desired", "feedback", "analysis",
				"insufficient_skills", "incompatible_rate",
				"insufficient_experience", "unavailable", "updated_at",
			}),
		}).
		Create(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

func (mr *matchRepo) GetByOfferOrderedByScore(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, limit int) ([]*types.Match, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	query := transaction.WithContext(ctx).
		Where("offer_id = ?", offerID).
		Order("score DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var results []*types.Match
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (mr *matchRepo) MarkNotified(ctx context.Context, tx *gorm.DB, matchID uuid.UUID, at time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Match{}).
		Where("id = ?", matchID).
		Update("notified_at", at).Error
}
