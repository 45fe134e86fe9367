package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	pkgerrors "github.com/talentbridge/talentbridge-backend/internal/pkg/errors"
	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

type TalentRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, talentID uuid.UUID) (*types.Talent, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, talentIDs []uuid.UUID) ([]*types.Talent, error)
	// GetMatchable returns the candidate pool for batch matching: active,
	// verified talents with at least one declared skill.
	GetMatchable(ctx context.Context, tx *gorm.DB) ([]*types.Talent, error)
	UpdateSkills(ctx context.Context, tx *gorm.DB, talentID uuid.UUID, skills []string) error
}

type talentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTalentRepo(db *gorm.DB, baseLog *logger.Logger) TalentRepo {
	return &talentRepo{db: db, log: baseLog.With("repo", "TalentRepo")}
}

func (tr *talentRepo) GetByID(ctx context.Context, tx *gorm.DB, talentID uuid.UUID) (*types.Talent, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var result types.Talent
	if err := transaction.WithContext(ctx).
		Where("id = ?", talentID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (tr *talentRepo) UpdateSkills(ctx context.Context, tx *gorm.DB, talentID uuid.UUID, skills []string) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Talent{}).
		Where("id = ?", talentID).
		Update("skills", datatypes.NewJSONSlice(skills))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

func (tr *talentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, talentIDs []uuid.UUID) ([]*types.Talent, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Talent
	if len(talentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", talentIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (tr *talentRepo) GetMatchable(ctx context.Context, tx *gorm.DB) ([]*types.Talent, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}

	var results []*types.Talent
	if err := transaction.WithContext(ctx).
		Where("status = ?", types.TalentStatusActive).
		Where("verified = ?", true).
		Where("skills IS NOT NULL AND jsonb_array_length(skills) > 0").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
