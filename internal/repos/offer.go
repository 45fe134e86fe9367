package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/talentbridge/talentbridge-backend/internal/pkg/errors"
	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

type OfferRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (*types.Offer, error)
	GetPublished(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, status types.OfferStatus) error
}

type offerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOfferRepo(db *gorm.DB, baseLog *logger.Logger) OfferRepo {
	return &offerRepo{db: db, log: baseLog.With("repo", "OfferRepo")}
}

func (or *offerRepo) GetByID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) (*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var result types.Offer
	if err := transaction.WithContext(ctx).
		Where("id = ?", offerID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (or *offerRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, offerID uuid.UUID, status types.OfferStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.Offer{}).
		Where("id = ?", offerID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrNotFound
	}
	return nil
}

func (or *offerRepo) GetPublished(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*types.Offer
	if err := transaction.WithContext(ctx).
		Where("status = ?", types.OfferStatusPublished).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
