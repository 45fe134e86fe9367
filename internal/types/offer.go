package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/talentbridge/talentbridge-backend/internal/matching"
)

type OfferStatus string

const (
	OfferStatusDraft     OfferStatus = "DRAFT"
	OfferStatusPublished OfferStatus = "PUBLISHED"
	OfferStatusClosed    OfferStatus = "CLOSED"
)

type Offer struct {
	ID                    uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClientID              uuid.UUID                   `gorm:"type:uuid;index;column:client_id" json:"client_id"`
	Title                 string                      `gorm:"not null;column:title" json:"title"`
	Slug                  string                      `gorm:"uniqueIndex;not null;column:slug" json:"slug"`
	RequiredSkills        datatypes.JSONSlice[string] `gorm:"column:required_skills" json:"required_skills"`
	DesiredSkills         datatypes.JSONSlice[string] `gorm:"column:desired_skills" json:"desired_skills"`
	MinExperience         *int                        `gorm:"column:min_experience" json:"min_experience"`
	DailyRateMin          *int                        `gorm:"column:daily_rate_min" json:"daily_rate_min"`
	DailyRateMax          *int                        `gorm:"column:daily_rate_max" json:"daily_rate_max"`
	Mobility              matching.Mobility           `gorm:"column:mobility" json:"mobility"`
	Location              string                      `gorm:"column:location" json:"location"`
	ForeignTravelRequired bool                        `gorm:"not null;default:false;column:foreign_travel_required" json:"foreign_travel_required"`
	ClearanceRequired     bool                        `gorm:"not null;default:false;column:clearance_required" json:"clearance_required"`
	ClearanceType         string                      `gorm:"column:clearance_type" json:"clearance_type"`
	StartDate             time.Time                   `gorm:"column:start_date" json:"start_date"`
	Category              matching.Category           `gorm:"column:category" json:"category"`
	Status                OfferStatus                 `gorm:"not null;default:DRAFT;column:status" json:"status"`
	CreatedAt             time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt             time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Offer) TableName() string {
	return "offer"
}

func (o *Offer) Snapshot() matching.OfferSnapshot {
	return matching.OfferSnapshot{
		ID:                    o.ID,
		Title:                 o.Title,
		RequiredSkills:        []string(o.RequiredSkills),
		DesiredSkills:         []string(o.DesiredSkills),
		MinExperience:         o.MinExperience,
		DailyRateMin:          o.DailyRateMin,
		DailyRateMax:          o.DailyRateMax,
		Mobility:              o.Mobility,
		Location:              o.Location,
		ForeignTravelRequired: o.ForeignTravelRequired,
		ClearanceRequired:     o.ClearanceRequired,
		ClearanceType:         o.ClearanceType,
		StartDate:             o.StartDate,
		Category:              o.Category,
	}
}
