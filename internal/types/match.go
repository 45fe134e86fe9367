package types

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/talentbridge/talentbridge-backend/internal/matching"
)

// Match is the persisted (offer, talent, score) association. The fixed
// matching structs are serialized to JSON columns here, at the storage
// boundary, and nowhere else.
type Match struct {
	ID                     uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OfferID                uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_match_offer_talent;column:offer_id" json:"offer_id"`
	TalentID               uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_match_offer_talent;column:talent_id" json:"talent_id"`
	Score                  int                         `gorm:"not null;index;column:score" json:"score"`
	ScoreDetails           datatypes.JSON              `gorm:"column:score_details" json:"score_details"`
	MatchedSkills          datatypes.JSONSlice[string] `gorm:"column:matched_skills" json:"matched_skills"`
	MissingSkills          datatypes.JSONSlice[string] `gorm:"column:missing_skills" json:"missing_skills"`
	MatchedDesired         datatypes.JSONSlice[string] `gorm:"column:matched_desired" json:"matched_desired"`
	Feedback               datatypes.JSON              `gorm:"column:feedback" json:"feedback"`
	Analysis               string                      `gorm:"column:analysis" json:"analysis"`
	InsufficientSkills     bool                        `gorm:"not null;default:false;column:insufficient_skills" json:"insufficient_skills"`
	IncompatibleRate       bool                        `gorm:"not null;default:false;column:incompatible_rate" json:"incompatible_rate"`
	InsufficientExperience bool                        `gorm:"not null;default:false;column:insufficient_experience" json:"insufficient_experience"`
	Unavailable            bool                        `gorm:"not null;default:false;column:unavailable" json:"unavailable"`
	NotifiedAt             *time.Time                  `gorm:"column:notified_at" json:"notified_at"`
	CreatedAt              time.Time                   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt              time.Time                   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Match) TableName() string {
	return "match"
}

// NewMatchFromResult converts an in-memory MatchResult into a persistable row.
func NewMatchFromResult(offerID uuid.UUID, result matching.MatchResult) (*Match, error) {
	details, err := json.Marshal(result.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal score details: %w", err)
	}
	feedback, err := json.Marshal(result.Feedback)
	if err != nil {
		return nil, fmt.Errorf("marshal feedback: %w", err)
	}
	return &Match{
		OfferID:                offerID,
		TalentID:               result.TalentID,
		Score:                  result.Score,
		ScoreDetails:           datatypes.JSON(details),
		MatchedSkills:          datatypes.NewJSONSlice(result.MatchedRequired),
		MissingSkills:          datatypes.NewJSONSlice(result.MissingRequired),
		MatchedDesired:         datatypes.NewJSONSlice(result.MatchedDesired),
		Feedback:               datatypes.JSON(feedback),
		Analysis:               result.Analysis,
		InsufficientSkills:     result.Blockers.InsufficientSkills,
		IncompatibleRate:       result.Blockers.IncompatibleRate,
		InsufficientExperience: result.Blockers.InsufficientExperience,
		Unavailable:            result.Blockers.Unavailable,
	}, nil
}

// DecodeScoreDetails restores the fixed sub-score breakdown from the JSON
// column. Rows written before a sub-score existed decode to its zero value.
func (m *Match) DecodeScoreDetails() (matching.SubScores, error) {
	var details matching.SubScores
	if len(m.ScoreDetails) == 0 {
		return details, nil
	}
	if err := json.Unmarshal(m.ScoreDetails, &details); err != nil {
		return details, fmt.Errorf("unmarshal score details: %w", err)
	}
	return details, nil
}

// DecodeFeedback restores the candidate-facing feedback from the JSON column.
func (m *Match) DecodeFeedback() (matching.Feedback, error) {
	var fb matching.Feedback
	if len(m.Feedback) == 0 {
		return fb, nil
	}
	if err := json.Unmarshal(m.Feedback, &fb); err != nil {
		return fb, fmt.Errorf("unmarshal feedback: %w", err)
	}
	return fb, nil
}
