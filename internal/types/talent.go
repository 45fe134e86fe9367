package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/talentbridge/talentbridge-backend/internal/matching"
)

type TalentStatus string

const (
	TalentStatusActive   TalentStatus = "ACTIVE"
	TalentStatusPaused   TalentStatus = "PAUSED"
	TalentStatusArchived TalentStatus = "ARCHIVED"
)

type Talent struct {
	ID                   uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email                string                         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	FirstName            string                         `gorm:"not null;column:first_name" json:"first_name"`
	LastName             string                         `gorm:"not null;column:last_name" json:"last_name"`
	Skills               datatypes.JSONSlice[string]    `gorm:"column:skills" json:"skills"`
	YearsExperience      int                            `gorm:"not null;default:0;column:years_experience" json:"years_experience"`
	DailyRate            *int                           `gorm:"column:daily_rate" json:"daily_rate"`
	DailyRateMin         *int                           `gorm:"column:daily_rate_min" json:"daily_rate_min"`
	DailyRateMax         *int                           `gorm:"column:daily_rate_max" json:"daily_rate_max"`
	Mobility             matching.Mobility              `gorm:"column:mobility" json:"mobility"`
	Zones                datatypes.JSONSlice[string]    `gorm:"column:zones" json:"zones"`
	Availability         matching.Availability          `gorm:"column:availability" json:"availability"`
	AvailableFrom        *time.Time                     `gorm:"column:available_from" json:"available_from"`
	Nationality          string                         `gorm:"column:nationality" json:"nationality"`
	DrivingLicense       bool                           `gorm:"not null;default:false;column:driving_license" json:"driving_license"`
	AcceptsForeignTravel bool                           `gorm:"not null;default:false;column:accepts_foreign_travel" json:"accepts_foreign_travel"`
	Certifications       datatypes.JSONSlice[string]    `gorm:"column:certifications" json:"certifications"`
	Languages            datatypes.JSONSlice[string]    `gorm:"column:languages" json:"languages"`
	Category             matching.Category              `gorm:"column:category" json:"category"`
	Status               TalentStatus                   `gorm:"not null;default:ACTIVE;column:status" json:"status"`
	Verified             bool                           `gorm:"not null;default:false;column:verified" json:"verified"`
	CreatedAt            time.Time                      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt            time.Time                      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Talent) TableName() string {
	return "talent"
}

// Snapshot projects the persisted row to the read-only view the matching
// engine scores. The engine never sees the model itself.
func (t *Talent) Snapshot() matching.TalentSnapshot {
	return matching.TalentSnapshot{
		ID:                   t.ID,
		Skills:               []string(t.Skills),
		YearsExperience:      t.YearsExperience,
		DailyRate:            t.DailyRate,
		DailyRateMin:         t.DailyRateMin,
		DailyRateMax:         t.DailyRateMax,
		Mobility:             t.Mobility,
		Zones:                []string(t.Zones),
		Availability:         t.Availability,
		AvailableFrom:        t.AvailableFrom,
		Nationality:          t.Nationality,
		DrivingLicense:       t.DrivingLicense,
		AcceptsForeignTravel: t.AcceptsForeignTravel,
		Certifications:       []string(t.Certifications),
		Languages:            []string(t.Languages),
		Category:             t.Category,
	}
}
