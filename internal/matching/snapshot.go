package matching

import (
	"time"

	"github.com/google/uuid"
)

// TalentSnapshot is the read-only view of a talent profile the engine scores.
// Nullable fields are pointers; a nil rate or category is scored with the
// documented no-penalty defaults, never treated as an error.
type TalentSnapshot struct {
	ID                   uuid.UUID
	Skills               []string
	YearsExperience      int
	DailyRate            *int
	DailyRateMin         *int
	DailyRateMax         *int
	Mobility             Mobility
	Zones                []string
	Availability         Availability
	AvailableFrom        *time.Time
	Nationality          string
	DrivingLicense       bool
	AcceptsForeignTravel bool
	Certifications       []string
	Languages            []string
	Category             Category
}

// OfferSnapshot is the read-only view of an offer the engine scores against.
type OfferSnapshot struct {
	ID                    uuid.UUID
	Title                 string
	RequiredSkills        []string
	DesiredSkills         []string
	MinExperience         *int
	DailyRateMin          *int
	DailyRateMax          *int
	Mobility              Mobility
	Location              string
	ForeignTravelRequired bool
	ClearanceRequired     bool
	ClearanceType         string
	StartDate             time.Time
	Category              Category
}
