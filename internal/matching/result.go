package matching

import "github.com/google/uuid"

// SubScores is the fixed breakdown persisted alongside a match. Each field is
// independently in [0,100] before weighting.
type SubScores struct {
	SkillsRequired int `json:"skills_required"`
	SkillsDesired  int `json:"skills_desired"`
	Experience     int `json:"experience"`
	Mobility       int `json:"mobility"`
	Availability   int `json:"availability"`
	Rate           int `json:"rate"`
}

// Feedback is the candidate-facing explanation attached to a match
// notification.
type Feedback struct {
	RateTooHigh     bool     `json:"rate_too_high"`
	TargetRateRange string   `json:"target_rate_range,omitempty"`
	ExperienceGaps  []string `json:"experience_gaps,omitempty"`
	Reason          string   `json:"reason,omitempty"`
}

// Blockers flags disqualifying conditions independently of the numeric score.
type Blockers struct {
	InsufficientSkills     bool `json:"insufficient_skills"`
	IncompatibleRate       bool `json:"incompatible_rate"`
	InsufficientExperience bool `json:"insufficient_experience"`
	Unavailable            bool `json:"unavailable"`
}

// MatchResult is the outcome of scoring one (talent, offer) pair. It is
// immutable once produced; recomputation yields a new value.
type MatchResult struct {
	TalentID        uuid.UUID `json:"talent_id"`
	Score           int       `json:"score"`
	Details         SubScores `json:"details"`
	MatchedRequired []string  `json:"matched_required"`
	MissingRequired []string  `json:"missing_required"`
	MatchedDesired  []string  `json:"matched_desired"`
	Analysis        string    `json:"analysis"`
	Feedback        Feedback  `json:"feedback"`
	Blockers        Blockers  `json:"blockers"`
}
