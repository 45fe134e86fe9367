package matching

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func intPtr(v int) *int { return &v }

func perfectPair() (TalentSnapshot, OfferSnapshot) {
	talent := TalentSnapshot{
		ID:           uuid.New(),
		Skills:       []string{"react", "node"},
		Availability: AvailabilityImmediate,
		Mobility:     MobilityFullRemote,
	}
	offer := OfferSnapshot{
		ID:             uuid.New(),
		Title:          "Fullstack mission",
		RequiredSkills: []string{"React", "Node.js"},
		Mobility:       MobilityFullRemote,
	}
	return talent, offer
}

func TestScore_PerfectMatch(t *testing.T) {
	talent, offer := perfectPair()
	result := Score(talent, offer)

	if result.Score != 100 {
		t.Fatalf("score = %d, want 100", result.Score)
	}
	if result.Details.SkillsRequired != 100 {
		t.Fatalf("required sub-score = %d, want 100", result.Details.SkillsRequired)
	}
	if len(result.MatchedRequired) != 2 || len(result.MissingRequired) != 0 {
		t.Fatalf("matched/missing = %v / %v", result.MatchedRequired, result.MissingRequired)
	}
	// Matched skills keep the offer's spelling, not the talent's.
	if result.MatchedRequired[0] != "React" || result.MatchedRequired[1] != "Node.js" {
		t.Fatalf("matched skills lost offer spelling: %v", result.MatchedRequired)
	}
	if result.Analysis != "excellent match" {
		t.Fatalf("analysis = %q", result.Analysis)
	}
	if result.Blockers != (Blockers{}) {
		t.Fatalf("unexpected blockers: %+v", result.Blockers)
	}
}

func TestScore_ZeroRequiredSkillsIsPerfectRatio(t *testing.T) {
	talent := TalentSnapshot{ID: uuid.New(), Availability: AvailabilityImmediate}
	offer := OfferSnapshot{ID: uuid.New()}
	result := Score(talent, offer)
	if result.Score != 100 {
		t.Fatalf("score = %d, want 100 for an offer without required skills", result.Score)
	}
}

func TestScore_PartialSkillsCappedAt75(t *testing.T) {
	talent := TalentSnapshot{
		ID:           uuid.New(),
		Skills:       []string{"react", "node", "typescript"},
		Availability: AvailabilityImmediate,
	}
	offer := OfferSnapshot{
		ID:             uuid.New(),
		RequiredSkills: []string{"React", "Node.js", "TypeScript", "GraphQL"},
	}
	result := Score(talent, offer)

	if result.Score != 75 {
		t.Fatalf("score = %d, want 75", result.Score)
	}
	if result.Details.SkillsRequired != 75 {
		t.Fatalf("required sub-score = %d, want 75", result.Details.SkillsRequired)
	}
	if !strings.Contains(result.Feedback.Reason, "GraphQL") {
		t.Fatalf("reason should name the missing skill, got %q", result.Feedback.Reason)
	}
	if !reflect.DeepEqual(result.MissingRequired, []string{"GraphQL"}) {
		t.Fatalf("missing = %v", result.MissingRequired)
	}
	if result.Blockers.InsufficientSkills {
		t.Fatalf("75%% coverage must not raise the skills blocker")
	}
}

func TestScore_HalfSkillsCappedAt60(t *testing.T) {
	talent := TalentSnapshot{ID: uuid.New(), Skills: []string{"react"}, Availability: AvailabilityImmediate}
	offer := OfferSnapshot{ID: uuid.New(), RequiredSkills: []string{"React", "GraphQL"}}
	result := Score(talent, offer)

	if result.Score != 60 {
		t.Fatalf("score = %d, want 60", result.Score)
	}
	if result.Blockers.InsufficientSkills {
		t.Fatalf("50%% coverage must not raise the skills blocker")
	}
}

func TestScore_NoRequiredSkillsMatchedCappedAt40(t *testing.T) {
	talent := TalentSnapshot{ID: uuid.New(), Skills: []string{"php"}, Availability: AvailabilityImmediate}
	offer := OfferSnapshot{ID: uuid.New(), RequiredSkills: []string{"React", "Node.js", "GraphQL", "Docker"}}
	result := Score(talent, offer)

	if result.Score > 40 {
		t.Fatalf("score = %d, want <= 40", result.Score)
	}
	if !result.Blockers.InsufficientSkills {
		t.Fatalf("skills blocker not set")
	}
	if !strings.Contains(result.Feedback.Reason, "0/4") {
		t.Fatalf("reason = %q, want the 0/4 ratio", result.Feedback.Reason)
	}
}

func TestScore_RateBlockerCapsAt50(t *testing.T) {
	talent, offer := perfectPair()
	talent.DailyRate = intPtr(1000)
	offer.DailyRateMin = intPtr(400)
	offer.DailyRateMax = intPtr(500)

	result := Score(talent, offer)

	if result.Score != 50 {
		t.Fatalf("score = %d, want 50", result.Score)
	}
	if result.Details.Rate != 30 {
		t.Fatalf("rate sub-score = %d, want 30", result.Details.Rate)
	}
	if !result.Blockers.IncompatibleRate {
		t.Fatalf("rate blocker not set")
	}
	if !result.Feedback.RateTooHigh {
		t.Fatalf("feedback should flag the rate")
	}
	if result.Feedback.TargetRateRange != "400-500€/jour" {
		t.Fatalf("target range = %q", result.Feedback.TargetRateRange)
	}
	if result.Feedback.Reason != "rate significantly above budget" {
		t.Fatalf("reason = %q", result.Feedback.Reason)
	}
}

func TestScore_RateMinTakesPrecedenceOverDesired(t *testing.T) {
	talent, offer := perfectPair()
	talent.DailyRate = intPtr(1000)
	talent.DailyRateMin = intPtr(450)
	offer.DailyRateMax = intPtr(500)

	result := Score(talent, offer)
	if result.Details.Rate != 100 {
		t.Fatalf("rate sub-score = %d, want 100 (floor fits the budget)", result.Details.Rate)
	}
}

func TestScore_MissingRateDataIsNotAnIncompatibility(t *testing.T) {
	talent, offer := perfectPair()
	talent.DailyRate = intPtr(1000)
	// Offer publishes no budget.
	result := Score(talent, offer)
	if result.Details.Rate != 100 {
		t.Fatalf("rate sub-score = %d, want 100", result.Details.Rate)
	}
}

func TestScore_UnavailableCapsAt20AndOverridesReason(t *testing.T) {
	talent := TalentSnapshot{
		ID:           uuid.New(),
		Skills:       []string{"php"},
		Availability: AvailabilityUnavailable,
	}
	offer := OfferSnapshot{ID: uuid.New(), RequiredSkills: []string{"React", "Node.js", "GraphQL", "Docker"}}
	result := Score(talent, offer)

	if result.Score > 20 {
		t.Fatalf("score = %d, want <= 20", result.Score)
	}
	if !result.Blockers.Unavailable {
		t.Fatalf("unavailable blocker not set")
	}
	// The unavailability reason wins the display slot over the skills reason.
	if result.Feedback.Reason != "candidate currently unavailable" {
		t.Fatalf("reason = %q", result.Feedback.Reason)
	}
	if !result.Blockers.InsufficientSkills {
		t.Fatalf("earlier blockers must still be recorded")
	}
}

func TestScore_InsufficientExperienceCapsAt55(t *testing.T) {
	talent, offer := perfectPair()
	talent.YearsExperience = 1
	offer.MinExperience = intPtr(5)

	result := Score(talent, offer)
	if result.Score > 55 {
		t.Fatalf("score = %d, want <= 55", result.Score)
	}
	if result.Details.Experience != 30 {
		t.Fatalf("experience sub-score = %d, want 30", result.Details.Experience)
	}
	if !result.Blockers.InsufficientExperience {
		t.Fatalf("experience blocker not set")
	}
	if !strings.Contains(result.Feedback.Reason, "1 years vs 5 required") {
		t.Fatalf("reason = %q", result.Feedback.Reason)
	}
}

func TestScore_ExperienceTiers(t *testing.T) {
	cases := []struct {
		years int
		want  int
	}{
		{5, 100},
		{4, 70},  // >= 70% of 5
		{3, 50},  // >= 50% of 5
		{2, 30},
	}
	for _, c := range cases {
		talent, offer := perfectPair()
		talent.YearsExperience = c.years
		offer.MinExperience = intPtr(5)
		result := Score(talent, offer)
		if result.Details.Experience != c.want {
			t.Errorf("experience(%d years vs 5) = %d, want %d", c.years, result.Details.Experience, c.want)
		}
	}
}

func TestScore_NoMinExperienceScoresFull(t *testing.T) {
	talent, offer := perfectPair()
	talent.YearsExperience = 0
	result := Score(talent, offer)
	if result.Details.Experience != 100 {
		t.Fatalf("experience sub-score = %d, want 100", result.Details.Experience)
	}
}

func TestScore_MobilityTiers(t *testing.T) {
	cases := []struct {
		talent Mobility
		offer  Mobility
		want   int
	}{
		{MobilityFullRemote, MobilityFullRemote, 100},
		{MobilityFlexible, MobilityOnSite, 100},
		{MobilityFullRemote, MobilityOnSite, 30},
		{MobilityOnSite, MobilityFullRemote, 50},
		{MobilityHybrid, MobilityOnSite, 70},
	}
	for _, c := range cases {
		talent, offer := perfectPair()
		talent.Mobility = c.talent
		offer.Mobility = c.offer
		result := Score(talent, offer)
		if result.Details.Mobility != c.want {
			t.Errorf("mobility(%s vs %s) = %d, want %d", c.talent, c.offer, result.Details.Mobility, c.want)
		}
	}
}

func TestScore_IncompatibleCategoryCapsMobility(t *testing.T) {
	talent, offer := perfectPair()
	talent.Mobility = MobilityHybrid
	offer.Mobility = MobilityHybrid
	talent.Category = CategoryHelpdeskN1
	offer.Category = CategoryArchitecte

	result := Score(talent, offer)
	if result.Details.Mobility != 50 {
		t.Fatalf("mobility sub-score = %d, want 50 under category mismatch", result.Details.Mobility)
	}
	if strings.Contains(result.Analysis, "over-qualified") {
		t.Fatalf("mismatch must not earn the over-qualified credit")
	}
}

func TestScore_OverQualifiedAdjacentCategoryBonus(t *testing.T) {
	talent, offer := perfectPair()
	talent.Category = CategoryArchitecte
	talent.YearsExperience = 4
	offer.Category = CategoryIngenieurCloud
	offer.MinExperience = intPtr(5)

	withBonus := Score(talent, offer)

	same := talent
	same.Category = CategoryIngenieurCloud
	withoutBonus := Score(same, offer)

	if withBonus.Score != withoutBonus.Score+3 {
		t.Fatalf("bonus delta = %d - %d, want +3", withBonus.Score, withoutBonus.Score)
	}
	if !strings.Contains(withBonus.Analysis, "over-qualified") {
		t.Fatalf("analysis = %q, want the over-qualified note", withBonus.Analysis)
	}
}

func TestScore_BonusNeverExceeds100(t *testing.T) {
	talent, offer := perfectPair()
	talent.Category = CategoryArchitecte
	offer.Category = CategoryIngenieurCloud

	result := Score(talent, offer)
	if result.Score != 100 {
		t.Fatalf("score = %d, want 100 (clamped)", result.Score)
	}
}

func TestScore_Deterministic(t *testing.T) {
	talent, offer := perfectPair()
	talent.DailyRate = intPtr(700)
	offer.DailyRateMax = intPtr(600)
	offer.MinExperience = intPtr(3)

	first := Score(talent, offer)
	second := Score(talent, offer)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestScore_AddingMatchedSkillNeverLowersScore(t *testing.T) {
	offer := OfferSnapshot{ID: uuid.New(), RequiredSkills: []string{"React", "GraphQL"}}
	weaker := TalentSnapshot{ID: uuid.New(), Skills: []string{"react"}, Availability: AvailabilityImmediate}
	stronger := weaker
	stronger.Skills = []string{"react", "graphql"}

	low := Score(weaker, offer)
	high := Score(stronger, offer)
	if high.Score < low.Score {
		t.Fatalf("score dropped from %d to %d after gaining a required skill", low.Score, high.Score)
	}
}

func TestScore_RateAndSkillsBlockersCombine(t *testing.T) {
	talent := TalentSnapshot{
		ID:           uuid.New(),
		Skills:       []string{"php"},
		DailyRate:    intPtr(1000),
		Availability: AvailabilityImmediate,
	}
	offer := OfferSnapshot{
		ID:             uuid.New(),
		RequiredSkills: []string{"React", "Node.js", "GraphQL", "Docker"},
		DailyRateMax:   intPtr(500),
	}
	result := Score(talent, offer)

	if result.Score > 40 {
		t.Fatalf("score = %d, want <= 40 (tightest cap wins)", result.Score)
	}
	if !result.Blockers.InsufficientSkills || !result.Blockers.IncompatibleRate {
		t.Fatalf("both blockers expected, got %+v", result.Blockers)
	}
	// First reason set keeps the display slot.
	if !strings.Contains(result.Feedback.Reason, "required skills") {
		t.Fatalf("reason = %q, want the skills reason", result.Feedback.Reason)
	}
}

func TestScore_AvailabilityTiers(t *testing.T) {
	cases := []struct {
		availability Availability
		want         int
	}{
		{AvailabilityImmediate, 100},
		{AvailabilityWithin15Days, 100},
		{AvailabilityWithin1Month, 100},
		{AvailabilityWithin2Months, 80},
		{AvailabilityWithin3Months, 70},
		{AvailabilityUnavailable, 0},
	}
	for _, c := range cases {
		talent, offer := perfectPair()
		talent.Availability = c.availability
		result := Score(talent, offer)
		if result.Details.Availability != c.want {
			t.Errorf("availability(%s) = %d, want %d", c.availability, result.Details.Availability, c.want)
		}
	}
}
