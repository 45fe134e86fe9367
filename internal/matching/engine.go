package matching

import (
	"fmt"
	"math"
	"strings"
)

// Sub-score weights. They sum to 1.0; required skills dominate.
const (
	weightSkillsRequired = 0.50
	weightSkillsDesired  = 0.10
	weightExperience     = 0.15
	weightRate           = 0.10
	weightAvailability   = 0.08
	weightMobility       = 0.07
)

// overQualifiedBonus is the flat credit added when the talent's category is an
// adjacent superset of the offer's (an architect applying to a cloud offer).
const overQualifiedBonus = 3

// Score computes the deterministic 0-100 match between one talent and one
// offer. It is a pure function: identical inputs yield identical results, and
// missing optional data always degrades to the no-penalty default rather than
// an error.
func Score(talent TalentSnapshot, offer OfferSnapshot) MatchResult {
	matchedRequired, missingRequired := splitSkills(talent.Skills, offer.RequiredSkills)
	matchedDesired, _ := splitSkills(talent.Skills, offer.DesiredSkills)

	ratioRequired := 1.0
	if len(offer.RequiredSkills) > 0 {
		ratioRequired = float64(len(matchedRequired)) / float64(len(offer.RequiredSkills))
	}
	ratioDesired := 1.0
	if len(offer.DesiredSkills) > 0 {
		ratioDesired = float64(len(matchedDesired)) / float64(len(offer.DesiredSkills))
	}

	details := SubScores{
		SkillsRequired: int(math.Round(ratioRequired * 100)),
		SkillsDesired:  int(math.Round(ratioDesired * 100)),
		Experience:     scoreExperience(talent, offer),
		Availability:   scoreAvailability(talent),
		Mobility:       scoreMobility(talent, offer),
	}

	feedback := Feedback{}
	details.Rate = scoreRate(talent, offer, &feedback)

	// Category compatibility rides on the mobility sub-score: an
	// incompatible category caps mobility at 50 instead of getting its own
	// channel. Historical quirk, kept because persisted scores depend on it.
	bonus := 0
	if talent.Category != "" && offer.Category != "" {
		if !CanMatch(talent.Category, offer.Category) {
			if details.Mobility > 50 {
				details.Mobility = 50
			}
		} else if talent.Category != offer.Category {
			bonus = overQualifiedBonus
		}
	}

	base := int(math.Round(
		weightSkillsRequired*float64(details.SkillsRequired) +
			weightSkillsDesired*float64(details.SkillsDesired) +
			weightExperience*float64(details.Experience) +
			weightRate*float64(details.Rate) +
			weightAvailability*float64(details.Availability) +
			weightMobility*float64(details.Mobility)))

	blockers := Blockers{}
	capped, reason := applyCaps(base, ratioRequired, details, talent, offer, matchedRequired, missingRequired, &blockers)

	final := capped + bonus
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}

	feedback.Reason = reason
	feedback.ExperienceGaps = missingRequired

	return MatchResult{
		TalentID:        talent.ID,
		Score:           final,
		Details:         details,
		MatchedRequired: matchedRequired,
		MissingRequired: missingRequired,
		MatchedDesired:  matchedDesired,
		Analysis:        buildAnalysis(final, reason, bonus),
		Feedback:        feedback,
		Blockers:        blockers,
	}
}

// splitSkills partitions the offer's skill list into skills the talent has an
// equivalent for and skills it lacks. The returned lists keep the offer's
// original spelling and order.
func splitSkills(talentSkills, offerSkills []string) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, wanted := range offerSkills {
		if hasEquivalentSkill(talentSkills, wanted) {
			matched = append(matched, wanted)
		} else {
			missing = append(missing, wanted)
		}
	}
	return matched, missing
}

func scoreExperience(talent TalentSnapshot, offer OfferSnapshot) int {
	if offer.MinExperience == nil || *offer.MinExperience <= 0 {
		return 100
	}
	required := float64(*offer.MinExperience)
	have := float64(talent.YearsExperience)
	switch {
	case have >= required:
		return 100
	case have >= 0.7*required:
		return 70
	case have >= 0.5*required:
		return 50
	default:
		return 30
	}
}

// scoreRate compares the talent's floor rate (minimum if set, otherwise the
// desired rate) against the offer's displayed maximum. Missing data on either
// side is not an incompatibility and scores 100.
func scoreRate(talent TalentSnapshot, offer OfferSnapshot, feedback *Feedback) int {
	talentRate := talent.DailyRateMin
	if talentRate == nil {
		talentRate = talent.DailyRate
	}
	if talentRate == nil || offer.DailyRateMax == nil {
		return 100
	}

	rate := float64(*talentRate)
	max := float64(*offer.DailyRateMax)
	switch {
	case rate <= max:
		return 100
	case rate <= max*1.1:
		return 80
	case rate <= max*1.2:
		feedback.RateTooHigh = true
		feedback.TargetRateRange = rateRange(offer)
		return 60
	default:
		feedback.RateTooHigh = true
		feedback.TargetRateRange = rateRange(offer)
		return 30
	}
}

func rateRange(offer OfferSnapshot) string {
	minPart := "N/A"
	if offer.DailyRateMin != nil {
		minPart = fmt.Sprintf("%d", *offer.DailyRateMin)
	}
	return fmt.Sprintf("%s-%d€/jour", minPart, *offer.DailyRateMax)
}

func scoreAvailability(talent TalentSnapshot) int {
	switch talent.Availability {
	case AvailabilityUnavailable:
		return 0
	case AvailabilityWithin3Months:
		return 70
	case AvailabilityWithin2Months:
		return 80
	default:
		return 100
	}
}

func scoreMobility(talent TalentSnapshot, offer OfferSnapshot) int {
	if talent.Mobility == offer.Mobility || talent.Mobility == MobilityFlexible {
		return 100
	}
	if offer.Mobility == MobilityOnSite && talent.Mobility == MobilityFullRemote {
		return 30
	}
	if offer.Mobility == MobilityFullRemote && talent.Mobility == MobilityOnSite {
		return 50
	}
	return 70
}

// applyCaps lowers the weighted base for disqualifying conditions. Caps never
// raise the score. The first reason set survives later rules, except the
// unavailability rule whose reason always wins the display slot.
func applyCaps(base int, ratioRequired float64, details SubScores, talent TalentSnapshot, offer OfferSnapshot, matched, missing []string, blockers *Blockers) (int, string) {
	capped := base
	reason := ""

	switch {
	case ratioRequired < 0.50:
		capped = min(capped, 40)
		blockers.InsufficientSkills = true
		reason = fmt.Sprintf("only %d/%d required skills (%d%%)",
			len(matched), len(offer.RequiredSkills), int(math.Round(ratioRequired*100)))
	case ratioRequired < 0.70:
		capped = min(capped, 60)
		reason = fmt.Sprintf("%d/%d required skills, partial profile",
			len(matched), len(offer.RequiredSkills))
	case ratioRequired < 0.85:
		capped = min(capped, 75)
		reason = "missing: " + strings.Join(missing, ", ")
	}

	if details.Rate <= 30 {
		capped = min(capped, 50)
		blockers.IncompatibleRate = true
		if reason == "" {
			reason = "rate significantly above budget"
		}
	}

	if details.Experience <= 30 {
		capped = min(capped, 55)
		blockers.InsufficientExperience = true
		if reason == "" {
			minExp := 0
			if offer.MinExperience != nil {
				minExp = *offer.MinExperience
			}
			reason = fmt.Sprintf("insufficient experience (%d years vs %d required)",
				talent.YearsExperience, minExp)
		}
	}

	if details.Availability == 0 {
		capped = min(capped, 20)
		blockers.Unavailable = true
		reason = "candidate currently unavailable"
	}

	return capped, reason
}

func buildAnalysis(score int, reason string, bonus int) string {
	var analysis string
	switch {
	case score >= 80:
		analysis = "excellent match"
	case score >= 60:
		analysis = "good profile"
	case score >= 40:
		analysis = "partial profile"
		if reason != "" {
			analysis += ": " + reason
		}
	default:
		analysis = "poorly suited"
		if reason != "" {
			analysis += ": " + reason
		}
	}
	if bonus > 0 {
		analysis += " (adjacent category, over-qualified credit applied)"
	}
	return analysis
}
