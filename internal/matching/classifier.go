package matching

import (
	"strings"

	"github.com/talentbridge/talentbridge-backend/internal/normalization"
)

// classifyMinScore guards against a spurious single short-keyword hit
// promoting a profile out of AUTRE.
const classifyMinScore = 5

// Classify assigns exactly one professional category to a (job title, skills)
// pair using weighted keyword matching. Title hits weigh three times skill
// hits, and each hit contributes the keyword's character length, so longer,
// more specific keywords dominate. Never fails: unusable input yields AUTRE.
func Classify(title string, skills []string) Category {
	titleText := normalization.Fold(title)
	skillsText := normalization.Fold(strings.Join(skills, " "))

	best := CategoryAutre
	bestScore := 0
	for _, entry := range tables.Categories {
		if entry.Category == CategoryAutre {
			continue
		}
		score := 0
		for _, kw := range entry.Keywords {
			k := normalization.Fold(kw)
			if k == "" {
				continue
			}
			if titleText != "" && strings.Contains(titleText, k) {
				score += 3 * len(k)
			}
			if skillsText != "" && strings.Contains(skillsText, k) {
				score += len(k)
			}
		}
		for _, sk := range entry.Skills {
			k := normalization.Fold(sk)
			if k == "" {
				continue
			}
			if skillsText != "" && strings.Contains(skillsText, k) {
				score += len(k)
			}
		}
		// Strict comparison: ties resolve to the earliest category in
		// the enumeration order.
		if score > bestScore {
			bestScore = score
			best = entry.Category
		}
	}

	if bestScore < classifyMinScore {
		return CategoryAutre
	}
	return best
}

// CanMatch reports whether a talent of the given category can satisfy an
// offer of the given category. An undeclared category on either side is
// permissive.
func CanMatch(talentCategory, offerCategory Category) bool {
	if talentCategory == "" || offerCategory == "" {
		return true
	}
	if talentCategory == offerCategory {
		return true
	}
	for _, c := range tables.Hierarchy[talentCategory] {
		if c == offerCategory {
			return true
		}
	}
	return false
}

// CompatibleCategories returns the talent's own category followed by every
// category it can also satisfy per the hierarchy table.
func CompatibleCategories(talentCategory Category) []Category {
	if talentCategory == "" {
		return nil
	}
	out := make([]Category, 0, 1+len(tables.Hierarchy[talentCategory]))
	out = append(out, talentCategory)
	out = append(out, tables.Hierarchy[talentCategory]...)
	return out
}
