package matching

import "strings"

var skillCharStripper = strings.NewReplacer(".", "", "-", "", "_", "")

// NormalizeSkill canonicalizes a raw skill string: lowercase, trim, drop
// dots/dashes/underscores, collapse whitespace, then expand the short list of
// common abbreviations ("js" to "javascript", "c#" to "csharp", ...).
func NormalizeSkill(raw string) string {
	out := strings.ToLower(strings.TrimSpace(raw))
	out = skillCharStripper.Replace(out)
	out = strings.Join(strings.Fields(out), " ")
	if canonical, ok := tables.Abbreviations[out]; ok {
		return canonical
	}
	return out
}

// SkillsMatch reports whether two skill strings denote the same skill: equal
// after normalization, one a substring of the other, or members of the same
// synonym group.
//
// The substring rule makes the relation symmetric but not transitive
// ("react" matches "react native", "react native" matches "native", yet
// "react" does not match "native"), and it can produce false positives for
// very short skill names. Both behaviors are intentional and pinned by tests;
// changing them changes persisted scores.
func SkillsMatch(a, b string) bool {
	na := NormalizeSkill(a)
	nb := NormalizeSkill(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return true
	}
	ga, okA := synonymGroupOf[na]
	gb, okB := synonymGroupOf[nb]
	return okA && okB && ga == gb
}

// hasEquivalentSkill reports whether any talent skill matches the wanted one.
func hasEquivalentSkill(talentSkills []string, wanted string) bool {
	for _, s := range talentSkills {
		if SkillsMatch(s, wanted) {
			return true
		}
	}
	return false
}
