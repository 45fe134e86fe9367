package matching

import "testing"

func TestNormalizeSkill_CanonicalForms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  React ", "react"},
		{"Node.js", "nodejs"},
		{"JS", "javascript"},
		{"c#", "csharp"},
		{"C++", "cplusplus"},
		{"K8s", "kubernetes"},
		{"ci-cd", "cicd"},
		{"gitlab_ci", "gitlabci"},
		{"Active   Directory", "active directory"},
	}
	for _, c := range cases {
		if got := NormalizeSkill(c.in); got != c.want {
			t.Errorf("NormalizeSkill(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSkillsMatch_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"react", "React"},
		{"node", "Node.js"},
		{"js", "javascript"},
		{"js", "ES6"},
		{"k8s", "kubernetes"},
		{"postgres", "PostgreSQL"},
		{"react", "react native"},
	}
	for _, p := range pairs {
		if !SkillsMatch(p[0], p[1]) {
			t.Errorf("SkillsMatch(%q, %q) = false, want true", p[0], p[1])
		}
		if !SkillsMatch(p[1], p[0]) {
			t.Errorf("SkillsMatch(%q, %q) = false, want true (symmetry)", p[1], p[0])
		}
	}
}

func TestSkillsMatch_NotTransitive(t *testing.T) {
	// The substring rule chains react ~ react native ~ native but must not
	// close the chain.
	if !SkillsMatch("react", "react native") {
		t.Fatalf("react should match react native")
	}
	if !SkillsMatch("react native", "native") {
		t.Fatalf("react native should match native")
	}
	if SkillsMatch("react", "native") {
		t.Fatalf("react must not match native")
	}
}

func TestSkillsMatch_NoMatch(t *testing.T) {
	cases := [][2]string{
		{"java", "php"},
		{"", "react"},
		{"react", ""},
		{"   ", "react"},
	}
	for _, c := range cases {
		if SkillsMatch(c[0], c[1]) {
			t.Errorf("SkillsMatch(%q, %q) = true, want false", c[0], c[1])
		}
	}
}

func TestSkillsMatch_SynonymGroupsAreClosed(t *testing.T) {
	// Synonyms only match within their own group.
	if SkillsMatch("aws", "azure") {
		t.Fatalf("aws must not match azure")
	}
	if !SkillsMatch("aws", "Amazon Web Services") {
		t.Fatalf("aws should match its synonym")
	}
}
