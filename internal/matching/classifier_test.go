package matching

import (
	"reflect"
	"testing"
)

func TestClassify_TitleDominatesSkills(t *testing.T) {
	cases := []struct {
		name   string
		title  string
		skills []string
		want   Category
	}{
		{"project manager with infra wording", "Chef de Projet Infrastructure", nil, CategoryChefDeProjet},
		{"accented developer title", "Développeur Full Stack", []string{"react", "node"}, CategoryDeveloppeur},
		{"system engineer accented", "Ingénieur Système", nil, CategoryIngenieurSystemeReseau},
		{"devops", "Ingénieur DevOps", []string{"kubernetes", "terraform"}, CategoryDevopsSRE},
		{"scrum master", "Scrum Master", nil, CategoryScrumMaster},
		{"security", "Analyste SOC", []string{"siem", "edr"}, CategoryCybersecurite},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Classify(c.title, c.skills); got != c.want {
				t.Fatalf("Classify(%q, %v) = %s, want %s", c.title, c.skills, got, c.want)
			}
		})
	}
}

func TestClassify_SkillsOnly(t *testing.T) {
	got := Classify("", []string{"terraform", "aws", "lambda"})
	if got != CategoryIngenieurCloud {
		t.Fatalf("Classify from skills = %s, want %s", got, CategoryIngenieurCloud)
	}
}

func TestClassify_FallsBackToAutre(t *testing.T) {
	cases := []struct {
		title  string
		skills []string
	}{
		{"", nil},
		{"Plombier", nil},
		{"go", nil},
		{"   ", []string{}},
	}
	for _, c := range cases {
		if got := Classify(c.title, c.skills); got != CategoryAutre {
			t.Errorf("Classify(%q, %v) = %s, want AUTRE", c.title, c.skills, got)
		}
	}
}

func TestCanMatch_HierarchyIsDirected(t *testing.T) {
	cases := []struct {
		talent Category
		offer  Category
		want   bool
	}{
		{CategoryArchitecte, CategoryIngenieurCloud, true},
		{CategoryArchitecte, CategoryDeveloppeur, true},
		{CategoryIngenieurCloud, CategoryArchitecte, false},
		{CategorySupportTechnicien, CategoryHelpdeskN1, true},
		{CategorySupportTechnicien, CategoryArchitecte, false},
		{CategoryChefDeProjet, CategoryScrumMaster, true},
		{CategoryScrumMaster, CategoryChefDeProjet, false},
		{CategoryDeveloppeur, CategoryDeveloppeur, true},
		{"", CategoryDeveloppeur, true},
		{CategoryDeveloppeur, "", true},
	}
	for _, c := range cases {
		if got := CanMatch(c.talent, c.offer); got != c.want {
			t.Errorf("CanMatch(%s, %s) = %v, want %v", c.talent, c.offer, got, c.want)
		}
	}
}

func TestCompatibleCategories(t *testing.T) {
	got := CompatibleCategories(CategorySupportTechnicien)
	want := []Category{CategorySupportTechnicien, CategoryHelpdeskN1, CategoryHelpdeskN2}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CompatibleCategories = %v, want %v", got, want)
	}

	if got := CompatibleCategories(""); got != nil {
		t.Fatalf("CompatibleCategories(\"\") = %v, want nil", got)
	}

	// A category without hierarchy entries is only compatible with itself.
	got = CompatibleCategories(CategoryProductOwner)
	want = []Category{CategoryProductOwner}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("CompatibleCategories = %v, want %v", got, want)
	}
}
