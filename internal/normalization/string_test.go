package normalization

import "testing"

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"café", "cafe"},
		{"Ingénieur Système", "Ingenieur Systeme"},
		{"déjà vu", "deja vu"},
		{"plain ascii", "plain ascii"},
	}
	for _, c := range cases {
		if got := StripDiacritics(c.in); got != c.want {
			t.Errorf("StripDiacritics(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Développeur C++", "developpeur c"},
		{"  Ingénieur   Système ", "ingenieur systeme"},
		{"DATA/BI", "databi"},
		{"Chef de Projet (Infrastructure)", "chef de projet infrastructure"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Fold(c.in); got != c.want {
			t.Errorf("Fold(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
