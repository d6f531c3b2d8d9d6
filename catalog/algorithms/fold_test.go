package algorithms

import "testing"

func TestFoldDiacritics(t *testing.T) {
	cases := map[string]string{
		"mērvienība":    "mervieniba",
		"kopā":          "kopa",
		"Griesti":       "Griesti",
		"materiāli":     "materiali",
		"špaktelēšana":  "spaktelesana",
		"":              "",
	}

	for in, want := range cases {
		if got := FoldDiacritics(in); got != want {
			t.Errorf("FoldDiacritics(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFoldKey(t *testing.T) {
	if got := FoldKey("  Materiālu Izmaksas "); got != "materialu izmaksas" {
		t.Errorf("FoldKey() = %q", got)
	}
}

func TestCleanKey(t *testing.T) {
	cases := map[string]string{
		"Materiālu izmaksas (EUR)": "materialuizmaksaseur",
		"darba_alga":               "darbaalga",
		"Vien. cena, EUR":          "viencenaeur",
		"---":                      "",
	}

	for in, want := range cases {
		if got := CleanKey(in); got != want {
			t.Errorf("CleanKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEnglishStemmer(t *testing.T) {
	s := NewEnglishStemmer()

	if got := s.Stem("materials"); got != "material" {
		t.Errorf("Stem(materials) = %q, want material", got)
	}

	// Cached second call returns the same result.
	if got := s.Stem("materials"); got != "material" {
		t.Errorf("cached Stem(materials) = %q, want material", got)
	}

	if got := s.StemTokens("materials costs"); got != "material cost" {
		t.Errorf("StemTokens() = %q, want \"material cost\"", got)
	}

	// Non-ASCII tokens are left alone.
	if got := s.StemTokens("materiāli costs"); got != "materiāli cost" {
		t.Errorf("StemTokens() = %q, want \"materiāli cost\"", got)
	}
}

func TestIsASCIIWord(t *testing.T) {
	if IsASCIIWord("materiāli") {
		t.Error("IsASCIIWord should reject non-ASCII words")
	}
	if !IsASCIIWord("labor") {
		t.Error("IsASCIIWord should accept plain ASCII words")
	}
	if IsASCIIWord("") {
		t.Error("IsASCIIWord should reject empty string")
	}
}
