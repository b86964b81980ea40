package titles

import (
	"testing"

	"github.com/lmoreno/resume-wizard/internal/types"
)

func TestForLanguageFallsBackToEnglish(t *testing.T) {
	d := ForLanguage(types.Language("fr"))
	if d.Language != types.LanguageEnglish {
		t.Errorf("expected English fallback, got %s", d.Language)
	}
}

func TestMatchIsCaseInsensitive(t *testing.T) {
	d := ForLanguage(types.LanguageEnglish)

	key, rest, ok := d.Match("work experience")
	if !ok {
		t.Fatal("expected a match for lowercase header")
	}
	if key != types.SectionExperience {
		t.Errorf("expected experience key, got %s", key)
	}
	if rest != "" {
		t.Errorf("expected empty remainder, got %q", rest)
	}
}

func TestMatchStripsColonRemainder(t *testing.T) {
	d := ForLanguage(types.LanguageSpanish)

	key, rest, ok := d.Match("PERFIL: Ingeniero con 10 años de experiencia")
	if !ok {
		t.Fatal("expected a match")
	}
	if key != types.SectionProfile {
		t.Errorf("expected profile key, got %s", key)
	}
	if rest != "Ingeniero con 10 años de experiencia" {
		t.Errorf("unexpected remainder: %q", rest)
	}
}

func TestMatchRespectsDictionaryOrder(t *testing.T) {
	// A line extending a known header must still resolve to the first
	// entry whose title is a prefix of it.
	d := ForLanguage(types.LanguageEnglish)

	key, _, ok := d.Match("LANGUAGES AND CERTIFICATIONS")
	if !ok || key != types.SectionLanguages {
		t.Errorf("expected languages key, got %s (ok=%v)", key, ok)
	}
}

func TestMatchRejectsPlainContent(t *testing.T) {
	d := ForLanguage(types.LanguageEnglish)
	if _, _, ok := d.Match("Built distributed systems."); ok {
		t.Error("content line should not match any header")
	}
}

func TestTitleLookup(t *testing.T) {
	d := ForLanguage(types.LanguageSpanish)
	if got := d.Title(types.SectionExperience); got != "EXPERIENCIA LABORAL" {
		t.Errorf("unexpected title: %q", got)
	}
	if got := d.Title(types.SectionKey("missing")); got != "" {
		t.Errorf("expected empty title for unknown key, got %q", got)
	}
}
