package segment

import (
	"strings"
	"testing"

	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

const fullResume = `Jane Doe
CONTACT
jane@example.com
600 123 456
PROFILE
Senior engineer focused on distributed systems.
WORK EXPERIENCE
Software Engineer, Acme Corp, Madrid
2020 - Present
Built distributed systems.
EDUCATION
BSc Computer Science, UPM, Madrid
2012 - 2016
SKILLS
Go, PostgreSQL, Kubernetes
LANGUAGES
Spanish (native), English (C1)
INTERESTS
Trail running`

func TestDocumentRecoversAllSections(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	doc := Document(fullResume, dict)

	if doc.CandidateName != "Jane Doe" {
		t.Errorf("unexpected candidate name: %q", doc.CandidateName)
	}

	want := []types.SectionKey{
		types.SectionContact,
		types.SectionProfile,
		types.SectionExperience,
		types.SectionEducation,
		types.SectionSkills,
		types.SectionLanguages,
		types.SectionInterests,
	}
	if len(doc.Order) != len(want) {
		t.Fatalf("expected %d sections, got %d (%v)", len(want), len(doc.Order), doc.Order)
	}
	for i, key := range want {
		if doc.Order[i] != key {
			t.Errorf("section %d: expected %s, got %s", i, key, doc.Order[i])
		}
		if len(doc.Sections[key]) == 0 {
			t.Errorf("section %s is empty", key)
		}
	}

	if got := doc.Sections[types.SectionExperience]; len(got) != 3 {
		t.Errorf("expected 3 experience lines, got %d: %v", len(got), got)
	}
}

func TestTitlelessInputGoesToProfile(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	body := "First free line\nSecond free line\nThird free line"
	doc := Body(body, dict)

	if len(doc.Order) != 1 || doc.Order[0] != types.SectionProfile {
		t.Fatalf("expected a single PROFILE section, got %v", doc.Order)
	}
	lines := doc.Sections[types.SectionProfile]
	if len(lines) != 3 || lines[0] != "First free line" || lines[2] != "Third free line" {
		t.Errorf("profile lines wrong: %v", lines)
	}
}

func TestHeaderRemainderBecomesFirstLine(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	doc := Body("SKILLS: Go, SQL", dict)

	lines := doc.Sections[types.SectionSkills]
	if len(lines) != 1 || lines[0] != "Go, SQL" {
		t.Errorf("expected inline remainder as first skills line, got %v", lines)
	}
}

func TestLeadingUnmatchedTextIsRetained(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	body := "Stray summary line\nSKILLS\nGo"
	doc := Body(body, dict)

	if got := doc.Sections[types.SectionProfile]; len(got) != 1 || got[0] != "Stray summary line" {
		t.Errorf("leading text not folded into profile: %v", got)
	}
	if got := doc.Sections[types.SectionSkills]; len(got) != 1 || got[0] != "Go" {
		t.Errorf("skills section wrong: %v", got)
	}
}

func TestSpanishDictionary(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageSpanish)
	body := "EXPERIENCIA LABORAL\nIngeniera de Software, Acme, Madrid\nEDUCACIÓN\nGrado en Informática"
	doc := Body(body, dict)

	if got := doc.Sections[types.SectionExperience]; len(got) != 1 {
		t.Errorf("experience lines wrong: %v", got)
	}
	if got := doc.Sections[types.SectionEducation]; len(got) != 1 {
		t.Errorf("education lines wrong: %v", got)
	}
}

// Segmenting only partitions lines; joining a section back together must
// reproduce the original text of that section verbatim.
func TestSegmentationIsPartitionOnly(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	doc := Document(fullResume, dict)

	got := strings.Join(doc.Sections[types.SectionExperience], "\n")
	want := "Software Engineer, Acme Corp, Madrid\n2020 - Present\nBuilt distributed systems."
	if got != want {
		t.Errorf("experience lines transformed:\ngot  %q\nwant %q", got, want)
	}
}

func TestEmptyInput(t *testing.T) {
	dict := titles.ForLanguage(types.LanguageEnglish)
	doc := Document("", dict)
	if doc.CandidateName != "" {
		t.Errorf("expected empty name, got %q", doc.CandidateName)
	}
	if len(doc.Sections) != 0 {
		t.Errorf("expected no sections, got %v", doc.Sections)
	}
}
