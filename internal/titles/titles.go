// Package titles defines the canonical per-language section title
// dictionaries. The upstream generator is instructed to emit exactly these
// headers, and the segmenter matches them back in dictionary order.
package titles

import (
	"strings"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// TitleEntry pairs a section key with the literal header text for one language.
type TitleEntry struct {
	Key   types.SectionKey
	Title string
}

// Dictionary is the ordered title list for one language. Order matters:
// lookups test entries front to back and the first match wins, which
// disambiguates prefix collisions between headers.
type Dictionary struct {
	Language types.Language
	Entries  []TitleEntry
}

var english = Dictionary{
	Language: types.LanguageEnglish,
	Entries: []TitleEntry{
		{types.SectionContact, "CONTACT"},
		{types.SectionProfile, "PROFILE"},
		{types.SectionExperience, "WORK EXPERIENCE"},
		{types.SectionEducation, "EDUCATION"},
		{types.SectionSkills, "SKILLS"},
		{types.SectionLanguages, "LANGUAGES"},
		{types.SectionInterests, "INTERESTS"},
	},
}

var spanish = Dictionary{
	Language: types.LanguageSpanish,
	Entries: []TitleEntry{
		{types.SectionContact, "CONTACTO"},
		{types.SectionProfile, "PERFIL"},
		{types.SectionExperience, "EXPERIENCIA LABORAL"},
		{types.SectionEducation, "EDUCACIÓN"},
		{types.SectionSkills, "HABILIDADES"},
		{types.SectionLanguages, "IDIOMAS"},
		{types.SectionInterests, "INTERESES"},
	},
}

// ForLanguage returns the dictionary for the given language. Unknown
// languages fall back to English so segmentation always has a dictionary
// to work with.
func ForLanguage(lang types.Language) Dictionary {
	switch lang {
	case types.LanguageSpanish:
		return spanish
	default:
		return english
	}
}

// Title returns the localized header for a section key, or "" when the
// dictionary has no entry for it.
func (d Dictionary) Title(key types.SectionKey) string {
	for _, e := range d.Entries {
		if e.Key == key {
			return e.Title
		}
	}
	return ""
}

// Match tests whether a trimmed input line opens a section. It returns the
// matched key and the remainder of the line after the header (with an
// optional ":" separator removed), or ok=false when no header matches.
// Matching is case-insensitive and tests entries in dictionary order.
func (d Dictionary) Match(line string) (key types.SectionKey, rest string, ok bool) {
	trimmed := strings.TrimSpace(line)
	upper := strings.ToUpper(trimmed)
	for _, e := range d.Entries {
		if strings.HasPrefix(upper, e.Title) {
			rest = strings.TrimSpace(trimmed[len(e.Title):])
			rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))
			return e.Key, rest, true
		}
	}
	return "", "", false
}
