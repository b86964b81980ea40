// Package types provides type definitions for structured data used throughout the resume-wizard system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKey identifies a canonical resume section independent of the
// language the section header was written in.
type SectionKey string

const (
	SectionContact    SectionKey = "contact"
	SectionProfile    SectionKey = "profile"
	SectionExperience SectionKey = "experience"
	SectionEducation  SectionKey = "education"
	SectionSkills     SectionKey = "skills"
	SectionLanguages  SectionKey = "languages"
	SectionInterests  SectionKey = "interests"
)

// Language selects which title dictionary is active for segmentation
// and which headers the generation prompt pins.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// Valid reports whether the language is one the system has a title
// dictionary for.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageSpanish
}
