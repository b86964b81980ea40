// Package contact classifies the lines of a resume's contact section into
// typed fields (email, phone, web, address, birthdate).
package contact

import (
	"regexp"
	"strings"

	"github.com/lmoreno/resume-wizard/internal/types"
)

var (
	// Label prefixes the generator sometimes emits; stripped before
	// classification so downstream rendering does not duplicate them.
	labelPrefix = regexp.MustCompile(`(?i)^(e-?mail|correo|phone|tel[eé]fono|tel|m[oó]vil|mobile|web|address|direcci[oó]n|birth\s?date|birth|nacimiento|fecha de nacimiento)\s*:\s*`)

	emailKeyword = regexp.MustCompile(`(?i)e-?mail`)
	phonePattern = regexp.MustCompile(`\d{3,4}[\s.-]?\d{3,4}[\s.-]?\d{3,4}`)
	phoneKeyword = regexp.MustCompile(`(?i)\b(tel|phone|m[oó]vil|mobile)\b`)
	datePattern  = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
	birthKeyword = regexp.MustCompile(`(?i)birth|nacimiento`)
	addrKeyword  = regexp.MustCompile(`(?i)\b(street|address|direcci[oó]n|city|pa[ií]s|country)\b`)
)

// Classify labels every line of the contact section. The rule table runs
// in priority order per line and the first match wins; anything
// unrecognized is kept as OTHER so no contact data is lost.
func Classify(lines []string) []types.ContactField {
	fields := make([]types.ContactField, 0, len(lines))
	for _, raw := range lines {
		fields = append(fields, classifyLine(raw))
	}
	return fields
}

func classifyLine(raw string) types.ContactField {
	value := strings.TrimSpace(labelPrefix.ReplaceAllString(strings.TrimSpace(raw), ""))

	field := types.ContactField{RawLine: raw, Value: value}
	switch {
	case strings.Contains(raw, "@") || emailKeyword.MatchString(raw):
		field.Kind = types.ContactEmail
	case phonePattern.MatchString(value) || phoneKeyword.MatchString(raw):
		field.Kind = types.ContactPhone
	case strings.Contains(raw, "linkedin.com/") || strings.Contains(raw, "github.com/"):
		field.Kind = types.ContactWeb
	case datePattern.MatchString(value) || birthKeyword.MatchString(raw):
		field.Kind = types.ContactBirthdate
	case addrKeyword.MatchString(raw):
		field.Kind = types.ContactAddress
	default:
		field.Kind = types.ContactOther
	}
	return field
}
