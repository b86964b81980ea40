// Package entries groups the lines of an experience or education section
// into structured entries (title/location, date range, description).
package entries

import (
	"regexp"
	"strings"

	"github.com/lmoreno/resume-wizard/internal/types"
)

var (
	// Year-range dates: "2020 - Present", "2017 – 2020", "2019 a 2021".
	yearRangePattern = regexp.MustCompile(`(?i)\d{4}\s*(-|–|to|a)\s*(\d{4}|Present|Actual|Hoy|Actualidad)`)

	// Month-name-plus-year dates: "March 2021", "Marzo de 2021".
	monthYearPattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\b.{0,8}\b\d{4}\b`)
)

// IsDateLine reports whether a line is a date range or month-plus-year
// date. The check is stateless so re-testing an already-identified date
// line always yields the same answer.
func IsDateLine(line string) bool {
	return yearRangePattern.MatchString(line) || monthYearPattern.MatchString(line)
}

// Classify walks the section lines in order and produces entries.
//
// The first content line of the section opens an entry as its title. A
// date line attaches to the open entry and arms the classifier: the line
// right after a date may open the next entry with any title shape (see
// SplitTitleLocation), and while armed a line with two or more commas
// still does. Anything else accumulates as description; a description
// line containing " at " or " en " no longer reads as a title once
// another description line sits between it and the date. Blank lines are
// hard separators and always start a fresh entry. The classifier never
// fails; a section with no recognizable structure degrades to a single
// entry carrying all lines.
func Classify(lines []string) []types.Entry {
	var result []types.Entry
	var current *types.Entry
	armed := false     // a date line was seen; a strong title closes the entry
	afterDate := false // the previous content line was a date line

	flush := func() {
		if current != nil {
			result = append(result, *current)
			current = nil
		}
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			flush()
			armed = false
			afterDate = false
			continue
		}

		if IsDateLine(line) {
			if current == nil {
				current = &types.Entry{}
			}
			if current.DateRange == "" {
				current.DateRange = line
			} else {
				current.Description = append(current.Description, line)
			}
			armed = true
			afterDate = true
			continue
		}

		startsEntry := current == nil ||
			(armed && strings.Count(line, ",") >= 2) ||
			(afterDate && titleShaped(line))
		if startsEntry {
			flush()
			title, location := SplitTitleLocation(line)
			current = &types.Entry{TitlePart: title, LocationPart: location}
			armed = false
			afterDate = false
			continue
		}

		current.Description = append(current.Description, line)
		afterDate = false
	}

	flush()
	return result
}

// titleShaped reports whether a line has the surface form of an entry
// title: a trailing comma-separated location segment or an " en "/" at "
// employer separator.
func titleShaped(line string) bool {
	if strings.Count(line, ",") >= 2 {
		return true
	}
	for _, sep := range []string{" en ", " at "} {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return false
}

// SplitTitleLocation separates a trailing location segment from a title
// line. Lines with two or more commas give up their last comma segment as
// the location; otherwise " en " / " at " acts as the separator. Lines
// with neither keep the full text as title.
func SplitTitleLocation(line string) (title, location string) {
	if strings.Count(line, ",") >= 2 {
		idx := strings.LastIndex(line, ",")
		return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
	}
	for _, sep := range []string{" en ", " at "} {
		if idx := strings.LastIndex(line, sep); idx > 0 {
			return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+len(sep):])
		}
	}
	return strings.TrimSpace(line), ""
}
