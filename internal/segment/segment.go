// Package segment splits raw generated resume text into ordered, named
// sections using a per-language title dictionary.
package segment

import (
	"strings"

	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

// Document segments a full generated resume: the first non-empty line is
// the candidate name, everything after it is the body. The function never
// fails; malformed input degrades into a PROFILE-only document.
func Document(raw string, dict titles.Dictionary) *types.SegmentedDocument {
	name, body := splitName(raw)
	doc := Body(body, dict)
	doc.CandidateName = name
	return doc
}

// Body segments resume text whose name line has already been removed.
// It walks lines top to bottom in a single pass: a line whose prefix
// matches a dictionary title opens that section, any other line appends to
// the open section. Lines arriving before any title are kept in a
// synthetic PROFILE bucket rather than dropped.
func Body(body string, dict titles.Dictionary) *types.SegmentedDocument {
	doc := &types.SegmentedDocument{
		Sections: make(map[types.SectionKey][]string),
	}

	var current types.SectionKey
	open := false

	appendLine := func(key types.SectionKey, line string) {
		if _, seen := doc.Sections[key]; !seen {
			doc.Order = append(doc.Order, key)
			doc.Sections[key] = []string{}
		}
		if line != "" {
			doc.Sections[key] = append(doc.Sections[key], line)
		}
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if key, rest, ok := dict.Match(trimmed); ok {
			current, open = key, true
			appendLine(key, rest)
			continue
		}

		if !open {
			current, open = types.SectionProfile, true
		}
		appendLine(current, trimmed)
	}

	return doc
}

// splitName peels the first non-empty line off the raw text and returns it
// together with the remaining body.
func splitName(raw string) (name, body string) {
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		return trimmed, strings.Join(lines[i+1:], "\n")
	}
	return "", ""
}
