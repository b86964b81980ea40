package llm

import (
	"fmt"
	"strings"

	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

// RewritePrompt instructs the model to produce a resume whose first line
// is the candidate name and whose section headers are exactly the ones
// the active title dictionary defines, so the segmenter can split the
// output deterministically.
func RewritePrompt(jobText, resumeText string, lang types.Language) string {
	dict := titles.ForLanguage(lang)

	var headers []string
	for _, e := range dict.Entries {
		headers = append(headers, e.Title)
	}

	var sb strings.Builder
	sb.WriteString("You are a professional resume writer. Rewrite the resume below so it targets the job offer.\n\n")
	sb.WriteString("STRICT OUTPUT FORMAT:\n")
	sb.WriteString("- The first line is the candidate's full name, nothing else.\n")
	fmt.Fprintf(&sb, "- Use exactly these section headers, one per line, in this order when the section has content: %s.\n", strings.Join(headers, ", "))
	sb.WriteString("- Inside experience and education, each entry is: a title line \"Role, Company, City\", then a date line like \"2020 - 2023\", then description lines.\n")
	sb.WriteString("- Plain text only. No markdown, no bullets characters, no commentary.\n")
	fmt.Fprintf(&sb, "- Write in language code %q.\n\n", string(lang))
	fmt.Fprintf(&sb, "JOB OFFER:\n%s\n\nRESUME:\n%s\n", jobText, resumeText)
	return sb.String()
}

// ScorePrompt instructs the model to return a JSON compatibility verdict.
func ScorePrompt(jobText, resumeText string, lang types.Language) string {
	var sb strings.Builder
	sb.WriteString("You are a technical recruiter. Rate how well the resume below matches the job offer.\n\n")
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n")
	sb.WriteString("{\n  \"score\": int,  // 0-100\n  \"explanation\": string  // two or three sentences\n}\n\n")
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base the score on evidence in the text, do not invent experience.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no code blocks.\n")
	fmt.Fprintf(&sb, "- Write the explanation in language code %q.\n\n", string(lang))
	fmt.Fprintf(&sb, "JOB OFFER:\n%s\n\nRESUME:\n%s\n", jobText, resumeText)
	return sb.String()
}
