// Package extraction turns uploaded documents and job-posting URLs into
// the plain text the wizard feeds to the generation collaborator.
package extraction

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeWizard/1.0)"

// Error represents a failure extracting text from a source.
type Error struct {
	Source  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Source, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures URL fetching.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout, UserAgent: DefaultUserAgent}
}

// FromURL fetches a page and returns its visible text.
func FromURL(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{Source: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &Error{Source: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Source: urlStr, Message: "failed to read response body", Cause: err}
	}

	return FromBytes(body)
}

// FromBytes extracts plain text from uploaded content. HTML is reduced to
// its visible text; anything else passes through as-is.
func FromBytes(content []byte) (string, error) {
	if looksLikeHTML(content) {
		return FromHTML(string(content))
	}
	return cleanWhitespace(string(content)), nil
}

// FromHTML parses markup and returns the visible body text with script,
// style, and navigation noise removed.
func FromHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &Error{Source: "html", Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .sidebar, .cookie-banner").Remove()

	root := doc.Find("main, article")
	if root.Length() == 0 {
		root = doc.Find("body")
	}

	var sb strings.Builder
	root.First().Find("h1, h2, h3, h4, p, li, td, div").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return // only leaf elements, so text is not duplicated
		}
		if text := strings.TrimSpace(s.Text()); text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})
	if sb.Len() == 0 {
		sb.WriteString(root.First().Text())
	}

	return cleanWhitespace(sb.String()), nil
}

var (
	htmlHint   = regexp.MustCompile(`(?i)<\s*(!doctype|html|body|div|p|h1)\b`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
	spaceRuns  = regexp.MustCompile(`[ \t]+`)
	edgeSpaces = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
)

func looksLikeHTML(content []byte) bool {
	head := content
	if len(head) > 1024 {
		head = head[:1024]
	}
	return htmlHint.Match(head)
}

func cleanWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRuns.ReplaceAllString(text, " ")
	text = edgeSpaces.ReplaceAllString(text, "")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
