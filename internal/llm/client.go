// Package llm wraps the text-generation collaborator: scoring a resume
// against a job offer and rewriting the resume into the fixed section
// format the layout engine expects.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-1.5-flash"

// Client is an abstraction over text-generation providers.
type Client interface {
	// RewriteResume rewrites the resume targeting the job offer, using
	// exactly the section headers of the given language.
	RewriteResume(ctx context.Context, jobText, resumeText string, lang types.Language) (string, error)
	// ScoreCompatibility rates how well the resume matches the job offer.
	ScoreCompatibility(ctx context.Context, jobText, resumeText string, lang types.Language) (*types.CompatibilityReport, error)
	// Close releases any resources held by the client.
	Close() error
}

// GeminiClient implements Client on Google Gemini.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini-backed client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// RewriteResume asks the model for a full rewritten resume and returns it
// as plain text ready for segmentation.
func (c *GeminiClient) RewriteResume(ctx context.Context, jobText, resumeText string, lang types.Language) (string, error) {
	text, err := c.generate(ctx, RewritePrompt(jobText, resumeText, lang))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ScoreCompatibility asks the model for a JSON verdict and parses it.
func (c *GeminiClient) ScoreCompatibility(ctx context.Context, jobText, resumeText string, lang types.Language) (*types.CompatibilityReport, error) {
	text, err := c.generate(ctx, ScorePrompt(jobText, resumeText, lang))
	if err != nil {
		return nil, err
	}

	var report types.CompatibilityReport
	if err := json.Unmarshal([]byte(CleanJSONBlock(text)), &report); err != nil {
		return nil, fmt.Errorf("failed to parse compatibility response: %w", err)
	}
	if report.Score < 0 {
		report.Score = 0
	}
	if report.Score > 100 {
		report.Score = 100
	}
	return &report, nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string) (string, error) {
	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(0.1) // consistent output across retries

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	return extractText(resp)
}

// extractText flattens the first candidate's text parts.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("response contained no text parts")
	}
	return sb.String(), nil
}
