package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmoreno/resume-wizard/internal/db"
	"github.com/lmoreno/resume-wizard/internal/extraction"
	"github.com/lmoreno/resume-wizard/internal/llm"
	"github.com/lmoreno/resume-wizard/internal/observability"
	"github.com/lmoreno/resume-wizard/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job posting",
	Long:  "Scores how well a resume matches a job posting using Gemini, optionally rewriting the resume for the job and persisting the analysis to PostgreSQL.",
	RunE:  runAnalyze,
}

var (
	analyzeJobFile    string
	analyzeJobURL     string
	analyzeResumeFile string
	analyzeLang       string
	analyzeRewrite    bool
	analyzeRewriteOut string
	analyzeDBURL      string
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeJobFile, "job", "", "Path to the job posting text or HTML file")
	analyzeCmd.Flags().StringVar(&analyzeJobURL, "job-url", "", "URL of the job posting")
	analyzeCmd.Flags().StringVar(&analyzeResumeFile, "resume", "", "Path to the resume text file (required)")
	analyzeCmd.Flags().StringVar(&analyzeLang, "lang", "", "Language for rewriting section headers (en or es)")
	analyzeCmd.Flags().BoolVar(&analyzeRewrite, "rewrite", false, "Also rewrite the resume targeting the job")
	analyzeCmd.Flags().StringVar(&analyzeRewriteOut, "rewrite-out", "", "Path to write the rewritten resume (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL URL for persisting the analysis (default: DATABASE_URL)")

	if err := analyzeCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeJobFile == "" && analyzeJobURL == "" {
		return fmt.Errorf("either --job or --job-url is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(analyzeLang, cfg)
	if err != nil {
		return err
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set (set the environment variable or 'api_key' in the config file)")
	}

	ctx := context.Background()

	jobText, err := loadJobText(ctx)
	if err != nil {
		return err
	}

	resumeRaw, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume %s: %w", analyzeResumeFile, err)
	}
	resumeText := string(resumeRaw)

	client, err := llm.NewGeminiClient(ctx, apiKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}
	defer func() { _ = client.Close() }()

	report, err := client.ScoreCompatibility(ctx, jobText, resumeText, lang)
	if err != nil {
		return fmt.Errorf("compatibility scoring failed: %w", err)
	}
	observability.NewPrinter(os.Stdout).PrintReport(report)

	rec := &types.AnalysisRecord{
		JobText:     jobText,
		ResumeText:  resumeText,
		Language:    lang,
		Score:       report.Score,
		Explanation: report.Explanation,
	}

	if analyzeRewrite {
		rewritten, err := client.RewriteResume(ctx, jobText, resumeText, lang)
		if err != nil {
			return fmt.Errorf("resume rewrite failed: %w", err)
		}
		rec.RewrittenText = rewritten
		if analyzeRewriteOut != "" {
			if err := os.WriteFile(analyzeRewriteOut, []byte(rewritten), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", analyzeRewriteOut, err)
			}
			fmt.Printf("Wrote %s\n", analyzeRewriteOut)
		} else {
			fmt.Println(rewritten)
		}
	}

	return persistAnalysis(ctx, cfg.DatabaseURL, rec)
}

// loadJobText reads the job posting from a file or fetches it from a URL,
// extracting readable text from HTML either way.
func loadJobText(ctx context.Context) (string, error) {
	if analyzeJobURL != "" {
		text, err := extraction.FromURL(ctx, analyzeJobURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, nil
	}

	raw, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return "", fmt.Errorf("failed to read job posting %s: %w", analyzeJobFile, err)
	}
	return extraction.FromBytes(raw)
}

// persistAnalysis saves the record when a database URL is configured.
// No URL means persistence is simply skipped.
func persistAnalysis(ctx context.Context, cfgURL string, rec *types.AnalysisRecord) error {
	dbURL := analyzeDBURL
	if dbURL == "" {
		dbURL = cfgURL
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return nil
	}

	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := database.SaveAnalysis(ctx, rec); err != nil {
		return fmt.Errorf("failed to persist analysis: %w", err)
	}
	fmt.Printf("Saved analysis %s\n", rec.ID)
	return nil
}
