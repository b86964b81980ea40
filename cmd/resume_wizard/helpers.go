package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/lmoreno/resume-wizard/internal/config"
	"github.com/lmoreno/resume-wizard/internal/layout"
	"github.com/lmoreno/resume-wizard/internal/segment"
	"github.com/lmoreno/resume-wizard/internal/titles"
	"github.com/lmoreno/resume-wizard/internal/types"
)

// loadConfig loads and validates the optional JSON config file.
// A missing --config flag yields an empty config.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return &config.Config{}, nil
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// geometryFrom applies config overrides on top of the default page geometry.
func geometryFrom(cfg *config.Config) layout.Geometry {
	geo := layout.DefaultGeometry()
	if cfg.Margin != 0 {
		geo.Margin = cfg.Margin
	}
	if cfg.LeftColumnWidth != 0 {
		geo.LeftColumnWidth = cfg.LeftColumnWidth
	}
	return geo
}

// resolveLanguage picks the language from flag, then config, then default.
func resolveLanguage(flagValue string, cfg *config.Config) (types.Language, error) {
	raw := flagValue
	if raw == "" {
		raw = cfg.Language
	}
	if raw == "" {
		return types.LanguageEnglish, nil
	}
	lang := types.Language(raw)
	if !lang.Valid() {
		return "", fmt.Errorf("unsupported language %q (want en or es)", raw)
	}
	return lang, nil
}

// loadPhoto reads a photo file and sniffs its MIME type. An empty path
// means no photo.
func loadPhoto(path string) (*types.Photo, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read photo %s: %w", path, err)
	}
	return &types.Photo{
		MIMEType: http.DetectContentType(data),
		Bytes:    data,
	}, nil
}

// buildLayout segments resume text and computes its page description.
// The segmented document is returned alongside so callers can report on it.
func buildLayout(resumeText string, lang types.Language, photo *types.Photo, geo layout.Geometry) (*types.PageDescription, *types.SegmentedDocument) {
	dict := titles.ForLanguage(lang)
	doc := segment.Document(resumeText, dict)
	return layout.NewEngine(geo).Layout(doc, photo, dict), doc
}
