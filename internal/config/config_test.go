package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"language":"es","margin":12,"left_column_width":70,"verbose":true}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Language != "es" || cfg.Margin != 12 || cfg.LeftColumnWidth != 70 || !cfg.Verbose {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("expected an error for an empty path")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := writeConfig(t, `{"language": `)
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty is valid", Config{}, false},
		{"valid full", Config{Language: "en", Margin: 12, LeftColumnWidth: 70}, false},
		{"bad language", Config{Language: "de"}, true},
		{"margin too small", Config{Margin: 5}, true},
		{"margin too large", Config{Margin: 30}, true},
		{"negative column", Config{LeftColumnWidth: -1}, true},
		{"column swallowed by margins", Config{Margin: 15, LeftColumnWidth: 28}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
