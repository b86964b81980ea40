package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmoreno/resume-wizard/internal/rendering"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a resume text file to PDF",
	Long:  "Computes the two-column layout for a resume text file and renders it to an A4 PDF through headless Chrome.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var (
	renderLang       string
	renderPhoto      string
	renderOut        string
	renderChromePath string
	renderTimeout    time.Duration
)

func init() {
	renderCmd.Flags().StringVar(&renderLang, "lang", "", "Title dictionary language (en or es)")
	renderCmd.Flags().StringVar(&renderPhoto, "photo", "", "Path to a PNG or JPEG candidate photo")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "Output PDF path (default: input name with .pdf)")
	renderCmd.Flags().StringVar(&renderChromePath, "chrome-path", "", "Path to the Chrome/Chromium binary")
	renderCmd.Flags().DurationVar(&renderTimeout, "timeout", rendering.DefaultTimeout, "Rendering timeout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(renderLang, cfg)
	if err != nil {
		return err
	}

	photo, err := loadPhoto(renderPhoto)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	pd, _ := buildLayout(string(raw), lang, photo, geometryFrom(cfg))

	chromePath := renderChromePath
	if chromePath == "" {
		chromePath = cfg.ChromePath
	}
	renderer := rendering.NewChromeRenderer(chromePath)
	renderer.Timeout = renderTimeout

	pdf, err := renderer.RenderPDF(context.Background(), pd)
	if err != nil {
		return fmt.Errorf("PDF rendering failed: %w", err)
	}

	outPath := renderOut
	if outPath == "" {
		base := strings.TrimSuffix(args[0], filepath.Ext(args[0]))
		outPath = base + ".pdf"
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s (%d pages)\n", outPath, len(pd.Pages))
	return nil
}
