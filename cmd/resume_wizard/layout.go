package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/lmoreno/resume-wizard/internal/layout"
	"github.com/lmoreno/resume-wizard/internal/observability"
	"github.com/lmoreno/resume-wizard/internal/types"
)

var layoutCmd = &cobra.Command{
	Use:   "layout [files...]",
	Short: "Compute page descriptions for resume text files",
	Long:  "Segments each plain-text resume into sections and computes a two-column A4 page description, written as JSON next to the input (or into --out-dir).",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runLayout,
}

var (
	layoutLang    string
	layoutPhoto   string
	layoutOutDir  string
	layoutPretty  bool
	layoutVerbose bool
)

func init() {
	layoutCmd.Flags().StringVar(&layoutLang, "lang", "", "Title dictionary language (en or es)")
	layoutCmd.Flags().StringVar(&layoutPhoto, "photo", "", "Path to a PNG or JPEG candidate photo")
	layoutCmd.Flags().StringVar(&layoutOutDir, "out-dir", "", "Directory for output files (default: next to input)")
	layoutCmd.Flags().BoolVar(&layoutPretty, "pretty", false, "Indent the output JSON")
	layoutCmd.Flags().BoolVarP(&layoutVerbose, "verbose", "v", false, "Print segmentation and layout summaries")
	rootCmd.AddCommand(layoutCmd)
}

func runLayout(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lang, err := resolveLanguage(layoutLang, cfg)
	if err != nil {
		return err
	}

	photo, err := loadPhoto(layoutPhoto)
	if err != nil {
		return err
	}

	geo := geometryFrom(cfg)

	var g errgroup.Group
	g.SetLimit(4)
	for _, path := range args {
		g.Go(func() error {
			return layoutOne(path, lang, photo, geo, cfg.Verbose || layoutVerbose, os.Stdout)
		})
	}
	return g.Wait()
}

func layoutOne(path string, lang types.Language, photo *types.Photo, geo layout.Geometry, verbose bool, out io.Writer) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	pd, doc := buildLayout(string(raw), lang, photo, geo)

	if verbose {
		printer := observability.NewPrinter(out)
		printer.PrintSegmentation(doc)
		printer.PrintLayout(pd)
	}

	data, err := marshalLayout(pd)
	if err != nil {
		return fmt.Errorf("failed to encode layout for %s: %w", path, err)
	}

	outPath := layoutOutputPath(path)
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	fmt.Printf("Wrote %s (%d pages)\n", outPath, len(pd.Pages))
	return nil
}

func marshalLayout(pd any) ([]byte, error) {
	if layoutPretty {
		return json.MarshalIndent(pd, "", "  ")
	}
	return json.Marshal(pd)
}

// layoutOutputPath derives the output file name from the input path,
// replacing the extension with .layout.json.
func layoutOutputPath(inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".layout.json"
	dir := layoutOutDir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base)
}
