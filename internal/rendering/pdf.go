package rendering

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/lmoreno/resume-wizard/internal/types"
)

// mmToInch converts the page metadata into the units PrintToPDF expects.
const mmToInch = 1.0 / 25.4

// Renderer turns a page description into final document bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, pd *types.PageDescription) ([]byte, error)
}

// ChromeRenderer prints the emitted HTML through headless Chrome.
type ChromeRenderer struct {
	// ChromePath overrides the browser binary; empty uses chromedp's
	// default discovery.
	ChromePath string
	// Timeout bounds one print run. Zero means DefaultTimeout.
	Timeout time.Duration
}

// DefaultTimeout bounds a single Chrome print run.
const DefaultTimeout = 60 * time.Second

// NewChromeRenderer returns a renderer using the given browser binary
// path (may be empty).
func NewChromeRenderer(chromePath string) *ChromeRenderer {
	return &ChromeRenderer{ChromePath: chromePath}
}

// RenderPDF emits HTML for the page description, loads it in headless
// Chrome, and prints it at the description's exact page size.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, pd *types.PageDescription) ([]byte, error) {
	html, err := EmitHTML(pd)
	if err != nil {
		return nil, err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	timeout := r.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancelRun := context.WithTimeout(browserCtx, timeout)
	defer cancelRun()

	// Chrome needs a file URL; navigate to a temp file holding the HTML.
	tmpDir, err := os.MkdirTemp("", "resume-wizard-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "resume.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &RenderError{Message: "failed to write HTML", Cause: err}
	}

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(pd.Metadata.WidthMM * mmToInch).
				WithPaperHeight(pd.Metadata.HeightMM * mmToInch).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "chrome print failed", Cause: err}
	}

	return pdf, nil
}
