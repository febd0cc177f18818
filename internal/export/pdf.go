// Package export rasterizes a rendered visual tree into a paginated PDF
// using a headless browser. Export always works from the rendered tree at
// natural size; preview scaling never leaks into print output.
// Requires Chrome/Chromium to be installed on the system.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/resume-studio/internal/render"
	"github.com/jonathan/resume-studio/internal/render/htmlout"
)

// DefaultTimeout bounds one print job, including browser startup.
const DefaultTimeout = 60 * time.Second

// A4 paper metrics in inches for PrintToPDF.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// Options configures the export.
type Options struct {
	Timeout time.Duration

	// ChromePath overrides browser discovery, for containers that ship
	// Chromium at a fixed location.
	ChromePath string
}

// DefaultOptions returns sensible defaults for exporting.
func DefaultOptions() *Options {
	return &Options{Timeout: DefaultTimeout}
}

// PDF prints the tree to a paginated A4 document and returns the bytes.
func PDF(ctx context.Context, tree *render.Tree, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if tree == nil || tree.Root == nil {
		return nil, fmt.Errorf("export: nothing to print")
	}

	htmlPath, cleanup, err := stageHTML(tree)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthInches).
				WithPaperHeight(paperHeightInches).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("export: browser print failed: %w", err)
	}
	return pdf, nil
}

// stageHTML realizes the tree into a temp file the browser can load.
func stageHTML(tree *render.Tree) (path string, cleanup func(), err error) {
	dir, err := os.MkdirTemp("", "resume-export-")
	if err != nil {
		return "", nil, fmt.Errorf("export: failed to create temp dir: %w", err)
	}
	path = filepath.Join(dir, "resume.html")
	if err := os.WriteFile(path, []byte(htmlout.Document(tree)), 0o644); err != nil {
		_ = os.RemoveAll(dir)
		return "", nil, fmt.Errorf("export: failed to stage HTML: %w", err)
	}
	return path, func() { _ = os.RemoveAll(dir) }, nil
}
