package service

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"kkotdam/logging"
	"kkotdam/models"
	"kkotdam/utils"
)

// Card output formats
const (
	CardFormatPNG = "png"
	CardFormatPDF = "pdf"
)

var (
	// ErrInvalidCardFormat is returned for formats other than png and pdf
	ErrInvalidCardFormat = errors.New("invalid card format")
	// ErrRendererUnavailable is returned when no headless Chrome could be started
	ErrRendererUnavailable = errors.New("card renderer unavailable")
)

//go:embed templates/card.html
var templateFS embed.FS

var cardTemplate = template.Must(template.ParseFS(templateFS, "templates/card.html"))

// waitForImages resolves once every <img> has loaded or failed
const waitForImages = `
	(function() {
		return Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
			return new Promise((resolve) => {
				if (img.complete) {
					resolve();
					return;
				}
				const timeout = setTimeout(() => resolve(), 5000);
				img.onload = () => { clearTimeout(timeout); resolve(); };
				img.onerror = () => { clearTimeout(timeout); resolve(); };
			});
		}));
	})();
`

// CardServiceInterface defines the contract for combination card rendering
type CardServiceInterface interface {
	Render(ctx context.Context, request models.RecommendationRequest, combination models.RecommendationResponse, format string) ([]byte, string, error)
}

// CardService renders combination cards with headless Chrome
type CardService struct {
	chromePath string
	timeout    time.Duration
}

// NewCardService creates a new CardService. An empty chromePath falls back to detection.
func NewCardService(chromePath string, timeout time.Duration) *CardService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &CardService{
		chromePath: chromePath,
		timeout:    timeout,
	}
}

// Ensure CardService implements CardServiceInterface
var _ CardServiceInterface = (*CardService)(nil)

type cardData struct {
	CombinationID   string
	CombinationName string
	Description     string
	ImageURL        string
	Occasion        string
	Recipient       string
	Mood            string
	Size            string
	Flowers         []models.FlowerInfo
}

// detectChromePath returns the configured Chrome path when it exists, then checks common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// RenderHTML renders the card template for a combination
func (s *CardService) RenderHTML(request models.RecommendationRequest, combination models.RecommendationResponse) (string, error) {
	data := cardData{
		CombinationID:   combination.CombinationID,
		CombinationName: combination.CombinationName,
		Description:     combination.Description,
		ImageURL:        combination.CombinationImageURL,
		Occasion:        utils.OptionLabel(utils.KindOccasion, request.Occasion),
		Recipient:       utils.OptionLabel(utils.KindRecipient, request.Recipient),
		Mood:            utils.OptionLabel(utils.KindMood, request.Mood),
		Size:            utils.OptionLabel(utils.KindSize, request.Size),
		Flowers:         combination.Flowers,
	}

	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Render renders the combination card as PNG or PDF and returns the bytes and their content type
func (s *CardService) Render(ctx context.Context, request models.RecommendationRequest, combination models.RecommendationResponse, format string) ([]byte, string, error) {
	var contentType string
	switch format {
	case CardFormatPNG:
		contentType = "image/png"
	case CardFormatPDF:
		contentType = "application/pdf"
	default:
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidCardFormat, format)
	}

	html, err := s.RenderHTML(request, combination)
	if err != nil {
		return nil, "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	chromePath := detectChromePath(s.chromePath)
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	start := time.Now()
	var out []byte
	err = chromedp.Run(chromedpCtx,
		// 120mm x 170mm at 96 DPI
		chromedp.EmulateViewport(454, 643),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(waitForImages, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if format == CardFormatPNG {
				return chromedp.FullScreenshot(&out, 90).Do(ctx)
			}
			var err error
			// 120mm x 170mm = 4.72" x 6.69"
			out, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(4.72).
				WithPaperHeight(6.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		if chromePath == "" {
			return nil, "", fmt.Errorf("%w: %v", ErrRendererUnavailable, err)
		}
		return nil, "", fmt.Errorf("failed to render card: %w", err)
	}

	logging.Ctx(ctx).Info().
		Str("combinationId", combination.CombinationID).
		Str("format", format).
		Int("bytes", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("🖼️  Card rendered")
	return out, contentType, nil
}
