package ingestion

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jonathan/ats-scorer/internal/fetch"
)

// browserTimeout bounds the headless render fallback.
const browserTimeout = 30 * time.Second

// FetchJobPosting fetches a job description from a URL and returns cleaned
// posting text. Platform detection picks selectors tuned for the major job
// boards. When useBrowser is set and the plain HTTP fetch yields too little
// text, the page is re-rendered with a headless browser.
func FetchJobPosting(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	platform := fetch.DetectPlatform(urlStr)
	if verbose {
		log.Printf("[INGEST] URL: %s (platform: %s)", urlStr, platform)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}

	contentSelectors := fetch.PlatformContentSelectors(platform)
	noiseSelectors := fetch.PlatformNoiseSelectors(platform)

	text, err := fetch.ExtractPostingText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return "", fmt.Errorf("failed to extract posting text: %w", err)
	}
	if verbose {
		log.Printf("[INGEST] Extracted %d chars over HTTP", len(text))
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		if verbose {
			log.Printf("[INGEST] Content below %d chars, rendering with browser", fetch.MinContentLength)
		}
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, browserTimeout, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[INGEST] Browser rendering failed: %v, keeping HTTP content", browserErr)
			}
		} else if rendered, extractErr := fetch.ExtractPostingText(browserHTML, contentSelectors, noiseSelectors...); extractErr == nil && len(rendered) > len(text) {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("no readable text found at %s", urlStr)
	}
	return cleaned, nil
}
