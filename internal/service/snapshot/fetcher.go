// Package snapshot fetches a lightweight sample of a live page to enrich the
// analysis prompt. It is strictly best-effort: any failure yields an empty
// snapshot and the analysis continues without page material.
package snapshot

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Rhaast00/vervappweb/internal/util"
	"go.uber.org/zap"
)

// Snapshot is the sampled page material embedded into the analysis prompt.
type Snapshot struct {
	Title           string
	MetaDescription string
	CSSSample       string
	BodySample      string
}

// IsEmpty reports whether the snapshot carries no usable material.
func (s *Snapshot) IsEmpty() bool {
	return s == nil || (s.Title == "" && s.MetaDescription == "" && s.CSSSample == "" && s.BodySample == "")
}

type Fetcher struct {
	client         *http.Client
	maxSampleChars int
	logger         *zap.Logger
}

func NewFetcher(timeout time.Duration, maxSampleChars int, logger *zap.Logger) *Fetcher {
	if maxSampleChars <= 0 {
		maxSampleChars = 2000
	}
	return &Fetcher{
		client:         &http.Client{Timeout: timeout},
		maxSampleChars: maxSampleChars,
		logger:         logger,
	}
}

// Fetch downloads the page and extracts title, meta description, inline CSS
// and visible body text, each truncated to the configured sample size.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; vervapp-analyzer/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	snapshot := &Snapshot{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		snapshot.MetaDescription = strings.TrimSpace(desc)
	}

	var styles []string
	doc.Find("style").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			styles = append(styles, text)
		}
	})
	snapshot.CSSSample = util.TruncateString(strings.Join(styles, "\n"), f.maxSampleChars)

	body := util.SquashWhitespace(doc.Find("body").Text())
	snapshot.BodySample = util.TruncateString(body, f.maxSampleChars)

	f.logger.Debug("Page snapshot fetched",
		zap.String("url", url),
		zap.String("title", snapshot.Title),
		zap.Int("css_chars", len(snapshot.CSSSample)),
		zap.Int("body_chars", len(snapshot.BodySample)),
	)

	return snapshot, nil
}
