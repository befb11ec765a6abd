// internal/retrieval/website.go
package retrieval

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"leadscore/internal/common/logger"
	"leadscore/internal/common/metrics"
	"leadscore/internal/models"
)

// bookingKeywords are matched against link text, button labels, and hrefs.
var bookingKeywords = []string{
	"book now", "book a", "booking", "schedule", "free trial",
	"join now", "sign up", "get started", "mindbody", "calendly",
}

// WebsiteAnalyzer fetches a lead's website and extracts the digital-presence
// indicators the digital scorer consumes. A failed fetch is reported as
// Retrieved=false, never as an error; availability is a scoring signal.
type WebsiteAnalyzer struct {
	fetcher Fetcher
	cache   *Cache
	logger  logger.Logger
}

func NewWebsiteAnalyzer(fetcher Fetcher, cache *Cache, log logger.Logger) *WebsiteAnalyzer {
	return &WebsiteAnalyzer{
		fetcher: fetcher,
		cache:   cache,
		logger:  log.WithFields(map[string]interface{}{"component": "website-analyzer"}),
	}
}

// Analyze inspects the page at url. An empty url short-circuits to
// unavailable indicators.
func (a *WebsiteAnalyzer) Analyze(ctx context.Context, url string) models.DigitalIndicators {
	if url == "" {
		return models.DigitalIndicators{}
	}

	if a.cache != nil {
		var cached models.DigitalIndicators
		if ok := a.cache.GetDigital(ctx, url, &cached); ok {
			return cached
		}
	}

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		metrics.RetrievalFailures.WithLabelValues("website").Inc()
		a.logger.Warn("website retrieval failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return models.DigitalIndicators{}
	}

	ind := extractDigitalIndicators(url, body)
	if a.cache != nil {
		a.cache.SetDigital(ctx, url, ind)
	}
	return ind
}

func extractDigitalIndicators(url, body string) models.DigitalIndicators {
	ind := models.DigitalIndicators{Retrieved: true}
	ind.HasSSL = strings.HasPrefix(strings.ToLower(url), "https://")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		// Unparseable markup still counts as a live site; only the
		// HTML-derived indicators stay false.
		return ind
	}

	doc.Find(`meta[name="viewport"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, ok := s.Attr("content"); ok && strings.Contains(content, "width") {
			ind.MobileFriendly = true
			return false
		}
		return true
	})

	title := strings.TrimSpace(doc.Find("title").First().Text())
	metaDesc := ""
	if content, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		metaDesc = strings.TrimSpace(content)
	}
	ind.HasSEOBasics = title != "" && metaDesc != ""

	doc.Find("a, button").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(s.Text())
		href, _ := s.Attr("href")
		href = strings.ToLower(href)
		for _, kw := range bookingKeywords {
			if strings.Contains(text, kw) || strings.Contains(href, strings.ReplaceAll(kw, " ", "")) {
				ind.HasBooking = true
				return false
			}
		}
		return true
	})

	return ind
}
