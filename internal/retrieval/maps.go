// internal/retrieval/maps.go
package retrieval

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"leadscore/internal/common/logger"
	"leadscore/internal/common/metrics"
	"leadscore/internal/models"
)

var (
	reviewCountRe = regexp.MustCompile(`([\d,]+)\s+reviews`)
	ratingRe      = regexp.MustCompile(`aria-label="([\d.]+)\s+stars"`)
)

// MapsAnalyzer pulls review counts and average ratings out of a lead's maps
// listing page. Listings render these in stable text fragments, so plain
// pattern extraction is enough; no DOM walk required.
type MapsAnalyzer struct {
	fetcher Fetcher
	cache   *Cache
	logger  logger.Logger
}

func NewMapsAnalyzer(fetcher Fetcher, cache *Cache, log logger.Logger) *MapsAnalyzer {
	return &MapsAnalyzer{
		fetcher: fetcher,
		cache:   cache,
		logger:  log.WithFields(map[string]interface{}{"component": "maps-analyzer"}),
	}
}

// Analyze fetches the listing at url. Empty url or a failed fetch yields
// unavailable indicators; the engagement scorer treats that as zero reviews.
func (a *MapsAnalyzer) Analyze(ctx context.Context, url string) models.EngagementIndicators {
	if url == "" {
		return models.EngagementIndicators{}
	}

	if a.cache != nil {
		var cached models.EngagementIndicators
		if ok := a.cache.GetEngagement(ctx, url, &cached); ok {
			return cached
		}
	}

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		metrics.RetrievalFailures.WithLabelValues("maps").Inc()
		a.logger.Warn("maps retrieval failed", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
		return models.EngagementIndicators{}
	}

	ind := extractEngagementIndicators(body)
	if a.cache != nil {
		a.cache.SetEngagement(ctx, url, ind)
	}
	return ind
}

func extractEngagementIndicators(body string) models.EngagementIndicators {
	ind := models.EngagementIndicators{Retrieved: true}

	if m := reviewCountRe.FindStringSubmatch(body); m != nil {
		raw := strings.ReplaceAll(m[1], ",", "")
		if n, err := strconv.Atoi(raw); err == nil {
			ind.ReviewCount = n
		}
	}
	if m := ratingRe.FindStringSubmatch(body); m != nil {
		if r, err := strconv.ParseFloat(m[1], 64); err == nil && r > 0 && r <= 5 {
			ind.AvgRating = r
		}
	}

	return ind
}
