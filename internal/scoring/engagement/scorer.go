// internal/scoring/engagement/scorer.go
package engagement

import (
	"leadscore/internal/common/config"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// Scorer rates engagement opportunity: how much upside there is in building
// out a lead's review presence. The scale is inverted on purpose. Few
// reviews means a big, sellable gap; a business drowning in reviews has
// little need for the service.
type Scorer struct {
	cfg    config.EngagementConfig
	logger logger.Logger
}

func NewScorer(cfg config.EngagementConfig, log logger.Logger) *Scorer {
	return &Scorer{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "engagement-scorer"}),
	}
}

// Score maps review counts to opportunity. An unavailable listing is scored
// as zero reviews, the maximum opportunity. A weak average rating adds a
// fixed boost regardless of count, which keeps the score monotone
// non-increasing in review count for any fixed rating.
func (s *Scorer) Score(ind models.EngagementIndicators) int {
	count := 0
	rating := 0.0
	if ind.Retrieved {
		count = ind.ReviewCount
		rating = ind.AvgRating
	}

	score := baseOpportunity(count)
	if rating > 0 && rating <= s.cfg.LowRatingMax {
		score += s.cfg.LowRatingBoost
	}

	if score > 100 {
		score = 100
	}
	return score
}

func baseOpportunity(count int) int {
	switch {
	case count == 0:
		return 100
	case count < 10:
		return 85
	case count < 25:
		return 65
	case count < 50:
		return 45
	case count < 100:
		return 30
	default:
		return 10
	}
}
