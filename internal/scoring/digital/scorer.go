// internal/scoring/digital/scorer.go
package digital

import (
	"leadscore/internal/common/config"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// Scorer rates the quality of a lead's web presence. A fully modern site
// scores 100 and each missing capability subtracts its penalty. An
// unreachable or absent site scores 0: from a sales perspective no site is
// the worst possible digital presence, not an unknown.
type Scorer struct {
	cfg    config.DigitalConfig
	logger logger.Logger
}

func NewScorer(cfg config.DigitalConfig, log logger.Logger) *Scorer {
	return &Scorer{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "digital-scorer"}),
	}
}

func (s *Scorer) Score(ind models.DigitalIndicators) int {
	if !ind.Retrieved {
		return 0
	}

	score := 100
	if !ind.MobileFriendly {
		score -= s.cfg.MobilePenalty
	}
	if !ind.HasSSL {
		score -= s.cfg.SSLPenalty
	}
	if !ind.HasSEOBasics {
		score -= s.cfg.SEOPenalty
	}
	if !ind.HasBooking {
		score -= s.cfg.BookingPenalty
	}

	if score < 0 {
		score = 0
	}
	return score
}
