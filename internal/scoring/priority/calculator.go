// internal/scoring/priority/calculator.go
package priority

import (
	"fmt"
	"math"

	"leadscore/internal/common/config"
	"leadscore/internal/models"
)

// Calculator combines the three sub-scores into a total, assigns the sales
// tier and monthly value bracket, and raises the action flags.
type Calculator struct {
	weights config.WeightConfig
	tiers   config.TierConfig

	redesignBelow int
	reviewsAbove  int
}

// NewCalculator validates the weight triple up front. A drifted weight set
// silently skews every score in the batch, so this fails loudly instead.
func NewCalculator(cfg config.ScoringConfig) (*Calculator, error) {
	sum := cfg.Weights.Business + cfg.Weights.Digital + cfg.Weights.Engagement
	if math.Abs(sum-1.0) > 1e-9 {
		return nil, fmt.Errorf("scoring weights must sum to 1.0, got %.4f", sum)
	}
	if cfg.Weights.Business < 0 || cfg.Weights.Digital < 0 || cfg.Weights.Engagement < 0 {
		return nil, fmt.Errorf("scoring weights must be non-negative")
	}
	if cfg.Tiers.HotMin <= cfg.Tiers.WarmMin {
		return nil, fmt.Errorf("hot tier cut (%d) must be above warm tier cut (%d)",
			cfg.Tiers.HotMin, cfg.Tiers.WarmMin)
	}
	return &Calculator{
		weights:       cfg.Weights,
		tiers:         cfg.Tiers,
		redesignBelow: cfg.RedesignBelow,
		reviewsAbove:  cfg.ReviewsAbove,
	}, nil
}

// Priority is the combined classification for one lead.
type Priority struct {
	TotalScore     int
	Tier           models.Tier
	EstimatedValue string
	NeedsRedesign  bool
	NeedsReviews   bool
}

// Calculate combines the sub-scores. The scorers already bound their output
// to [0,100], but out-of-range inputs are clamped here as well rather than
// rejected, so the total always lands in the same range.
func (c *Calculator) Calculate(businessScore, digitalScore, engagementScore int) Priority {
	businessScore = clamp(businessScore)
	digitalScore = clamp(digitalScore)
	engagementScore = clamp(engagementScore)

	total := int(math.Round(
		c.weights.Business*float64(businessScore) +
			c.weights.Digital*float64(digitalScore) +
			c.weights.Engagement*float64(engagementScore)))

	tier := models.TierCold
	value := c.tiers.ColdValue
	switch {
	case total >= c.tiers.HotMin:
		tier = models.TierHot
		value = c.tiers.HotValue
	case total >= c.tiers.WarmMin:
		tier = models.TierWarm
		value = c.tiers.WarmValue
	}

	return Priority{
		TotalScore:     total,
		Tier:           tier,
		EstimatedValue: value,
		NeedsRedesign:  digitalScore < c.redesignBelow,
		NeedsReviews:   engagementScore > c.reviewsAbove,
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
