// internal/scoring/business/scorer.go
package business

import (
	"strings"

	"leadscore/internal/common/config"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
	"leadscore/pkg/rules"
)

// Size categories derived from the same indicator classes that drive the
// score. Premium wins when both chain and premium patterns hit.
const (
	SizeSmall   = "Small"
	SizeChain   = "Chain"
	SizePremium = "Premium"
)

// Scorer rates commercial strength from the business name and address alone.
// Every lead starts at the baseline; chain, premium, and location bonuses
// stack, and the result is clamped to [0,100].
type Scorer struct {
	cfg    config.BusinessConfig
	rules  *rules.RuleSet
	logger logger.Logger
}

func NewScorer(cfg config.BusinessConfig, rs *rules.RuleSet, log logger.Logger) *Scorer {
	if rs == nil {
		rs = rules.Default(cfg.ChainBonus, cfg.PremiumBonus, cfg.LocationBonus)
	}
	return &Scorer{
		cfg:    cfg,
		rules:  rs,
		logger: log.WithFields(map[string]interface{}{"component": "business-scorer"}),
	}
}

// Result carries the score plus the classification used for it.
type Result struct {
	Score        int
	SizeCategory string
}

// Score evaluates one lead. Missing name or address simply contribute no
// bonus; the baseline still applies.
func (s *Scorer) Score(lead models.LeadRecord) Result {
	score := s.cfg.Baseline

	name := strings.ToLower(lead.BusinessName)
	address := strings.ToLower(lead.Address + " " + lead.ZipCode)

	isChain, chainPts := s.match("chain", name, address)
	isPremium, premiumPts := s.match("premium", name, address)
	inPrimeLocation, locationPts := s.match("location", name, address)

	if isChain {
		score += chainPts
	}
	if isPremium {
		score += premiumPts
	}
	if inPrimeLocation {
		score += locationPts
	}

	size := SizeSmall
	switch {
	case isPremium:
		size = SizePremium
	case isChain:
		size = SizeChain
	}

	return Result{Score: clamp(score), SizeCategory: size}
}

// match reports whether any pattern of the named class hits, along with the
// point value the class contributes. The rule set owns the point values so a
// registry file can retune them without a code change.
func (s *Scorer) match(class, name, address string) (bool, int) {
	c := s.rules.Class(class)
	if c == nil {
		return false, 0
	}
	field := name
	if c.Target == rules.TargetAddress {
		field = address
	}
	for _, p := range c.Patterns {
		if strings.Contains(field, strings.ToLower(p)) {
			return true, c.Weight
		}
	}
	return false, 0
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
