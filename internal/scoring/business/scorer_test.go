// internal/scoring/business/scorer_test.go
package business

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscore/internal/common/config"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
	"leadscore/pkg/rules"
)

func defaultConfig() config.BusinessConfig {
	return config.BusinessConfig{
		Baseline:      40,
		ChainBonus:    25,
		PremiumBonus:  20,
		LocationBonus: 15,
	}
}

func newTestScorer() *Scorer {
	return NewScorer(defaultConfig(), nil, logger.NewNoOpLogger())
}

func TestScore_BaselineOnly(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{
		BusinessName: "Joe's Garage Workout",
		Address:      "812 Elm St",
	})
	assert.Equal(t, 40, res.Score)
	assert.Equal(t, SizeSmall, res.SizeCategory)
}

func TestScore_ChainAndLocation(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{
		BusinessName: "Acme National Fitness Co",
		Address:      "4100 McKinney Ave Suite 200",
	})
	assert.Equal(t, 80, res.Score, "baseline 40 + chain 25 + location 15")
	assert.Equal(t, SizeChain, res.SizeCategory)
}

func TestScore_PremiumWinsSizeCategory(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{
		BusinessName: "Elite Fitness Club",
		Address:      "1 Plaza Dr",
	})
	assert.Equal(t, 100, res.Score, "baseline 40 + chain 25 + premium 20 + location 15")
	assert.Equal(t, SizePremium, res.SizeCategory)
}

func TestScore_ZipCodeTriggersLocation(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{
		BusinessName: "Quiet Gym",
		Address:      "99 Back Rd",
		ZipCode:      "75205",
	})
	assert.Equal(t, 55, res.Score)
}

func TestScore_ClampsAtHundred(t *testing.T) {
	rs := &rules.RuleSet{
		Classes: []rules.IndicatorClass{
			{Name: "chain", Target: rules.TargetName, Weight: 90, Patterns: []string{"fitness"}},
			{Name: "premium", Target: rules.TargetName, Weight: 90, Patterns: []string{"elite"}},
		},
	}
	s := NewScorer(defaultConfig(), rs, logger.NewNoOpLogger())
	res := s.Score(models.LeadRecord{BusinessName: "Elite Fitness"})
	assert.Equal(t, 100, res.Score)
}

func TestScore_EmptyNameAndAddress(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{})
	assert.Equal(t, 40, res.Score)
	assert.Equal(t, SizeSmall, res.SizeCategory)
}

func TestScore_CaseInsensitive(t *testing.T) {
	res := newTestScorer().Score(models.LeadRecord{
		BusinessName: "GOLD'S GYM",
	})
	assert.Equal(t, 65, res.Score)
}
