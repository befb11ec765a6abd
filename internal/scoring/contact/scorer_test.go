// internal/scoring/contact/scorer_test.go
package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscore/internal/common/config"
)

func newTestScorer() *Scorer {
	return NewScorer(config.ContactConfig{
		GenericKeywords:       []string{"info", "contact", "admin", "support", "sales", "hello", "noreply", "no-reply"},
		DecisionMakerKeywords: []string{"owner", "founder", "ceo", "president", "director", "gm"},
		PersonalDomains:       []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"},
	})
}

func TestClassify(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		email string
		want  string
	}{
		{"", QualityNone},
		{"not-an-email", QualityNone},
		{"@acme.com", QualityNone},
		{"owner@", QualityNone},
		{"info@acmefitness.com", QualityGeneric},
		{"sales.team@acmefitness.com", QualityGeneric},
		{"owner@acmefitness.com", QualityDecisionMaker},
		{"jane.founder@gmail.com", QualityDecisionMaker},
		{"jane.doe@gmail.com", QualityPersonal},
		{"jane.doe@acmefitness.com", QualityBusiness},
		{"JANE.DOE@ACMEFITNESS.COM", QualityBusiness},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Classify(tt.email), "email=%q", tt.email)
	}
}

func TestClassify_GenericBeatsDecisionMaker(t *testing.T) {
	s := newTestScorer()
	assert.Equal(t, QualityGeneric, s.Classify("info.owner@acme.com"))
}
