// internal/scoring/contact/scorer.go
package contact

import (
	"strings"

	"leadscore/internal/common/config"
)

// Quality labels, strongest first. The label is informational metadata on
// the scored lead; it never enters the weighted total.
const (
	QualityNone          = "None"
	QualityGeneric       = "Generic"
	QualityPersonal      = "Personal"
	QualityBusiness      = "Business"
	QualityDecisionMaker = "DecisionMaker"
)

// Scorer classifies how actionable a lead's email contact is. A role
// address like info@ is near worthless for outreach; a named owner on a
// business domain is gold.
type Scorer struct {
	cfg config.ContactConfig
}

func NewScorer(cfg config.ContactConfig) *Scorer {
	return &Scorer{cfg: cfg}
}

// Classify maps an email address to a quality label. Generic role keywords
// short-circuit: info@ stays Generic even on a business domain.
func (s *Scorer) Classify(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return QualityNone
	}
	local, domain := email[:at], email[at+1:]

	for _, kw := range s.cfg.GenericKeywords {
		if strings.Contains(local, kw) {
			return QualityGeneric
		}
	}
	for _, kw := range s.cfg.DecisionMakerKeywords {
		if strings.Contains(local, kw) {
			return QualityDecisionMaker
		}
	}
	for _, d := range s.cfg.PersonalDomains {
		if domain == d {
			return QualityPersonal
		}
	}
	return QualityBusiness
}
