// internal/validation/validator.go
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"leadscore/internal/common/errors"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitsRe = regexp.MustCompile(`\d`)
)

// leadSchema is the structural contract every ingested record must satisfy
// before it enters the scoring stages. Contact fields are optional; a lead
// without a website or maps URL is still scoreable.
const leadSchema = `{
	"type": "object",
	"required": ["id", "businessName"],
	"properties": {
		"id":           {"type": "string", "minLength": 1},
		"businessName": {"type": "string", "minLength": 1},
		"address":      {"type": "string"},
		"zipCode":      {"type": "string"},
		"city":         {"type": "string"},
		"phone":        {"type": "string"},
		"email":        {"type": "string"},
		"websiteUrl":   {"type": "string"},
		"mapsUrl":      {"type": "string"}
	}
}`

// Validator checks ingested records for structural and contact-field
// problems. Structural failures reject the lead; contact-field problems only
// blank the offending field so the lead keeps flowing.
type Validator struct {
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewValidator(log logger.Logger) (*Validator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(leadSchema))
	if err != nil {
		return nil, fmt.Errorf("compile lead schema: %w", err)
	}
	return &Validator{
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"component": "validation"}),
	}, nil
}

// ValidEmail reports whether s looks like a deliverable address.
func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidPhone accepts US numbers with 10 digits, or 11 when prefixed with a
// country code of 1. Formatting characters are ignored.
func ValidPhone(s string) bool {
	digits := digitsRe.FindAllString(s, -1)
	switch len(digits) {
	case 10:
		return true
	case 11:
		return digits[0] == "1"
	default:
		return false
	}
}

// ValidURL requires an absolute http or https URL with a host.
func ValidURL(s string) bool {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate checks one record. On success the returned record has malformed
// contact fields blanked; on failure the error carries VALIDATION_FAILED.
func (v *Validator) Validate(lead models.LeadRecord) (models.LeadRecord, error) {
	doc := map[string]interface{}{
		"id":           lead.ID,
		"businessName": lead.BusinessName,
		"address":      lead.Address,
		"zipCode":      lead.ZipCode,
		"city":         lead.City,
		"phone":        lead.Phone,
		"email":        lead.Email,
		"websiteUrl":   lead.Website,
		"mapsUrl":      lead.MapsURL,
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return lead, errors.NewValidationFailedError(fmt.Sprintf("lead %s: %v", lead.ID, err))
	}
	if !result.Valid() {
		descs := make([]string, len(result.Errors()))
		for i, d := range result.Errors() {
			descs[i] = d.String()
		}
		return lead, errors.NewValidationFailedError(
			fmt.Sprintf("lead %s: %s", lead.ID, strings.Join(descs, "; ")))
	}

	if lead.Email != "" && !ValidEmail(lead.Email) {
		v.logger.Warn("dropping malformed email", map[string]interface{}{
			"lead_id": lead.ID,
			"email":   lead.Email,
		})
		lead.Email = ""
	}
	if lead.Phone != "" && !ValidPhone(lead.Phone) {
		v.logger.Warn("dropping malformed phone", map[string]interface{}{
			"lead_id": lead.ID,
			"phone":   lead.Phone,
		})
		lead.Phone = ""
	}
	if lead.Website != "" && !ValidURL(lead.Website) {
		v.logger.Warn("dropping malformed website url", map[string]interface{}{
			"lead_id": lead.ID,
			"url":     lead.Website,
		})
		lead.Website = ""
	}
	if lead.MapsURL != "" && !ValidURL(lead.MapsURL) {
		v.logger.Warn("dropping malformed maps url", map[string]interface{}{
			"lead_id": lead.ID,
			"url":     lead.MapsURL,
		})
		lead.MapsURL = ""
	}

	return lead, nil
}
