// internal/models/lead.go
package models

// Tier is the sales priority bucket assigned from the total score.
type Tier string

const (
	TierHot  Tier = "HOT"
	TierWarm Tier = "WARM"
	TierCold Tier = "COLD"
)

// Stage tracks where a batch is in the pipeline. Transitions are strictly
// forward: Pending -> Validated -> Scored -> Ranked -> Exported.
type Stage string

const (
	StagePending   Stage = "PENDING"
	StageValidated Stage = "VALIDATED"
	StageScored    Stage = "SCORED"
	StageRanked    Stage = "RANKED"
	StageExported  Stage = "EXPORTED"
)

// LeadRecord is one validated input lead. Email has already passed syntax
// validation upstream; Website and MapsURL may be empty.
type LeadRecord struct {
	ID           string `json:"id"`
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	ZipCode      string `json:"zipCode"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"websiteUrl"`
	MapsURL      string `json:"mapsUrl"`
	SourceFile   string `json:"sourceFile,omitempty"`
}

// DigitalIndicators holds the parsed website quality signals. Retrieved is
// false when the site was unreachable or no URL was given; in that case the
// quality flags are meaningless and the scorer applies the minimum score.
type DigitalIndicators struct {
	Retrieved      bool `json:"retrieved"`
	MobileFriendly bool `json:"mobileFriendly"`
	HasSSL         bool `json:"hasSsl"`
	HasSEOBasics   bool `json:"hasSeoBasics"`
	HasBooking     bool `json:"hasBooking"`
}

// DigitalUnavailable is the indicator set used when website retrieval failed
// or no URL was provided.
func DigitalUnavailable() DigitalIndicators {
	return DigitalIndicators{}
}

// EngagementIndicators holds the parsed maps-listing review signals.
// AvgRating is 0 when absent. Retrieved false means the listing was
// unreachable or no URL was given, which the scorer treats as zero reviews.
type EngagementIndicators struct {
	Retrieved   bool    `json:"retrieved"`
	ReviewCount int     `json:"reviewCount"`
	AvgRating   float64 `json:"avgRating"`
}

// EngagementUnavailable is the indicator set used when listing retrieval
// failed or no URL was provided.
func EngagementUnavailable() EngagementIndicators {
	return EngagementIndicators{}
}

// ScoredLead is the per-lead pipeline output. It is created once and never
// mutated afterwards.
type ScoredLead struct {
	LeadRecord

	BusinessScore   int    `json:"businessScore"`
	DigitalScore    int    `json:"digitalScore"`
	EngagementScore int    `json:"engagementScore"`
	TotalScore      int    `json:"totalScore"`
	Tier            Tier   `json:"tier"`
	EstimatedValue  string `json:"estimatedMonthlyValue"`
	NeedsRedesign   bool   `json:"needsRedesign"`
	NeedsReviews    bool   `json:"needsReviews"`

	// Informational metadata, not part of the weighted total.
	SizeCategory   string `json:"sizeCategory"`
	ContactQuality string `json:"contactQuality"`
}

// LeadOutcome is the per-lead result collected into the batch: either a
// scored lead or a recorded failure. Failed leads still carry a ScoredLead
// with zero sub-scores and a COLD classification so the batch output stays
// complete.
type LeadOutcome struct {
	Lead       ScoredLead `json:"lead"`
	Failed     bool       `json:"failed"`
	FailReason string     `json:"failReason,omitempty"`
}

// BatchResult is the ranked output of one pipeline run.
type BatchResult struct {
	BatchID  string       `json:"batchId"`
	Stage    Stage        `json:"stage"`
	Leads    []ScoredLead `json:"leads"`
	Total    int          `json:"total"`
	Failures int          `json:"failures"`
}
