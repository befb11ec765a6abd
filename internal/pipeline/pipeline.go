// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadscore/internal/common/logger"
	"leadscore/internal/common/metrics"
	"leadscore/internal/common/observability"
	"leadscore/internal/models"
	"leadscore/internal/retrieval"
	"leadscore/internal/scoring/business"
	"leadscore/internal/scoring/contact"
	"leadscore/internal/scoring/digital"
	"leadscore/internal/scoring/engagement"
	"leadscore/internal/scoring/priority"
	"leadscore/internal/validation"
)

// Pipeline runs a lead batch through validation, retrieval, scoring and
// ranking. One bad lead never sinks the batch: per-lead failures are
// recorded as COLD outcomes with zero sub-scores and processing continues.
type Pipeline struct {
	validator  *validation.Validator
	website    *retrieval.WebsiteAnalyzer
	maps       *retrieval.MapsAnalyzer
	business   *business.Scorer
	digital    *digital.Scorer
	engagement *engagement.Scorer
	contact    *contact.Scorer
	priority   *priority.Calculator

	workers int
	logger  logger.Logger
	obs     *observability.Observability
}

type Options struct {
	Validator  *validation.Validator
	Website    *retrieval.WebsiteAnalyzer
	Maps       *retrieval.MapsAnalyzer
	Business   *business.Scorer
	Digital    *digital.Scorer
	Engagement *engagement.Scorer
	Contact    *contact.Scorer
	Priority   *priority.Calculator

	// Workers sizes the scoring pool; values below 1 are treated as 1.
	Workers       int
	Logger        logger.Logger
	Observability *observability.Observability
}

func New(opts Options) *Pipeline {
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		validator:  opts.Validator,
		website:    opts.Website,
		maps:       opts.Maps,
		business:   opts.Business,
		digital:    opts.Digital,
		engagement: opts.Engagement,
		contact:    opts.Contact,
		priority:   opts.Priority,
		workers:    workers,
		logger:     opts.Logger.WithFields(map[string]interface{}{"component": "pipeline"}),
		obs:        opts.Observability,
	}
}

// Run processes one batch and returns the ranked result. The returned
// leads are sorted by total score descending; failed leads sort to the
// bottom with zero scores.
func (p *Pipeline) Run(ctx context.Context, leads []models.LeadRecord) models.BatchResult {
	batchID := uuid.NewString()
	log := p.logger.WithFields(map[string]interface{}{"batch_id": batchID})
	log.Info("batch started", map[string]interface{}{
		"leads": len(leads), "stage": string(models.StagePending),
	})

	validated := make([]models.LeadRecord, 0, len(leads))
	outcomes := make([]models.LeadOutcome, 0, len(leads))
	for _, lead := range leads {
		clean, err := p.validator.Validate(lead)
		if err != nil {
			metrics.LeadsFailed.WithLabelValues("VALIDATION_FAILED").Inc()
			outcomes = append(outcomes, failedOutcome(lead, err))
			continue
		}
		validated = append(validated, clean)
	}
	log.Info("batch validated", map[string]interface{}{
		"valid": len(validated), "rejected": len(leads) - len(validated),
		"stage": string(models.StageValidated),
	})

	scored := p.scoreAll(ctx, validated)
	outcomes = append(outcomes, scored...)
	log.Info("batch scored", map[string]interface{}{"stage": string(models.StageScored)})

	ranked := make([]models.ScoredLead, 0, len(outcomes))
	failures := 0
	for _, o := range outcomes {
		if o.Failed {
			failures++
		}
		ranked = append(ranked, o.Lead)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalScore > ranked[j].TotalScore
	})
	log.Info("batch ranked", map[string]interface{}{
		"total": len(ranked), "failures": failures,
		"stage": string(models.StageRanked),
	})

	return models.BatchResult{
		BatchID:  batchID,
		Stage:    models.StageRanked,
		Leads:    ranked,
		Total:    len(ranked),
		Failures: failures,
	}
}

// scoreAll fans the validated leads out over the worker pool, preserving
// input order in the collected outcomes.
func (p *Pipeline) scoreAll(ctx context.Context, leads []models.LeadRecord) []models.LeadOutcome {
	outcomes := make([]models.LeadOutcome, len(leads))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = p.scoreOne(ctx, leads[i])
			}
		}()
	}

	for i := range leads {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

func (p *Pipeline) scoreOne(ctx context.Context, lead models.LeadRecord) (out models.LeadOutcome) {
	start := time.Now()
	metrics.LeadsInFlight.Inc()
	defer func() {
		metrics.LeadsInFlight.Dec()
		metrics.LeadScoringDuration.WithLabelValues("score").Observe(time.Since(start).Seconds())

		if r := recover(); r != nil {
			metrics.LeadsFailed.WithLabelValues("SCORING_FAILED").Inc()
			p.logger.Error("lead scoring panicked", map[string]interface{}{
				"lead_id": lead.ID,
				"panic":   fmt.Sprint(r),
			})
			out = failedOutcome(lead, fmt.Errorf("scoring panic: %v", r))
		}
		if p.obs != nil {
			status := "success"
			if out.Failed {
				status = "failed"
			}
			p.obs.RecordLeadProcessed(ctx, status)
			p.obs.RecordLeadDuration(ctx, time.Since(start), status)
		}
	}()

	bizRes := p.business.Score(lead)
	digitalInd := p.website.Analyze(ctx, lead.Website)
	engagementInd := p.maps.Analyze(ctx, lead.MapsURL)

	digitalScore := p.digital.Score(digitalInd)
	engagementScore := p.engagement.Score(engagementInd)
	prio := p.priority.Calculate(bizRes.Score, digitalScore, engagementScore)

	metrics.LeadsScored.WithLabelValues(string(prio.Tier)).Inc()

	return models.LeadOutcome{
		Lead: models.ScoredLead{
			LeadRecord:      lead,
			BusinessScore:   bizRes.Score,
			DigitalScore:    digitalScore,
			EngagementScore: engagementScore,
			TotalScore:      prio.TotalScore,
			Tier:            prio.Tier,
			EstimatedValue:  prio.EstimatedValue,
			NeedsRedesign:   prio.NeedsRedesign,
			NeedsReviews:    prio.NeedsReviews,
			SizeCategory:    bizRes.SizeCategory,
			ContactQuality:  p.contact.Classify(lead.Email),
		},
	}
}

// failedOutcome records a lead that could not be scored. It still carries a
// complete ScoredLead so downstream sinks see the whole batch.
func failedOutcome(lead models.LeadRecord, err error) models.LeadOutcome {
	return models.LeadOutcome{
		Lead: models.ScoredLead{
			LeadRecord: lead,
			Tier:       models.TierCold,
		},
		Failed:     true,
		FailReason: err.Error(),
	}
}
