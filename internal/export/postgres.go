// internal/export/postgres.go
package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"leadscore/internal/common/errors"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// PostgresSink persists scored batches for later analysis. Rows are keyed on
// lead id and upserted, so re-running a batch refreshes scores instead of
// duplicating leads.
type PostgresSink struct {
	db     *sql.DB
	table  string
	logger logger.Logger
}

func NewPostgresSink(db *sql.DB, table string, log logger.Logger) *PostgresSink {
	return &PostgresSink{
		db:     db,
		table:  table,
		logger: log.WithFields(map[string]interface{}{"component": "postgres-sink"}),
	}
}

// EnsureSchema creates the scores table when missing. The table name comes
// from configuration, not user input.
func (s *PostgresSink) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		address TEXT,
		zip_code TEXT,
		city TEXT,
		phone TEXT,
		email TEXT,
		website_url TEXT,
		maps_url TEXT,
		business_score INTEGER NOT NULL,
		digital_score INTEGER NOT NULL,
		engagement_score INTEGER NOT NULL,
		total_score INTEGER NOT NULL,
		tier TEXT NOT NULL,
		estimated_monthly_value TEXT,
		needs_redesign BOOLEAN NOT NULL,
		needs_reviews BOOLEAN NOT NULL,
		size_category TEXT,
		contact_quality TEXT,
		batch_id TEXT NOT NULL,
		scored_at TIMESTAMPTZ NOT NULL
	)`, s.table)

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return errors.NewDatabaseConnectionFailedError(fmt.Errorf("ensure schema: %w", err))
	}
	return nil
}

// Export upserts the whole batch in one transaction.
func (s *PostgresSink) Export(ctx context.Context, result models.BatchResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewDatabaseInsertFailedError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`INSERT INTO %s (
		id, business_name, address, zip_code, city, phone, email,
		website_url, maps_url, business_score, digital_score,
		engagement_score, total_score, tier, estimated_monthly_value,
		needs_redesign, needs_reviews, size_category, contact_quality,
		batch_id, scored_at
	) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21)
	ON CONFLICT (id) DO UPDATE SET
		business_score = EXCLUDED.business_score,
		digital_score = EXCLUDED.digital_score,
		engagement_score = EXCLUDED.engagement_score,
		total_score = EXCLUDED.total_score,
		tier = EXCLUDED.tier,
		estimated_monthly_value = EXCLUDED.estimated_monthly_value,
		needs_redesign = EXCLUDED.needs_redesign,
		needs_reviews = EXCLUDED.needs_reviews,
		size_category = EXCLUDED.size_category,
		contact_quality = EXCLUDED.contact_quality,
		batch_id = EXCLUDED.batch_id,
		scored_at = EXCLUDED.scored_at`, s.table)

	now := time.Now().UTC()
	for _, lead := range result.Leads {
		_, err := tx.ExecContext(ctx, query,
			lead.ID, lead.BusinessName, lead.Address, lead.ZipCode, lead.City,
			lead.Phone, lead.Email, lead.Website, lead.MapsURL,
			lead.BusinessScore, lead.DigitalScore, lead.EngagementScore,
			lead.TotalScore, string(lead.Tier), lead.EstimatedValue,
			lead.NeedsRedesign, lead.NeedsReviews, lead.SizeCategory,
			lead.ContactQuality, result.BatchID, now,
		)
		if err != nil {
			return errors.NewDatabaseInsertFailedError(fmt.Errorf("insert lead %s: %w", lead.ID, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewDatabaseInsertFailedError(fmt.Errorf("commit: %w", err))
	}

	s.logger.Info("batch persisted to postgres", map[string]interface{}{
		"table": s.table,
		"leads": len(result.Leads),
	})
	return nil
}
