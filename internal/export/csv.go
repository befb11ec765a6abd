// internal/export/csv.go
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"leadscore/internal/common/errors"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

var csvHeader = []string{
	"id", "business_name", "address", "zip_code", "city", "phone", "email",
	"website_url", "maps_url", "business_score", "digital_score",
	"engagement_score", "total_score", "tier", "estimated_monthly_value",
	"needs_redesign", "needs_reviews", "size_category", "contact_quality",
}

// CSVExporter writes the ranked batch to a flat file for the sales team.
// Rows keep the batch order, so the file reads hottest-first.
type CSVExporter struct {
	path   string
	logger logger.Logger
}

func NewCSVExporter(path string, log logger.Logger) *CSVExporter {
	return &CSVExporter{
		path:   path,
		logger: log.WithFields(map[string]interface{}{"component": "csv-exporter"}),
	}
}

func (e *CSVExporter) Export(result models.BatchResult) error {
	if err := os.MkdirAll(filepath.Dir(e.path), 0o755); err != nil {
		return errors.NewExportFailedError("csv", fmt.Errorf("create output dir: %w", err))
	}

	f, err := os.Create(e.path)
	if err != nil {
		return errors.NewExportFailedError("csv", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.NewExportFailedError("csv", err)
	}
	for _, lead := range result.Leads {
		row := []string{
			lead.ID, lead.BusinessName, lead.Address, lead.ZipCode, lead.City,
			lead.Phone, lead.Email, lead.Website, lead.MapsURL,
			strconv.Itoa(lead.BusinessScore),
			strconv.Itoa(lead.DigitalScore),
			strconv.Itoa(lead.EngagementScore),
			strconv.Itoa(lead.TotalScore),
			string(lead.Tier),
			lead.EstimatedValue,
			strconv.FormatBool(lead.NeedsRedesign),
			strconv.FormatBool(lead.NeedsReviews),
			lead.SizeCategory,
			lead.ContactQuality,
		}
		if err := w.Write(row); err != nil {
			return errors.NewExportFailedError("csv", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewExportFailedError("csv", err)
	}

	e.logger.Info("batch exported to csv", map[string]interface{}{
		"path":  e.path,
		"leads": len(result.Leads),
	})
	return nil
}
