// internal/ingest/csv.go
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// Loader reads tabular lead exports into LeadRecord values. Column headers
// are normalized (trimmed, lowercased, separators stripped) so exports from
// different report tools map onto the same field contract.
type Loader struct {
	logger logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{
		logger: log.WithFields(map[string]interface{}{"component": "ingest"}),
	}
}

// headerAliases maps normalized column names to LeadRecord fields.
var headerAliases = map[string]string{
	"businessname": "businessName",
	"business":     "businessName",
	"name":         "businessName",
	"company":      "businessName",
	"address":      "address",
	"street":       "address",
	"zip":          "zipCode",
	"zipcode":      "zipCode",
	"postalcode":   "zipCode",
	"city":         "city",
	"phone":        "phone",
	"telephone":    "phone",
	"email":        "email",
	"emailaddress": "email",
	"website":      "websiteUrl",
	"websiteurl":   "websiteUrl",
	"url":          "websiteUrl",
	"gmapsurl":     "mapsUrl",
	"mapsurl":      "mapsUrl",
	"googlemaps":   "mapsUrl",
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
	return h
}

// LoadFile reads a single CSV file into lead records. Rows shorter than the
// header are skipped with a warning rather than aborting the file.
func (l *Loader) LoadFile(path string) ([]models.LeadRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	fields := make([]string, len(header))
	for i, h := range header {
		fields[i] = headerAliases[normalizeHeader(h)]
	}

	source := filepath.Base(path)
	var leads []models.LeadRecord
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			l.logger.Warn("skipping unreadable row", map[string]interface{}{
				"file":  source,
				"line":  line,
				"error": err.Error(),
			})
			continue
		}

		lead := models.LeadRecord{
			ID:         uuid.NewString(),
			SourceFile: source,
		}
		for i, field := range fields {
			if i >= len(row) || field == "" {
				continue
			}
			val := strings.TrimSpace(row[i])
			switch field {
			case "businessName":
				lead.BusinessName = val
			case "address":
				lead.Address = val
			case "zipCode":
				lead.ZipCode = val
			case "city":
				lead.City = val
			case "phone":
				lead.Phone = val
			case "email":
				lead.Email = val
			case "websiteUrl":
				lead.Website = val
			case "mapsUrl":
				lead.MapsURL = val
			}
		}
		leads = append(leads, lead)
	}

	return leads, nil
}

// BatchLoad reads multiple files and combines the records in order. A file
// that fails to load is logged and skipped; one bad export must not sink the
// batch.
func (l *Loader) BatchLoad(paths []string) []models.LeadRecord {
	var combined []models.LeadRecord
	for _, path := range paths {
		leads, err := l.LoadFile(path)
		if err != nil {
			l.logger.Error("failed to load lead file", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		l.logger.Info("lead file loaded", map[string]interface{}{
			"path":  path,
			"leads": len(leads),
		})
		combined = append(combined, leads...)
	}
	return combined
}
