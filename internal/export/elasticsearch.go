// internal/export/elasticsearch.go
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"leadscore/internal/common/errors"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// ElasticsearchSink indexes scored leads so sales can slice batches by
// tier, city, or flags in Kibana. Documents are keyed on lead id.
type ElasticsearchSink struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewElasticsearchSink(client *elasticsearch.Client, index string, log logger.Logger) *ElasticsearchSink {
	return &ElasticsearchSink{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"component": "elasticsearch-sink"}),
	}
}

type leadDocument struct {
	models.ScoredLead
	BatchID string `json:"batchId"`
}

func (s *ElasticsearchSink) Export(ctx context.Context, result models.BatchResult) error {
	indexed := 0
	for _, lead := range result.Leads {
		doc := leadDocument{ScoredLead: lead, BatchID: result.BatchID}
		body, err := json.Marshal(doc)
		if err != nil {
			return errors.NewSearchIndexFailedError(s.index, fmt.Errorf("marshal lead %s: %w", lead.ID, err))
		}

		req := esapi.IndexRequest{
			Index:      s.index,
			DocumentID: lead.ID,
			Body:       bytes.NewReader(body),
		}
		res, err := req.Do(ctx, s.client)
		if err != nil {
			return errors.NewSearchIndexFailedError(s.index, fmt.Errorf("index lead %s: %w", lead.ID, err))
		}
		res.Body.Close()
		if res.IsError() {
			return errors.NewSearchIndexFailedError(s.index, fmt.Errorf("index lead %s: %s", lead.ID, res.Status()))
		}
		indexed++
	}

	s.logger.Info("batch indexed", map[string]interface{}{
		"index": s.index,
		"leads": indexed,
	})
	return nil
}
