// internal/export/elasticsearch_test.go
package export

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscore/internal/common/logger"
)

// stubTransport answers every request with a fixed status and records the
// request paths.
type stubTransport struct {
	status int
	paths  []string
}

func (s *stubTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	s.paths = append(s.paths, req.URL.Path)
	return &http.Response{
		StatusCode: s.status,
		Header: http.Header{
			"X-Elastic-Product": []string{"Elasticsearch"},
			"Content-Type":      []string{"application/json"},
		},
		Body: io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func newStubSink(t *testing.T, status int) (*ElasticsearchSink, *stubTransport) {
	t.Helper()
	transport := &stubTransport{status: status}
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: transport,
	})
	require.NoError(t, err)
	return NewElasticsearchSink(client, "scored-leads", logger.NewNoOpLogger()), transport
}

func TestElasticsearchSink_IndexesEachLead(t *testing.T) {
	sink, transport := newStubSink(t, http.StatusCreated)

	require.NoError(t, sink.Export(context.Background(), sampleBatch()))

	require.Len(t, transport.paths, 2)
	assert.Equal(t, "/scored-leads/_doc/lead-1", transport.paths[0])
	assert.Equal(t, "/scored-leads/_doc/lead-2", transport.paths[1])
}

func TestElasticsearchSink_ReportsIndexErrors(t *testing.T) {
	sink, _ := newStubSink(t, http.StatusInternalServerError)

	err := sink.Export(context.Background(), sampleBatch())
	assert.Error(t, err)
}
