// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  name: lead-scorer\n")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.InDelta(t, 0.30, cfg.Scoring.Weights.Business, 1e-9)
	assert.InDelta(t, 0.35, cfg.Scoring.Weights.Digital, 1e-9)
	assert.InDelta(t, 0.35, cfg.Scoring.Weights.Engagement, 1e-9)
	assert.Equal(t, 80, cfg.Scoring.Tiers.HotMin)
	assert.Equal(t, 60, cfg.Scoring.Tiers.WarmMin)
	assert.Equal(t, "$2000-5000/month", cfg.Scoring.Tiers.HotValue)
	assert.Equal(t, 40, cfg.Scoring.Business.Baseline)
	assert.Equal(t, 30, cfg.Scoring.Digital.MobilePenalty)
	assert.InDelta(t, 3.5, cfg.Scoring.Engagement.LowRatingMax, 1e-9)
	assert.Equal(t, 50, cfg.Scoring.RedesignBelow)
	assert.Equal(t, 60, cfg.Scoring.ReviewsAbove)
	assert.Equal(t, 15000, cfg.Retrieval.Timeout)
	assert.Equal(t, 86400, cfg.Retrieval.CacheTTL)
	assert.NotEmpty(t, cfg.Scoring.Contact.GenericKeywords)
	assert.NotEmpty(t, cfg.Scoring.Contact.DecisionMakerKeywords)
	assert.Equal(t, "scored_leads", cfg.Export.Postgres.Table)
	assert.Equal(t, "scored-leads", cfg.Export.Elasticsearch.Index)
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
pipeline:
  workers: 8
scoring:
  weights:
    business: 0.5
    digital: 0.25
    engagement: 0.25
  tiers:
    hot_min: 90
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Pipeline.Workers)
	assert.InDelta(t, 0.5, cfg.Scoring.Weights.Business, 1e-9)
	assert.Equal(t, 90, cfg.Scoring.Tiers.HotMin)
	assert.Equal(t, 60, cfg.Scoring.Tiers.WarmMin, "untouched values keep defaults")
}

func TestLoadFromFile_RejectsIncompleteSinkConfig(t *testing.T) {
	path := writeConfig(t, `
export:
  postgres:
    enabled: true
`)

	_, err := LoadFromFile(path)
	assert.Error(t, err, "postgres export without connection settings must fail")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 15*time.Second, GetDuration(15000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}

func TestPostgresConfig_GetDSN(t *testing.T) {
	cfg := PostgresConfig{
		Host: "localhost", Port: 5432, User: "app", Password: "secret",
		Database: "leadscore", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=app password=secret dbname=leadscore sslmode=disable",
		cfg.GetDSN())
}

func TestElasticsearchConfig_GetURL(t *testing.T) {
	assert.Equal(t, "http://es:9200", ElasticsearchConfig{URL: "http://es:9200"}.GetURL())
	assert.Equal(t, "http://a:9200", ElasticsearchConfig{Addresses: []string{"http://a:9200"}}.GetURL())
	assert.Empty(t, ElasticsearchConfig{}.GetURL())
}
