// internal/retrieval/website_test.go
package retrieval

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"leadscore/internal/common/logger"
)

type stubFetcher struct {
	body string
	err  error
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	return s.body, s.err
}

const fullSitePage = `<!DOCTYPE html>
<html>
<head>
  <title>Acme Fitness | Dallas Gym</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="description" content="Premium gym in Dallas.">
</head>
<body>
  <a href="/membership">Memberships</a>
  <a href="https://booking.acme.com">Book Now</a>
</body>
</html>`

func TestExtractDigitalIndicators_AllSignals(t *testing.T) {
	ind := extractDigitalIndicators("https://acme.com", fullSitePage)

	assert.True(t, ind.Retrieved)
	assert.True(t, ind.MobileFriendly)
	assert.True(t, ind.HasSSL)
	assert.True(t, ind.HasSEOBasics)
	assert.True(t, ind.HasBooking)
}

func TestExtractDigitalIndicators_BareSite(t *testing.T) {
	page := `<html><head><title>Gym</title></head><body><a href="/about">About</a></body></html>`
	ind := extractDigitalIndicators("http://oldgym.com", page)

	assert.True(t, ind.Retrieved)
	assert.False(t, ind.MobileFriendly, "no viewport meta")
	assert.False(t, ind.HasSSL, "http scheme")
	assert.False(t, ind.HasSEOBasics, "title without meta description")
	assert.False(t, ind.HasBooking)
}

func TestExtractDigitalIndicators_BookingViaButtonText(t *testing.T) {
	page := `<html><body><button>Schedule a tour</button></body></html>`
	ind := extractDigitalIndicators("https://gym.com", page)
	assert.True(t, ind.HasBooking)
}

func TestWebsiteAnalyzer_EmptyURL(t *testing.T) {
	a := NewWebsiteAnalyzer(&stubFetcher{}, nil, logger.NewNoOpLogger())
	ind := a.Analyze(context.Background(), "")
	assert.False(t, ind.Retrieved)
}

func TestWebsiteAnalyzer_FetchFailure(t *testing.T) {
	a := NewWebsiteAnalyzer(&stubFetcher{err: errors.New("connection refused")}, nil, logger.NewNoOpLogger())
	ind := a.Analyze(context.Background(), "https://down.example.com")

	assert.False(t, ind.Retrieved)
	assert.False(t, ind.MobileFriendly)
}

func TestWebsiteAnalyzer_FetchSuccess(t *testing.T) {
	a := NewWebsiteAnalyzer(&stubFetcher{body: fullSitePage}, nil, logger.NewNoOpLogger())
	ind := a.Analyze(context.Background(), "https://acme.com")

	assert.True(t, ind.Retrieved)
	assert.True(t, ind.HasBooking)
}
