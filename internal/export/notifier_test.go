// internal/export/notifier_test.go
package export

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadscore/internal/common/config"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

type mockEmailSender struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockEmailSender) SendEmail(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, input)
	return &ses.SendEmailOutput{}, m.err
}

type mockSMSSender struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSMSSender) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, input)
	return &sns.PublishOutput{}, m.err
}

func notifierConfig(emailEnabled, smsEnabled bool) config.NotificationConfig {
	var cfg config.NotificationConfig
	cfg.Email.Enabled = emailEnabled
	cfg.Email.FromEmail = "alerts@leadscore.io"
	cfg.Email.SalesTeam = "sales@leadscore.io"
	cfg.SMS.Enabled = smsEnabled
	cfg.SMS.SalesPhone = "+12145550100"
	return cfg
}

func TestNotifyHotLeads_SendsEmailAndSMS(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	n := NewNotifier(notifierConfig(true, true), email, sms, logger.NewNoOpLogger())

	require.NoError(t, n.NotifyHotLeads(context.Background(), sampleBatch()))

	require.Len(t, email.inputs, 1)
	assert.Equal(t, "alerts@leadscore.io", *email.inputs[0].Source)
	assert.Equal(t, []string{"sales@leadscore.io"}, email.inputs[0].Destination.ToAddresses)
	assert.Contains(t, *email.inputs[0].Message.Body.Text.Data, "Acme National Fitness Co")

	require.Len(t, sms.inputs, 1)
	assert.Equal(t, "+12145550100", *sms.inputs[0].PhoneNumber)
	assert.Contains(t, *sms.inputs[0].Message, "1 HOT leads")
}

func TestNotifyHotLeads_NoHotLeadsSendsNothing(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	n := NewNotifier(notifierConfig(true, true), email, sms, logger.NewNoOpLogger())

	batch := models.BatchResult{Leads: []models.ScoredLead{
		{Tier: models.TierWarm}, {Tier: models.TierCold},
	}}
	require.NoError(t, n.NotifyHotLeads(context.Background(), batch))

	assert.Empty(t, email.inputs)
	assert.Empty(t, sms.inputs)
}

func TestNotifyHotLeads_DisabledChannelsSkipped(t *testing.T) {
	email := &mockEmailSender{}
	sms := &mockSMSSender{}
	n := NewNotifier(notifierConfig(true, false), email, sms, logger.NewNoOpLogger())

	require.NoError(t, n.NotifyHotLeads(context.Background(), sampleBatch()))

	assert.Len(t, email.inputs, 1)
	assert.Empty(t, sms.inputs)
}

func TestNotifyHotLeads_EmailFailureReported(t *testing.T) {
	email := &mockEmailSender{err: errors.New("ses throttled")}
	n := NewNotifier(notifierConfig(true, false), email, nil, logger.NewNoOpLogger())

	err := n.NotifyHotLeads(context.Background(), sampleBatch())
	assert.Error(t, err)
}
