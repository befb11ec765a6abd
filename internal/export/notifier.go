// internal/export/notifier.go
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"leadscore/internal/common/config"
	"leadscore/internal/common/errors"
	"leadscore/internal/common/logger"
	"leadscore/internal/models"
)

// EmailSender and SMSSender match the common aws client wrappers and keep
// the notifier mockable in tests.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Notifier alerts the sales team when a batch produces HOT leads. One email
// covers the whole batch; SMS fires only when enabled, since it is the
// noisier channel.
type Notifier struct {
	cfg    config.NotificationConfig
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewNotifier(cfg config.NotificationConfig, email EmailSender, sms SMSSender, log logger.Logger) *Notifier {
	return &Notifier{
		cfg:    cfg,
		email:  email,
		sms:    sms,
		logger: log.WithFields(map[string]interface{}{"component": "notifier"}),
	}
}

// NotifyHotLeads sends the batch alert. A batch without HOT leads sends
// nothing and returns nil.
func (n *Notifier) NotifyHotLeads(ctx context.Context, result models.BatchResult) error {
	var hot []models.ScoredLead
	for _, lead := range result.Leads {
		if lead.Tier == models.TierHot {
			hot = append(hot, lead)
		}
	}
	if len(hot) == 0 {
		return nil
	}

	if n.cfg.Email.Enabled && n.email != nil {
		if err := n.sendEmail(ctx, result.BatchID, hot); err != nil {
			return errors.NewNotificationSendFailedError("email", err)
		}
	}
	if n.cfg.SMS.Enabled && n.sms != nil {
		if err := n.sendSMS(ctx, hot); err != nil {
			return errors.NewNotificationSendFailedError("sms", err)
		}
	}
	return nil
}

func (n *Notifier) sendEmail(ctx context.Context, batchID string, hot []models.ScoredLead) error {
	subject := fmt.Sprintf("%d HOT leads ready for outreach", len(hot))

	var b strings.Builder
	fmt.Fprintf(&b, "Batch %s produced %d HOT leads:\n\n", batchID, len(hot))
	for _, lead := range hot {
		fmt.Fprintf(&b, "- %s (score %d, est. %s)", lead.BusinessName, lead.TotalScore, lead.EstimatedValue)
		if lead.Phone != "" {
			fmt.Fprintf(&b, " %s", lead.Phone)
		}
		b.WriteString("\n")
	}

	_, err := n.email.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.cfg.Email.SalesTeam},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(b.String())},
			},
		},
		Source: aws.String(n.cfg.Email.FromEmail),
	})
	if err != nil {
		n.logger.Error("hot lead email failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	n.logger.Info("hot lead email sent", map[string]interface{}{
		"to":    n.cfg.Email.SalesTeam,
		"leads": len(hot),
	})
	return nil
}

func (n *Notifier) sendSMS(ctx context.Context, hot []models.ScoredLead) error {
	top := hot[0]
	message := fmt.Sprintf("%d HOT leads. Top: %s (score %d)", len(hot), top.BusinessName, top.TotalScore)

	_, err := n.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(n.cfg.SMS.SalesPhone),
		Message:     aws.String(message),
	})
	if err != nil {
		n.logger.Error("hot lead sms failed", map[string]interface{}{"error": err.Error()})
		return err
	}

	n.logger.Info("hot lead sms sent", map[string]interface{}{
		"to":    n.cfg.SMS.SalesPhone,
		"leads": len(hot),
	})
	return nil
}
