package notify

import (
	"time"

	"mycnftune/pkg/config"
	"mycnftune/pkg/log"

	"go.uber.org/zap"
)

// Message structure of message sent to notify service
type Message struct {
	Subject string
	Content string
	Time    time.Time
}

// Sender sends notification
type Sender interface {
	send(string, string) error
}

// Service notify service
type Service struct {
	sender Sender
}

// NewService returns a new notify service, the sender is picked
// from config in order of preference: email, slack, webhook
func NewService(cfg *config.Config) *Service {
	svc := &Service{}

	if len(cfg.Email) > 0 {
		svc.sender = emailSender(cfg.Email, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPHost, cfg.SMTPPort)
	} else if len(cfg.SlackWebhook) > 0 {
		svc.sender = slackSender(cfg.SlackWebhook)
	} else if len(cfg.GenericWebhook) > 0 {
		svc.sender = genericSender(cfg.GenericWebhook)
	}

	return svc
}

// Notify sends msg synchronously, a no-op when no sender is
// configured. Failures are logged, never fatal.
func (s *Service) Notify(msg Message) {
	if s.sender == nil {
		return
	}

	log.Logger().Info("[Notify]",
		zap.String("subject", msg.Subject),
		zap.String("content", msg.Content),
		zap.String("time", msg.Time.String()))

	err := s.sender.send(msg.Subject, msg.Content)
	if err != nil {
		log.Logger().Error("failed to send notify",
			zap.NamedError("error", err), zap.String("subject", msg.Subject), zap.String("content", msg.Content))
	}
}
