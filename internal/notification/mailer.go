package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

type Mail struct {
	To      []string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// LogMailer writes outgoing mail to the log instead of an SMTP relay.
type LogMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger ...*zap.Logger) *LogMailer {
	l := zap.L().Named("notification.mailer")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.mailer")
	}
	return &LogMailer{logger: l}
}

func (m *LogMailer) Send(_ context.Context, mail Mail) error {
	m.logger.Info("mail sent",
		zap.String("to", strings.Join(mail.To, ",")),
		zap.String("subject", mail.Subject),
		zap.Int("body_length", len(mail.Body)),
	)
	return nil
}
