package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-leave/internal/events"
	"go-leave/internal/messaging/kafka/consumer"
	"go-leave/internal/user"
	usererrors "go-leave/internal/user/errors"

	"go.uber.org/zap"
)

// Directory is the subset of the user directory needed to address mail.
type Directory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	TeamLeaderMails(ctx context.Context, userID string) ([]string, error)
	ListAdmins(ctx context.Context) ([]user.User, error)
}

// Dispatcher turns request lifecycle events into mail.
type Dispatcher struct {
	users  Directory
	mailer Mailer
	logger *zap.Logger
}

func NewDispatcher(users Directory, mailer Mailer, logger ...*zap.Logger) *Dispatcher {
	l := zap.L().Named("notification.dispatcher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.dispatcher")
	}
	return &Dispatcher{users: users, mailer: mailer, logger: l}
}

func (d *Dispatcher) Handle(ctx context.Context, event events.RequestEvent) error {
	requester, err := d.users.GetByID(ctx, event.RequesterID)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) || errors.Is(err, usererrors.ErrInvalidUserID) {
			return fmt.Errorf("requester %q: %w", event.RequesterID, consumer.ErrSkipEvent)
		}
		return err
	}

	var mail Mail
	switch event.EventType {
	case events.OccasionalInfo:
		to, err := d.infoRecipients(ctx, requester.ID.String())
		if err != nil {
			return err
		}
		mail = Mail{
			To:      to,
			Subject: fmt.Sprintf("Occasional leave: %s", displayName(*requester)),
			Body: fmt.Sprintf("%s will be absent from %s to %s.\n%s",
				displayName(*requester), event.StartDate, event.EndDate, event.Info),
		}
	case events.OccasionalResponse:
		mail = Mail{
			To:      []string{requester.Mail},
			Subject: "Your occasional leave has been registered",
			Body: fmt.Sprintf("Your occasional leave from %s to %s has been registered.\n%s",
				event.StartDate, event.EndDate, event.Info),
		}
	case events.RequestAccepted:
		mail = Mail{
			To:      []string{requester.Mail},
			Subject: "Your leave request has been accepted",
			Body: fmt.Sprintf("Your leave request from %s to %s has been accepted.",
				event.StartDate, event.EndDate),
		}
	default:
		return fmt.Errorf("event type %q: %w", event.EventType, consumer.ErrSkipEvent)
	}

	if len(mail.To) == 0 {
		d.logger.Warn("notification has no recipients",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
		)
		return nil
	}

	if err := d.mailer.Send(ctx, mail); err != nil {
		d.logger.Error("send notification failed",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// infoRecipients returns admins and the requester's team leaders, each once.
func (d *Dispatcher) infoRecipients(ctx context.Context, requesterID string) ([]string, error) {
	admins, err := d.users.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	leaders, err := d.users.TeamLeaderMails(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var to []string
	add := func(mail string) {
		key := strings.ToLower(strings.TrimSpace(mail))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		to = append(to, mail)
	}

	for _, a := range admins {
		add(a.Mail)
	}
	for _, m := range leaders {
		add(m)
	}
	return to, nil
}

func displayName(u user.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Mail
}
