package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-leave/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer loop needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type RequestEventHandler interface {
	Handle(ctx context.Context, event events.RequestEvent) error
}

// ErrSkipEvent marks an event the handler will never be able to process.
// The message is committed so it is not redelivered.
var ErrSkipEvent = errors.New("skip event")

// maxHandleAttempts bounds redelivery of one event to the handler. After the
// last attempt the event is logged as dropped and committed.
const maxHandleAttempts = 3

var (
	retryBaseDelay = 500 * time.Millisecond
	maxRetryDelay  = 30 * time.Second
)

func NewRequestLifecycleReader(broker, groupID string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       events.RequestLifecycleTopic,
		GroupID:     groupID,
		StartOffset: kafkago.FirstOffset,
	})
}

func ConsumeRequestLifecycle(
	ctx context.Context,
	reader MessageReader,
	handler RequestEventHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_lifecycle")
	log.Info("request lifecycle consumer started")

	fetchFailures := 0
	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request lifecycle consumer stopped")
				return
			}
			fetchFailures++
			log.Error("fetch request lifecycle message failed",
				zap.Int("consecutive_failures", fetchFailures),
				zap.Error(err),
			)
			if !sleep(ctx, backoff(fetchFailures)) {
				log.Info("request lifecycle consumer stopped")
				return
			}
			continue
		}
		fetchFailures = 0

		var event events.RequestEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
			commit(ctx, reader, msg, log)
			continue
		}

		err = handleWithRetry(ctx, handler, event, log)
		if ctx.Err() != nil {
			// Left uncommitted; the group redelivers it after restart.
			log.Info("request lifecycle consumer stopped")
			return
		}
		if err != nil {
			if errors.Is(err, ErrSkipEvent) {
				log.Warn("request event skipped",
					zap.String("event_type", event.EventType),
					zap.String("request_id", event.RequestID),
					zap.Error(err),
				)
			} else {
				log.Error("request event dropped",
					zap.String("event_type", event.EventType),
					zap.String("request_id", event.RequestID),
					zap.Int64("offset", msg.Offset),
					zap.Int("attempts", maxHandleAttempts),
					zap.Error(err),
				)
			}
			commit(ctx, reader, msg, log)
			continue
		}

		if !commit(ctx, reader, msg, log) {
			continue
		}

		log.Info("request event handled",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.String("correlation_id", event.CorrelationID),
		)
	}
}

func handleWithRetry(ctx context.Context, handler RequestEventHandler, event events.RequestEvent, log *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= maxHandleAttempts; attempt++ {
		err = handler.Handle(ctx, event)
		if err == nil || errors.Is(err, ErrSkipEvent) {
			return err
		}
		if attempt == maxHandleAttempts {
			break
		}
		log.Warn("handle request event failed",
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if !sleep(ctx, backoff(attempt)) {
			return ctx.Err()
		}
	}
	return err
}

// backoff doubles from retryBaseDelay and is capped at maxRetryDelay.
func backoff(attempt int) time.Duration {
	d := retryBaseDelay
	for i := 1; i < attempt && d < maxRetryDelay; i++ {
		d *= 2
	}
	if d > maxRetryDelay {
		d = maxRetryDelay
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func commit(ctx context.Context, reader MessageReader, msg kafkago.Message, log *zap.Logger) bool {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit request lifecycle message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return false
	}
	return true
}
