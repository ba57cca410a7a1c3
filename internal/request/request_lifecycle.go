package request

import (
	"time"

	"go-leave/internal/acceptance"
	"go-leave/internal/events"
	"go-leave/internal/holiday"

	"github.com/shopspring/decimal"
)

const (
	cancelComment = "Anulowanie"
	backdateLimit = -1 // months
)

// Overlaps reports whether the inclusive periods [aStart, aEnd] and
// [bStart, bEnd] share at least one day.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}

// validatePeriod accepts a period that starts strictly after one month
// before today and does not end before it starts.
func validatePeriod(start, end, now time.Time) bool {
	earliest := holiday.DateOnly(now).AddDate(0, backdateLimit, 0)
	if !start.After(earliest) {
		return false
	}
	return !end.Before(start)
}

var transitions = map[string][]string{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// allAccepted is vacuously true for a request without approval records.
func allAccepted(list []acceptance.Acceptance) bool {
	for _, a := range list {
		if !a.IsAccepted() {
			return false
		}
	}
	return true
}

// allDecided reports whether every record carries a decider.
func allDecided(list []acceptance.Acceptance) bool {
	for _, a := range list {
		if !a.HasDecider() {
			return false
		}
	}
	return true
}

func requiredDays(workingDays int, share decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(workingDays)).Mul(share)
}

// cancellationReversal returns the ledger comment for undoing a cancelled
// request, or false when the cancellation must not touch the ledger.
func cancellationReversal(req Request, acceptedBeforeCancel bool) (string, bool) {
	switch {
	case req.IsOccasional():
		return cancelComment + ": " + req.OccasionInfo, true
	case req.IsNormal() && acceptedBeforeCancel:
		return cancelComment, true
	}
	return "", false
}

func newRequestEvent(eventType string, req Request, correlationID string, now time.Time) events.RequestEvent {
	return events.RequestEvent{
		EventType:     eventType,
		RequestID:     req.ID.String(),
		CorrelationID: correlationID,
		RequesterID:   req.RequesterID.String(),
		RequestType:   req.Type,
		StartDate:     req.StartDate.Format(holiday.DateLayout),
		EndDate:       req.EndDate.Format(holiday.DateLayout),
		Info:          req.OccasionInfo,
		OccurredAt:    now,
	}
}

// occasionalEvents are the notifications an occasional absence produces on
// creation.
func occasionalEvents(req Request, correlationID string, now time.Time) []events.RequestEvent {
	return []events.RequestEvent{
		newRequestEvent(events.OccasionalInfo, req, correlationID, now),
		newRequestEvent(events.OccasionalResponse, req, correlationID, now),
	}
}

func acceptedEvent(req Request, correlationID string, now time.Time) events.RequestEvent {
	return newRequestEvent(events.RequestAccepted, req, correlationID, now)
}

func mapToResponse(r Request, list []acceptance.Acceptance) RequestResponse {
	res := RequestResponse{
		ID:           r.ID.String(),
		RequesterID:  r.RequesterID.String(),
		StartDate:    r.StartDate.Format(holiday.DateLayout),
		EndDate:      r.EndDate.Format(holiday.DateLayout),
		Type:         r.Type,
		Status:       r.Status,
		OccasionInfo: r.OccasionInfo,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if r.Occasion != nil {
		res.Occasion = *r.Occasion
	}
	if len(list) > 0 {
		res.Acceptances = make([]acceptance.AcceptanceResponse, len(list))
		for i, a := range list {
			res.Acceptances[i] = acceptance.MapToResponse(a)
		}
	}
	return res
}

func mapToListResponse(list []Request) []RequestResponse {
	res := make([]RequestResponse, len(list))
	for i, r := range list {
		res[i] = mapToResponse(r, nil)
	}
	return res
}
