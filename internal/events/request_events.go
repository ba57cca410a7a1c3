package events

import "time"

const RequestLifecycleTopic = "leave.request.lifecycle.v1"

const (
	// OccasionalInfo tells admins and the requester's leaders about an
	// occasional absence that needed no approval.
	OccasionalInfo = "occasional_info"
	// OccasionalResponse confirms an occasional absence to its requester.
	OccasionalResponse = "occasional_response"
	// RequestAccepted tells the requester every approver accepted.
	RequestAccepted = "request_accepted"
)

const RequestAggregate = "leave_request"

type RequestEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	RequesterID   string    `json:"requester_id"`
	RequestType   string    `json:"request_type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Info          string    `json:"info,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
