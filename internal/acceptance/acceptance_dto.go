package acceptance

import "time"

type AcceptanceResponse struct {
	ID        string     `json:"id"`
	RequestID string     `json:"request_id"`
	LeaderID  string     `json:"leader_id"`
	Status    string     `json:"status"`
	DeciderID string     `json:"decider_id,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`
}

// PendingAcceptanceResponse is a leader's open decision together with the
// request it belongs to.
type PendingAcceptanceResponse struct {
	AcceptanceResponse
	RequesterID   string `json:"requester_id"`
	RequesterName string `json:"requester_name,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	RequestStatus string `json:"request_status"`
}

func MapToResponse(a Acceptance) AcceptanceResponse {
	res := AcceptanceResponse{
		ID:        a.ID.String(),
		RequestID: a.RequestID.String(),
		LeaderID:  a.LeaderID.String(),
		Status:    a.Status,
		DecidedAt: a.DecidedAt,
	}
	if a.DeciderID != nil {
		res.DeciderID = a.DeciderID.String()
	}
	return res
}
