package request

import (
	"time"

	"go-leave/internal/acceptance"
)

type CreateNormalRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" binding:"required,datetime=2006-01-02"`
}

type CreateOccasionalRequest struct {
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	Occasion  string `json:"occasion" binding:"required,oneof=WEDDING CHILD_BIRTH FUNERAL CHILD_WEDDING CLOSE_FUNERAL"`
}

type RequestResponse struct {
	ID           string                          `json:"id"`
	RequesterID  string                          `json:"requester_id"`
	StartDate    string                          `json:"start_date"`
	EndDate      string                          `json:"end_date"`
	Type         string                          `json:"type"`
	Status       string                          `json:"status"`
	Occasion     string                          `json:"occasion,omitempty"`
	OccasionInfo string                          `json:"occasion_info,omitempty"`
	CreatedAt    time.Time                       `json:"created_at"`
	UpdatedAt    time.Time                       `json:"updated_at"`
	Acceptances  []acceptance.AcceptanceResponse `json:"acceptances,omitempty"`
}

// FailedAcceptance names an approval record an aggregate decision could not
// apply.
type FailedAcceptance struct {
	AcceptanceID string `json:"acceptance_id"`
	LeaderID     string `json:"leader_id"`
	Status       string `json:"status"`
	Reason       string `json:"reason"`
}

// DecisionResponse reports an accept, reject or cancel. The status change is
// applied even when Success is false.
type DecisionResponse struct {
	Request           RequestResponse    `json:"request"`
	Success           bool               `json:"success"`
	FailedAcceptances []FailedAcceptance `json:"failed_acceptances,omitempty"`
}

type OccasionResponse struct {
	Kind string `json:"kind"`
	Days int    `json:"days"`
	Info string `json:"info"`
}
