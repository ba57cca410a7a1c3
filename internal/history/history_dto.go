package history

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a ledger movement posted on behalf of another module.
type Entry struct {
	UserID    string
	RequestID string
	DeciderID string
	Days      decimal.Decimal
	Comment   string
}

type AdjustRequest struct {
	UserID  string          `json:"user_id" binding:"required,uuid"`
	Days    decimal.Decimal `json:"days"`
	Comment string          `json:"comment" binding:"required,max=500"`
}

type HistoryResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	RequestID string          `json:"request_id,omitempty"`
	DeciderID string          `json:"decider_id,omitempty"`
	Days      decimal.Decimal `json:"days"`
	Comment   string          `json:"comment"`
	CreatedAt time.Time       `json:"created_at"`
}

type BalanceResponse struct {
	UserID    string          `json:"user_id"`
	Remaining decimal.Decimal `json:"remaining"`
	AsOf      *time.Time      `json:"as_of,omitempty"`
}
