package acceptance

import (
	"context"
	"net/http"

	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Decider drives a leader's decision through the request lifecycle.
type Decider interface {
	ListPendingForLeader(ctx context.Context, leaderID string) ([]PendingAcceptanceResponse, error)
	DecideAcceptance(ctx context.Context, acceptanceID, deciderID string, accept bool) (AcceptanceResponse, error)
}

type Handler struct {
	decider Decider
	logger  *zap.Logger
}

func NewHandler(decider Decider, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("acceptance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("acceptance.handler")
	}
	return &Handler{decider: decider, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) ListPending(c *gin.Context) {
	leaderID := c.GetString("user_id_validated")

	resp, err := h.decider.ListPendingForLeader(c.Request.Context(), leaderID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Accept(c *gin.Context) {
	h.decide(c, true)
}

func (h *Handler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *Handler) decide(c *gin.Context, accept bool) {
	id := c.Param("id")
	deciderID := c.GetString("user_id_validated")
	h.logger.Debug("http decide acceptance",
		zap.String("acceptance_id", id),
		zap.String("decider_id", deciderID),
		zap.Bool("accept", accept),
	)

	resp, err := h.decider.DecideAcceptance(c.Request.Context(), id, deciderID, accept)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
