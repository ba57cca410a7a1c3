package request

import (
	"net/http"
	"strconv"
	"time"

	"go-leave/internal/middleware"
	requesterrors "go-leave/internal/request/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/response"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("request.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func getActorID(c *gin.Context) string {
	return c.GetString("user_id_validated")
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) SubmitNormal(c *gin.Context) {
	defer middleware.ReleaseIdempotency(c, h.rdb)
	actorID := getActorID(c)

	var req CreateNormalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit normal validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitNormal(c.Request.Context(), actorID, req.StartDate, req.EndDate)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) SubmitOccasional(c *gin.Context) {
	defer middleware.ReleaseIdempotency(c, h.rdb)
	actorID := getActorID(c)

	var req CreateOccasionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http submit occasional validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SubmitOccasional(c.Request.Context(), actorID, req.StartDate, req.Occasion)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.StoreIdempotentResponse(c, h.rdb, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

// parseSince reads the optional ?since= filter.
func parseSince(c *gin.Context) (*time.Time, error) {
	raw := c.Query("since")
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, requesterrors.ErrInvalidSince
	}
	return &t, nil
}

func (h *Handler) ListMine(c *gin.Context) {
	actorID := getActorID(c)

	since, err := parseSince(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var resp []RequestResponse
	if since != nil {
		resp, err = h.service.GetByRequesterSince(c.Request.Context(), actorID, *since)
	} else {
		resp, err = h.service.GetByRequester(c.Request.Context(), actorID)
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.paginate(c, resp)
}

func (h *Handler) ListAll(c *gin.Context) {
	since, err := parseSince(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var resp []RequestResponse
	if since != nil {
		resp, err = h.service.GetAllSince(c.Request.Context(), *since)
	} else {
		resp, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.paginate(c, resp)
}

func (h *Handler) paginate(c *gin.Context, resp []RequestResponse) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	items, meta := response.Paginate(resp, page, pageSize)

	response.Success(c, http.StatusOK, items, &meta)
}

func (h *Handler) Occasions(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Occasions(), nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if !canView(resp, getActorID(c), c.GetString("role")) {
		h.logger.Warn("request read forbidden",
			zap.String("request_id", resp.ID),
			zap.String("actor_id", getActorID(c)),
		)
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Accept(c *gin.Context) {
	resp, err := h.service.Accept(c.Request.Context(), c.Param("id"), getActorID(c))
	h.writeDecision(c, resp, err)
}

func (h *Handler) Reject(c *gin.Context) {
	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"), getActorID(c))
	h.writeDecision(c, resp, err)
}

func (h *Handler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Request.Context(), c.Param("id"), getActorID(c))
	h.writeDecision(c, resp, err)
}

func (h *Handler) writeDecision(c *gin.Context, resp DecisionResponse, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if !resp.Success {
		h.logger.Warn("http decision partially applied",
			zap.String("request_id", resp.Request.ID),
			zap.Int("failed", len(resp.FailedAcceptances)),
		)
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// canView lets the requester, an admin, or a leader holding one of the
// request's approval records read it.
func canView(resp RequestResponse, actorID, role string) bool {
	if actorID == "" {
		return false
	}
	if resp.RequesterID == actorID || role == user.RoleAdmin {
		return true
	}
	if role != user.RoleLeader {
		return false
	}
	for _, a := range resp.Acceptances {
		if a.LeaderID == actorID {
			return true
		}
	}
	return false
}
