package devicesync

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"waitwise/internal/shared/apperror"
	"waitwise/internal/shared/utils/response"
	"waitwise/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// IdempotencyHeader names the client-chosen retry key
const IdempotencyHeader = "Idempotency-Key"

type Controller struct {
	service   Service
	idem      *IdempotencyStore
	validator *validator.Validate
}

// NewController wires the sync handler. idem may be nil, which disables replay.
func NewController(service Service, idem *IdempotencyStore) *Controller {
	return &Controller{
		service:   service,
		idem:      idem,
		validator: validator.New(),
	}
}

// Sync godoc
// @Summary      Upload operations queued by an offline device
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string       false  "Replay key for retries"
// @Param        body             body      SyncRequest  true   "Queued operations"
// @Success      200              {object}  SyncResponse
// @Failure      400              {object}  response.ErrorResponse
// @Failure      409              {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /sync [post]
func (c *Controller) Sync(ctx *gin.Context) {
	var request SyncRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}
	if err := c.validator.Struct(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}

	key := strings.TrimSpace(ctx.GetHeader(IdempotencyHeader))
	if c.idem == nil || key == "" {
		response.RespondJSON(ctx, http.StatusOK, c.service.Reconcile(ctx.Request.Context(), &request))
		return
	}

	reqCtx := ctx.Request.Context()
	log := logger.GetDefault()

	if payload, ok, err := c.idem.GetResult(reqCtx, request.DeviceID, key); err == nil && ok {
		c.replay(ctx, key, payload)
		return
	} else if err != nil {
		log.Warn("idempotency lookup failed", slog.String("device_id", request.DeviceID), slog.Any("error", err))
	}

	locked, err := c.idem.AcquireLock(reqCtx, request.DeviceID, key)
	if err != nil {
		// Redis is down; serve the batch without replay protection
		log.Warn("idempotency lock failed", slog.String("device_id", request.DeviceID), slog.Any("error", err))
		response.RespondJSON(ctx, http.StatusOK, c.service.Reconcile(reqCtx, &request))
		return
	}
	if !locked {
		if payload, ok, _ := c.idem.GetResult(reqCtx, request.DeviceID, key); ok {
			c.replay(ctx, key, payload)
			return
		}
		ctx.Header("Retry-After", "1")
		response.RespondStatusError(ctx, http.StatusConflict, apperror.CodeRequestInFlight, "A request with this Idempotency-Key is still in progress")
		return
	}
	defer func() {
		if err := c.idem.Release(reqCtx, request.DeviceID, key); err != nil {
			log.Warn("idempotency release failed", slog.String("device_id", request.DeviceID), slog.Any("error", err))
		}
	}()

	result := c.service.Reconcile(reqCtx, &request)
	if b, err := json.Marshal(result); err == nil {
		if err := c.idem.SaveResult(reqCtx, request.DeviceID, key, b); err != nil {
			log.Warn("idempotency save failed", slog.String("device_id", request.DeviceID), slog.Any("error", err))
		}
	}

	ctx.Header(IdempotencyHeader, key)
	response.RespondJSON(ctx, http.StatusOK, result)
}

func (c *Controller) replay(ctx *gin.Context, key string, payload []byte) {
	ctx.Header(IdempotencyHeader, key)
	ctx.Header("Idempotent-Replayed", "true")
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
