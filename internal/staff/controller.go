package staff

import (
	"errors"
	"io"
	"net/http"

	"waitwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Dashboard godoc
// @Summary      Occupancy and queue snapshot
// @Tags         staff
// @Produce      json
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  DashboardResponse
// @Failure      404       {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{event_id}/staff/dashboard [get]
func (c *Controller) Dashboard(ctx *gin.Context) {
	dashboard, err := c.service.Dashboard(ctx.Request.Context(), ctx.Param("event_id"))
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, dashboard)
}

// Promote godoc
// @Summary      Notify the next parties in line
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        event_id  path      string          true  "Event ID"
// @Param        body      body      PromoteRequest  true  "Batch"
// @Success      200       {object}  PromoteResponse
// @Failure      409       {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{event_id}/staff/promote [post]
func (c *Controller) Promote(ctx *gin.Context) {
	var request PromoteRequest
	// An empty body promotes one party of any type
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		response.RespondBindError(ctx, err)
		return
	}
	if err := c.validator.Struct(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}

	result, err := c.service.Promote(ctx.Request.Context(), ctx.Param("event_id"), &request)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, result)
}

// Seat godoc
// @Summary      Seat a party
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        event_id  path      string       true  "Event ID"
// @Param        body      body      SeatRequest  true  "Party and optional table"
// @Success      200       {object}  domain.WaitlistEntry
// @Failure      404       {object}  response.ErrorResponse
// @Failure      409       {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{event_id}/staff/seat [post]
func (c *Controller) Seat(ctx *gin.Context) {
	var request SeatRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}
	if err := c.validator.Struct(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}

	entry, err := c.service.Seat(ctx.Request.Context(), ctx.Param("event_id"), &request)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, entry)
}
