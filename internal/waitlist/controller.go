package waitlist

import (
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

// JoinWaitlist godoc
// @Summary      Join an event waitlist
// @Tags         waitlist
// @Accept       json
// @Produce      json
// @Param        event_id  path      string               true  "Event ID"
// @Param        body      body      JoinWaitlistRequest  true  "Party"
// @Success      200       {object}  domain.WaitlistEntry
// @Failure      404       {object}  response.ErrorResponse
// @Failure      409       {object}  response.ErrorResponse
// @Router       /events/{event_id}/waitlist [post]
func (c *Controller) JoinWaitlist(ctx *gin.Context) {
	var request JoinWaitlistRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}
	if err := c.validator.Struct(&request); err != nil {
		response.RespondBindError(ctx, err)
		return
	}

	entry, err := c.service.Join(ctx.Request.Context(), ctx.Param("event_id"), &request)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, entry)
}

// GetEntry godoc
// @Summary      Get a waitlist entry
// @Tags         waitlist
// @Produce      json
// @Param        event_id  path      string  true  "Event ID"
// @Param        entry_id  path      string  true  "Entry ID"
// @Success      200       {object}  domain.WaitlistEntry
// @Failure      404       {object}  response.ErrorResponse
// @Router       /events/{event_id}/waitlist/{entry_id} [get]
func (c *Controller) GetEntry(ctx *gin.Context) {
	entry, err := c.service.GetEntry(ctx.Request.Context(), ctx.Param("event_id"), ctx.Param("entry_id"))
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, entry)
}

// ListEntries godoc
// @Summary      List an event's waitlist
// @Tags         waitlist
// @Produce      json
// @Param        event_id  path      string  true   "Event ID"
// @Param        page      query     int     false  "Page (1-based)"  default(1)
// @Param        pageSize  query     int     false  "Page size"       default(20)
// @Param        type      query     string  false  "reservation or waitlist"
// @Param        status    query     string  false  "Entry status"
// @Success      200       {object}  PageResponse
// @Failure      400       {object}  response.ErrorResponse
// @Failure      404       {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{event_id}/waitlist [get]
func (c *Controller) ListEntries(ctx *gin.Context) {
	var query ListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondBindError(ctx, err)
		return
	}
	if err := c.validator.Struct(&query); err != nil {
		response.RespondBindError(ctx, err)
		return
	}

	page, err := c.service.List(ctx.Request.Context(), ctx.Param("event_id"), query)
	if err != nil {
		response.RespondError(ctx, err)
		return
	}

	response.RespondJSON(ctx, http.StatusOK, page)
}
