package events

import (
	"net/http"

	"waitwise/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: NewValidator(),
	}
}

// CreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body      CreateEventRequest  true  "Event"
// @Success      200   {object}  domain.Event
// @Failure      400   {object}  response.ErrorResponse
// @Failure      401   {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events [post]
func (ctrl *controller) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}
	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondBindError(c, err)
		return
	}

	event, err := ctrl.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, http.StatusOK, event)
}

// GetEvent godoc
// @Summary      Get an event with its table layout
// @Tags         events
// @Produce      json
// @Param        event_id  path      string  true  "Event ID"
// @Success      200       {object}  domain.Event
// @Failure      404       {object}  response.ErrorResponse
// @Security     ApiKeyAuth
// @Router       /events/{event_id} [get]
func (ctrl *controller) GetEvent(c *gin.Context) {
	event, err := ctrl.service.GetEvent(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, http.StatusOK, event)
}
