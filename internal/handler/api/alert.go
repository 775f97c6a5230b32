package api

import (
	"net/http"

	resdto "meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	q queries.AlertQueries
}

func NewAlertHandler(q queries.AlertQueries) *AlertHandler {
	return &AlertHandler{q: q}
}

// @Summary Upcoming meeting alerts
// @Description Meetings today starting or ending within the alert window
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AlertResponse
// @Router /api/admin/alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	views, err := h.q.Upcoming(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, resdto.FromAlertViews(views))
}
