package api

import (
	"net/http"

	resdto "meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HistoryHandler struct {
	cmds commands.HistoryCommands
	q    queries.HistoryQueries
}

func NewHistoryHandler(cmds commands.HistoryCommands, q queries.HistoryQueries) *HistoryHandler {
	return &HistoryHandler{cmds: cmds, q: q}
}

// @Summary List booking history
// @Description Archived bookings, most recently archived first
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HistoryResponse
// @Router /api/admin/history [get]
func (h *HistoryHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromHistoryViews(views)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Delete history record
// @Tags admin
// @Security BearerAuth
// @Param id path string true "History record ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/admin/history/{id} [delete]
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		abortInvalidID(c, err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
