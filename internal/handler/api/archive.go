package api

import (
	"net/http"

	resdto "meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	cmds commands.ArchiveCommands
}

func NewArchiveHandler(cmds commands.ArchiveCommands) *ArchiveHandler {
	return &ArchiveHandler{cmds: cmds}
}

// @Summary Run archival sweep
// @Description Move every booking that has already ended into history now
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SweepResponse
// @Router /api/admin/archive/sweep [post]
func (h *ArchiveHandler) Sweep(c *gin.Context) {
	n, err := h.cmds.Sweep(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SweepResponse{Archived: n})
}
