package api

import (
	"errors"
	"log/slog"
	"net/http"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/domain/room"
	"meeting-room-booking/internal/domain/slot"
	"meeting-room-booking/internal/handler/httperr"
	"meeting-room-booking/internal/pkg/errs"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	commands.ErrBookingNotFound,
	queries.ErrBookingNotFound,
	commands.ErrRoomNotFound,
	commands.ErrHistoryNotFound,
}

// abortWithUseCaseError renders err with the status its sentinel maps to.
// Unknown errors become a 500 without leaking their text.
func abortWithUseCaseError(c *gin.Context, err error) {
	var ve *booking.ValidationError
	if errors.As(err, &ve) {
		status := http.StatusBadRequest
		if ve.Kind == booking.KindSlotConflict {
			status = http.StatusConflict
		}
		httperr.AbortWithError(c, status, err, ve.Error(), &httperr.Detail{Kind: string(ve.Kind), Field: ve.Field})
		return
	}

	for _, target := range notFoundErrors {
		if errs.Is(err, target) {
			httperr.AbortWithError(c, http.StatusNotFound, err, target.Error(), &httperr.Detail{Kind: "not-found"})
			return
		}
	}

	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, booking.ErrInvalidDate.Error(), &httperr.Detail{Kind: "parse-error", Field: "date"})
	case errors.Is(err, slot.ErrParse):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "times must be formatted as HH:MM", &httperr.Detail{Kind: "parse-error"})
	case errs.Is(err, commands.ErrRoomExists):
		httperr.AbortWithError(c, http.StatusConflict, err, commands.ErrRoomExists.Error(), &httperr.Detail{Kind: "room-exists"})
	case errs.Is(err, commands.ErrInvalidRoomName):
		httperr.AbortWithError(c, http.StatusBadRequest, err, roomNameMessage(err), &httperr.Detail{Kind: "invalid-room-name", Field: "name"})
	case errs.Is(err, commands.ErrInvalidCredentials):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
	case errs.Is(err, commands.ErrAuthenticationFailed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Username and password are required", nil)
	default:
		slog.Error("unhandled use case error",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func roomNameMessage(err error) string {
	for _, known := range []error{room.ErrEmptyRoomName, room.ErrRoomNameTooLong} {
		if errs.Is(err, known) {
			return known.Error()
		}
	}
	return commands.ErrInvalidRoomName.Error()
}

func abortInvalidRequest(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", &httperr.Detail{Kind: "invalid-request"})
}

func abortInvalidID(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", &httperr.Detail{Kind: "invalid-id", Field: "id"})
}
