package response

import (
	"meeting-room-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	res := make([]*RoomResponse, len(views))
	for i, v := range views {
		res[i] = &RoomResponse{ID: v.ID, Name: v.Name}
	}
	return res
}

// RoomNames is the public room listing.
func RoomNames(views []*queries.RoomView) []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}
