package request

type RoomRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}
