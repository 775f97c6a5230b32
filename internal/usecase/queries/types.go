package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Room      string    `json:"room"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	People    *int      `json:"people,omitempty"`
	Remark    string    `json:"remark"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryView struct {
	ID         uuid.UUID `json:"id"`
	UserName   string    `json:"user_name"`
	Room       string    `json:"room"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	People     *int      `json:"people,omitempty"`
	Remark     string    `json:"remark"`
	CreatedAt  time.Time `json:"created_at"`
	ArchivedAt time.Time `json:"archived_at"`
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type AvailabilityView struct {
	Room   string   `json:"room"`
	Date   string   `json:"date"`
	Start  string   `json:"start,omitempty"`
	Starts []string `json:"starts"`
	Ends   []string `json:"ends"`
}

type AlertView struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Time     string `json:"time"`
	Room     string `json:"room"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}
