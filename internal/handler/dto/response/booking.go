package response

import (
	"time"

	"meeting-room-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
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

type HistoryResponse struct {
	BookingResponse
	ArchivedAt time.Time `json:"archived_at"`
}

type AvailabilityResponse struct {
	OK     bool     `json:"ok"`
	Starts []string `json:"starts"`
	Ends   []string `json:"ends"`
}

type AlertResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Time     string `json:"time"`
	Room     string `json:"room"`
	UserName string `json:"user_name"`
	Message  string `json:"message"`
}

type SweepResponse struct {
	Archived int `json:"archived"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromBookingViews(views []*queries.BookingView) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, 0, len(views))
	if len(views) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res, &views); err != nil {
		return nil, err
	}
	return res, nil
}

func FromHistoryViews(views []*queries.HistoryView) ([]*HistoryResponse, error) {
	res := make([]*HistoryResponse, len(views))
	for i, v := range views {
		item := &HistoryResponse{ArchivedAt: v.ArchivedAt}
		if err := copier.Copy(&item.BookingResponse, v); err != nil {
			return nil, err
		}
		res[i] = item
	}
	return res, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		OK:     true,
		Starts: v.Starts,
		Ends:   v.Ends,
	}
}

func FromAlertViews(views []*queries.AlertView) []*AlertResponse {
	res := make([]*AlertResponse, len(views))
	for i, v := range views {
		res[i] = &AlertResponse{
			ID:       v.ID,
			Type:     v.Type,
			Time:     v.Time,
			Room:     v.Room,
			UserName: v.UserName,
			Message:  v.Message,
		}
	}
	return res
}
