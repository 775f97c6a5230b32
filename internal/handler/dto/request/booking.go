package request

import (
	"bytes"
	"encoding/json"

	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/pkg/patch"
)

// Text fields carry no required tag: absent values are reported by the
// booking engine as missing-field.
type BookingRequest struct {
	Room      string `json:"room" binding:"max=255"`
	Date      string `json:"date" binding:"max=10"`
	StartTime string `json:"start_time" binding:"max=5"`
	EndTime   string `json:"end_time" binding:"max=5"`
	UserName  string `json:"user_name" binding:"max=255"`
	People    *int   `json:"people" binding:"omitempty,min=0,max=10000"`
	Remark    string `json:"remark" binding:"max=1000"`
}

func (r *BookingRequest) ToDomain() booking.Candidate {
	return booking.Candidate{
		Room:     r.Room,
		Date:     r.Date,
		Start:    r.StartTime,
		End:      r.EndTime,
		UserName: r.UserName,
		People:   r.People,
		Remark:   r.Remark,
	}
}

// UpdateBookingRequest is an admin edit. Omitted fields keep their stored
// value; the merged booking is validated as a whole. An explicit
// "people": null clears the stored head count.
type UpdateBookingRequest struct {
	Room      *string `json:"room,omitempty" binding:"omitempty,max=255"`
	Date      *string `json:"date,omitempty" binding:"omitempty,max=10"`
	StartTime *string `json:"start_time,omitempty" binding:"omitempty,max=5"`
	EndTime   *string `json:"end_time,omitempty" binding:"omitempty,max=5"`
	UserName  *string `json:"user_name,omitempty" binding:"omitempty,max=255"`
	People    *int    `json:"people,omitempty" binding:"omitempty,min=0,max=10000"`
	Remark    *string `json:"remark,omitempty" binding:"omitempty,max=1000"`

	// ClearPeople is set when the body carried "people": null.
	ClearPeople bool `json:"-"`
}

func (r *UpdateBookingRequest) UnmarshalJSON(data []byte) error {
	type fields UpdateBookingRequest
	var f fields
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if v, ok := raw["people"]; ok && bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
		f.ClearPeople = true
	}

	*r = UpdateBookingRequest(f)
	return nil
}

func (r *UpdateBookingRequest) ToDomain(existing *booking.Booking) booking.Candidate {
	return booking.Candidate{
		Room:     patch.Coalesce(r.Room, existing.Room()),
		Date:     patch.Coalesce(r.Date, existing.Date()),
		Start:    patch.Coalesce(r.StartTime, existing.Start()),
		End:      patch.Coalesce(r.EndTime, existing.End()),
		UserName: patch.Coalesce(r.UserName, existing.UserName()),
		People:   patch.Nullable(r.People, r.ClearPeople, existing.People()),
		Remark:   patch.Coalesce(r.Remark, existing.Remark()),
	}
}
