package booking

import "time"

// SelectExpired returns the bookings whose end instant is strictly before now,
// in input order. now carries the wall-clock location bookings are read in.
func SelectExpired(now time.Time, bookings []*Booking) []*Booking {
	var expired []*Booking
	for _, b := range bookings {
		if b.IsExpired(now) {
			expired = append(expired, b)
		}
	}
	return expired
}
