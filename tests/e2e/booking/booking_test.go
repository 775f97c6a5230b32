//go:build e2e

package booking_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/tests/common/dbtest"
	"meeting-room-booking/tests/common/httptest"
	"meeting-room-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	availableURL = "/api/available_times"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) newBooking(room, date, start, end, user string) request.BookingRequest {
	people := 3
	return request.BookingRequest{
		Room:      room,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		UserName:  user,
		People:    &people,
	}
}

func (s *bookingSuite) TestCreateAndList() {
	s.Run("created booking shows up in today's listing", func() {
		t := s.T()
		req := s.newBooking("Room A", s.Today(), "10:00", "11:00", "Alice")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")
		var created response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "Room A", created.Room)
		require.Equal(t, s.Today(), created.Date)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		var listed []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, created.ID, listed[0].ID)
	})

	s.Run("listing starts today and can be narrowed to one date", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(-1), "10:00", "11:00", "past")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "13:00", "14:00", "today")
		dbtest.CreateTestBooking(t, s.DB, "Room B", s.DateOffset(2), "09:00", "09:30", "later")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		var upcoming []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &upcoming)
		// yesterday's booking was archived by the sweep before the read
		require.Len(t, upcoming, 2)
		require.Equal(t, "today", upcoming[0].UserName)
		require.Equal(t, "later", upcoming[1].UserName)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"?date="+s.DateOffset(2), nil, "")
		var onDate []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &onDate)
		require.Len(t, onDate, 1)
		require.Equal(t, "later", onDate[0].UserName)
	})

	s.Run("validation failures come back in order", func() {
		testCases := []struct {
			name         string
			mutate       func(*request.BookingRequest)
			expectedCode int
			expectedKind string
		}{
			{name: "missing user", mutate: func(r *request.BookingRequest) { r.UserName = "" }, expectedCode: http.StatusBadRequest, expectedKind: "missing-field"},
			{name: "bad date", mutate: func(r *request.BookingRequest) { r.Date = "2030-13-40" }, expectedCode: http.StatusBadRequest, expectedKind: "parse-error"},
			{name: "off grid", mutate: func(r *request.BookingRequest) { r.StartTime = "10:15" }, expectedCode: http.StatusBadRequest, expectedKind: "invalid-time-grid"},
			{name: "after hours", mutate: func(r *request.BookingRequest) { r.EndTime = "17:30" }, expectedCode: http.StatusBadRequest, expectedKind: "invalid-time-grid"},
			{name: "end before start", mutate: func(r *request.BookingRequest) { r.StartTime, r.EndTime = "11:00", "10:00" }, expectedCode: http.StatusBadRequest, expectedKind: "end-before-start"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				t := s.T()
				req := s.newBooking("Room A", s.Today(), "10:00", "11:00", "Alice")
				tc.mutate(&req)

				w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, req, "")

				body := httptest.AssertErrorResponse(t, w, tc.expectedCode, "")
				require.Equal(t, tc.expectedKind, body.Detail.Kind)
				require.Zero(t, dbtest.CountRows(t, s.DB, "bookings"))
			})
		}
	})

	s.Run("overlap is a conflict but touching slots are fine", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "10:00", "11:00", "Alice")

		overlap := s.newBooking("Room A", s.Today(), "10:30", "11:30", "Bob")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, overlap, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		adjacent := s.newBooking("Room A", s.Today(), "11:00", "12:00", "Bob")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, adjacent, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		otherRoom := s.newBooking("Room B", s.Today(), "10:00", "11:00", "Carol")
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL, otherRoom, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

// race releases all requests at once and returns their status codes in order.
func (s *bookingSuite) race(reqs []*http.Request) []int {
	codes := make([]int, len(reqs))
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i, req := range reqs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			w := nethttptest.NewRecorder()
			s.Router.ServeHTTP(w, req)
			codes[i] = w.Code
		}()
	}
	close(start)
	wg.Wait()
	return codes
}

func (s *bookingSuite) TestConcurrentDoubleBooking() {
	s.Run("exactly one of many identical requests wins", func() {
		t := s.T()
		const attempts = 8
		reqs := make([]*http.Request, attempts)
		for i := range reqs {
			reqs[i] = httptest.NewJSONRequest(t, http.MethodPost, bookingsURL,
				s.newBooking("Room C", s.DateOffset(1), "14:00", "15:00", "racer"))
		}

		codes := s.race(reqs)

		counts := map[int]int{}
		for _, c := range codes {
			counts[c]++
		}
		require.Equal(t, 1, counts[http.StatusCreated], "codes: %v", codes)
		require.Equal(t, attempts-1, counts[http.StatusConflict], "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings"))
	})

	s.Run("overlapping but different slots race to one winner", func() {
		t := s.T()
		slots := [][2]string{{"09:00", "10:30"}, {"10:00", "11:00"}, {"09:30", "10:30"}, {"10:00", "12:00"}}

		reqs := make([]*http.Request, len(slots))
		for i, sl := range slots {
			reqs[i] = httptest.NewJSONRequest(t, http.MethodPost, bookingsURL,
				s.newBooking("Room B", s.DateOffset(1), sl[0], sl[1], "racer"))
		}

		codes := s.race(reqs)

		created := 0
		for _, c := range codes {
			if c == http.StatusCreated {
				created++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
	})
}

func (s *bookingSuite) TestAvailableTimes() {
	s.Run("starts skip booked slots and ends stop at the next booking", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "10:00", "11:00", "Alice")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "13:00", "14:00", "Bob")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			availableURL+"?room=Room+A&date="+s.Today()+"&start=11:00", nil, "")

		var got response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.True(t, got.OK)
		require.Len(t, got.Starts, 12)
		require.NotContains(t, got.Starts, "10:00")
		require.NotContains(t, got.Starts, "13:30")
		require.Equal(t, []string{"11:30", "12:00", "12:30", "13:00"}, got.Ends)
	})

	s.Run("missing room is a 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availableURL+"?date="+s.Today(), nil, "")

		body := httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Equal(t, "missing-query-param", body.Detail.Kind)
	})

	s.Run("start off the grid is a 400", func() {
		t := s.T()
		for _, start := range []string{"09:15", "08:00", "17:00"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet,
				availableURL+"?room=Room+A&date="+s.Today()+"&start="+start, nil, "")

			body := httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
			require.Equal(t, "invalid-time-grid", body.Detail.Kind, start)
			require.Equal(t, "start", body.Detail.Field, start)
		}
	})
}

func (s *bookingSuite) TestSweep() {
	s.Run("ended bookings move to history once the clock passes their end", func() {
		t := s.T()
		early := dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "09:00", "10:00", "early")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "10:00", "11:00", "late")

		// exactly at the end is not yet expired
		s.Clock.Set(time.Date(2030, 1, 15, 10, 0, 0, 0, s.Clock.Now().Location()))
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "bookings"))

		s.Clock.Add(time.Minute)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		var listed []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 1)
		require.Equal(t, "late", listed[0].UserName)

		var historyID string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT id::text FROM bookings_history").Scan(&historyID))
		require.Equal(t, early.String(), historyID)

		// a second read does not archive again
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "bookings_history"))
	})
}
