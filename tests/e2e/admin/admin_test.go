//go:build e2e

package admin_test

import (
	"net/http"
	"testing"
	"time"

	"meeting-room-booking/internal/handler/dto/request"
	"meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/internal/pkg/cookie"
	"meeting-room-booking/tests/common/authtest"
	"meeting-room-booking/tests/common/dbtest"
	"meeting-room-booking/tests/common/httptest"
	"meeting-room-booking/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const adminURL = "/api/admin"

type adminSuite struct {
	e2e.SharedSuite
	token string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.LoginTestAdmin(s.T(), s.Router)
}

func (s *adminSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credential", username: "admin", password: config.TestAdminPassword, expectedStatus: http.StatusOK},
		{name: "wrong password", username: "admin", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
		{name: "unknown user", username: "root", password: config.TestAdminPassword, expectedStatus: http.StatusUnauthorized},
		{name: "blank username", username: "", password: config.TestAdminPassword, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/login",
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res response.LoginResponse
				httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
				require.Equal(t, "admin", res.Username)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			}
		})
	}
}

func (s *adminSuite) TestAccessControl() {
	s.Run("admin routes need a token", func() {
		t := s.T()
		for _, path := range []string{"/bookings", "/history", "/rooms", "/alerts"} {
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, path)
		}
	})

	s.Run("cookie from login is accepted", func() {
		t := s.T()
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: s.token}}

		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, adminURL+"/bookings", nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutAdmin(t, s.Router, cookies)
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/bookings", nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *adminSuite) TestBookingManagement() {
	s.Run("admin edit keeps omitted fields and rechecks overlaps", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(1), "10:00", "11:00", "Alice")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(1), "13:00", "14:00", "Bob")
		url := adminURL + "/bookings/" + id.String()

		start, end := "11:00", "12:00"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			request.UpdateBookingRequest{StartTime: &start, EndTime: &end}, s.token)
		var updated response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "11:00", updated.StartTime)
		require.Equal(t, "Alice", updated.UserName)
		require.Equal(t, "Room A", updated.Room)

		// moving onto Bob's slot conflicts
		start, end = "12:30", "13:30"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			request.UpdateBookingRequest{StartTime: &start, EndTime: &end}, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// keeping its own slot is not a self-conflict
		remark := "projector needed"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, url,
			request.UpdateBookingRequest{Remark: &remark}, s.token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, remark, updated.Remark)
	})

	s.Run("get and delete by id", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, "Room B", s.DateOffset(1), "09:00", "09:30", "Carol")
		url := adminURL + "/bookings/" + id.String()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		var got response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)
		require.Equal(t, "Carol", got.UserName)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("admin list includes bookings from every date", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(1), "09:00", "10:00", "tomorrow")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(5), "09:00", "10:00", "next week")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/bookings", nil, s.token)
		var listed []response.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)
	})
}

func (s *adminSuite) TestRooms() {
	s.Run("add, rename and delete", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/rooms", request.RoomRequest{Name: "  Room D "}, s.token)
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "Room D", created.Name)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/rooms", request.RoomRequest{Name: "Room A"}, s.token)
		require.Equal(t, http.StatusConflict, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, adminURL+"/rooms/"+created.ID.String(), request.RoomRequest{Name: "Boardroom"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/rooms", nil, "")
		var names []string
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &names)
		require.Contains(t, names, "Boardroom")
		require.NotContains(t, names, "Room D")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/rooms/"+created.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/rooms/"+created.ID.String(), nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("rename does not rewrite existing bookings", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room A")
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.DateOffset(1), "09:00", "10:00", "Alice")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, adminURL+"/rooms/"+roomID.String(), request.RoomRequest{Name: "Room Alpha"}, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var room string
		require.NoError(t, s.DB.QueryRow(t.Context(), "SELECT room FROM bookings").Scan(&room))
		require.Equal(t, "Room A", room)
	})
}

func (s *adminSuite) TestHistory() {
	s.Run("manual sweep archives and history records can be deleted", func() {
		t := s.T()
		id := dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "09:00", "09:30", "Alice")
		s.Clock.Add(2 * time.Hour)
		// tokens are checked against the same clock
		s.token = authtest.LoginTestAdmin(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/archive/sweep", nil, s.token)
		var swept response.SweepResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &swept)
		require.Equal(t, 1, swept.Archived)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/history", nil, s.token)
		var records []response.HistoryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &records)
		require.Len(t, records, 1)
		require.Equal(t, id, records[0].ID)
		require.True(t, s.Clock.Now().Equal(records[0].ArchivedAt))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/history/"+id.String(), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)
		require.Zero(t, dbtest.CountRows(t, s.DB, "bookings_history"))
	})
}

func (s *adminSuite) TestAlerts() {
	s.Run("meetings starting or ending within the window", func() {
		t := s.T()
		dbtest.CreateTestBooking(t, s.DB, "Room A", s.Today(), "10:00", "11:00", "Bob")
		dbtest.CreateTestBooking(t, s.DB, "Room B", s.Today(), "11:00", "12:00", "Alice")
		dbtest.CreateTestBooking(t, s.DB, "Room C", s.Today(), "15:00", "16:00", "Carol")
		s.Clock.Set(time.Date(2030, 1, 15, 10, 50, 0, 0, s.Clock.Now().Location()))
		s.token = authtest.LoginTestAdmin(t, s.Router)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/alerts", nil, s.token)
		var alerts []response.AlertResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &alerts)
		require.Equal(t, "no-store", w.Header().Get("Cache-Control"))

		messages := make([]string, len(alerts))
		for i, a := range alerts {
			messages[i] = a.Message
		}
		require.ElementsMatch(t, []string{
			"Meeting in Room A ends at 11:00 (Booked by Bob).",
			"Meeting in Room B starts at 11:00 (Booked by Alice).",
		}, messages)
	})
}
