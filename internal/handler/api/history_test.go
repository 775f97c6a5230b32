//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"meeting-room-booking/internal/handler/api"
	resdto "meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/queries"
	"meeting-room-booking/tests/common/httptest"
	commandsmock "meeting-room-booking/tests/mock/commands"
	queriesmock "meeting-room-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHistoryCommands
	mockQueries  *queriesmock.MockHistoryQueries
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHistoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	h := api.NewHistoryHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/admin/history", h.List)
	s.router.DELETE("/admin/history/:id", h.Delete)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestList() {
	archivedAt := time.Date(2025, 1, 10, 11, 5, 0, 0, time.UTC)
	id := uuid.New()

	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.HistoryView{{
		ID:         id,
		UserName:   "Alice",
		Room:       "Room A",
		Date:       "2025-01-10",
		StartTime:  "10:00",
		EndTime:    "11:00",
		ArchivedAt: archivedAt,
	}}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/history", nil, "")

	var response []resdto.HistoryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 1)
	s.Equal(id, response[0].ID)
	s.Equal("Alice", response[0].UserName)
	s.True(archivedAt.Equal(response[0].ArchivedAt))
}

func (s *HistoryHandlerTestSuite) TestDelete() {
	id := uuid.New()

	testCases := []struct {
		name           string
		commandsError  error
		expectedStatus int
	}{
		{name: "success: removed", expectedStatus: http.StatusNoContent},
		{name: "error: unknown record", commandsError: commands.ErrHistoryNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(tc.commandsError).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/history/"+id.String(), nil, "")

			s.Equal(tc.expectedStatus, rec.Code)
		})
	}
}
