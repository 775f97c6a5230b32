//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"meeting-room-booking/internal/domain/room"
	"meeting-room-booking/internal/handler/api"
	reqdto "meeting-room-booking/internal/handler/dto/request"
	resdto "meeting-room-booking/internal/handler/dto/response"
	"meeting-room-booking/internal/pkg/errs"
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

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/rooms", h.ListNames)
	s.router.GET("/admin/rooms", h.List)
	s.router.POST("/admin/rooms", h.Create)
	s.router.PUT("/admin/rooms/:id", h.Rename)
	s.router.DELETE("/admin/rooms/:id", h.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestList() {
	views := []*queries.RoomView{
		{ID: uuid.New(), Name: "Room A"},
		{ID: uuid.New(), Name: "Room B"},
	}

	s.Run("success: public listing is names only", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`["Room A","Room B"]`, rec.Body.String())
	})

	s.Run("success: admin listing carries ids", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(views[0].ID, response[0].ID)
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	req := reqdto.RoomRequest{Name: "Room D"}

	s.Run("success: returns 201", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Add(gomock.Any(), req).Return(&commands.RoomResult{ID: id, Name: "Room D"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", req, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
	})

	s.Run("error: missing name is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: duplicate name is 409", func() {
		s.mockCommands.EXPECT().Add(gomock.Any(), req).Return(nil, commands.ErrRoomExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", req, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrRoomExists.Error())
	})

	s.Run("error: blank name reports the domain reason", func() {
		blank := reqdto.RoomRequest{Name: "   "}
		s.mockCommands.EXPECT().Add(gomock.Any(), blank).
			Return(nil, errs.Mark(room.ErrEmptyRoomName, commands.ErrInvalidRoomName)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/rooms", blank, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, room.ErrEmptyRoomName.Error())
	})
}

func (s *RoomHandlerTestSuite) TestRenameAndDelete() {
	id := uuid.New()
	req := reqdto.RoomRequest{Name: "Room Z"}

	s.Run("success: rename", func() {
		s.mockCommands.EXPECT().Rename(gomock.Any(), id, req).Return(&commands.RoomResult{ID: id, Name: "Room Z"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/rooms/"+id.String(), req, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Room Z", response.Name)
	})

	s.Run("error: rename unknown room is 404", func() {
		s.mockCommands.EXPECT().Rename(gomock.Any(), id, req).Return(nil, commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/rooms/"+id.String(), req, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "room not found")
	})

	s.Run("success: delete", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/rooms/42", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}
