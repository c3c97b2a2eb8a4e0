//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/TOOL2U/LandWise/internal/handler/api"
	reqdto "github.com/TOOL2U/LandWise/internal/handler/dto/request"
	resdto "github.com/TOOL2U/LandWise/internal/handler/dto/response"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"
	"github.com/TOOL2U/LandWise/tests/common/builder"
	"github.com/TOOL2U/LandWise/tests/common/httptest"
	commandsmock "github.com/TOOL2U/LandWise/tests/mock/commands"
	queriesmock "github.com/TOOL2U/LandWise/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewAdminHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/admin/login", s.handler.Login)
	s.router.GET("/admin/bookings", s.handler.ListBookings)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/admin/login"
	reqBody := reqdto.AdminLoginRequest{Email: "ops@landwise.example", Password: "correct horse"}

	s.Run("success: returns the token", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(&commands.LoginResult{Token: "jwt-token", Email: reqBody.Email}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("jwt-token", response.Token)
		s.Equal(reqBody.Email, response.Email)
	})

	s.Run("error: 401 on wrong credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, errs.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 503 when no admin credential is configured", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return(nil, errs.ErrAdminNotConfigured)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "not configured")
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			reqdto.AdminLoginRequest{Email: "not-an-email", Password: "x"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	url := "/admin/bookings"

	s.Run("success: returns the read-side list", func() {
		item := builder.NewBookingBuilder().BuildListItem()
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.BookingListItem{item}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var response []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.ID, response[0].ID)
		s.Equal(item.PaymentStatus, response[0].PaymentStatus)
	})

	s.Run("error: 500 when the read side fails", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return(nil, errs.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
