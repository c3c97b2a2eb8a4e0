//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/TOOL2U/LandWise/internal/handler/api"
	"github.com/TOOL2U/LandWise/internal/pkg/errs"
	"github.com/TOOL2U/LandWise/tests/common/httptest"
	commandsmock "github.com/TOOL2U/LandWise/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands)

	s.router.POST("/webhooks/stripe", s.handler.HandleStripeEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestHandleStripeEvent() {
	url := "/webhooks/stripe"
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)

	s.Run("success: verified event is acknowledged", func() {
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), payload, "t=1,v1=abc").
			Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"received": true}`, rec.Body.String())
	})

	s.Run("success: the handler passes the body bytes through untouched", func() {
		// Whitespace-significant payload; any re-serialization would alter it
		// and break signature verification downstream.
		oddPayload := []byte("{\n  \"id\": \"evt_2\" ,\"amount\": 30000.00\n}")
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), oddPayload, "t=2,v1=def").
			Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, oddPayload,
			map[string]string{"Stripe-Signature": "t=2,v1=def"})

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: invalid signature returns 400", func() {
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), payload, "t=1,v1=tampered").
			Return(errs.ErrSignatureInvalid)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=tampered"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: missing signature header returns 400", func() {
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), payload, "").
			Return(errs.ErrSignatureInvalid)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: signature failure wrapped around its cause still returns 400", func() {
		// The command layer marks the sentinel onto the verifier's error; the
		// handler must still recognize it.
		marked := errs.Mark(errs.New("webhook signature verification failed"), errs.ErrSignatureInvalid)
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), payload, "t=1,v1=tampered").
			Return(marked)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=tampered"})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid signature")
	})

	s.Run("success: verified event that cannot be resolved is still acknowledged", func() {
		// Resolution failures after verification are absorbed by the command
		// layer, so the handler sees nil and acks; a non-2xx here would make
		// the provider retry a delivery that can never succeed.
		s.mockCommands.EXPECT().
			HandleProviderEvent(gomock.Any(), payload, "t=1,v1=abc").
			Return(nil)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, payload,
			map[string]string{"Stripe-Signature": "t=1,v1=abc"})

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"received": true}`, rec.Body.String())
	})
}
