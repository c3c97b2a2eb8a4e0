package components

import (
	"github.com/TOOL2U/LandWise/internal/handler"
	"github.com/TOOL2U/LandWise/internal/handler/api"
	"github.com/TOOL2U/LandWise/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewPricingHandler,
		api.NewBookingHandler,
		api.NewInquiryHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
