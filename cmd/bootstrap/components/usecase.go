package components

import (
	"github.com/TOOL2U/LandWise/internal/pkg/clock"
	"github.com/TOOL2U/LandWise/internal/pkg/config"
	"github.com/TOOL2U/LandWise/internal/pkg/jwt"
	"github.com/TOOL2U/LandWise/internal/usecase/commands"
	"github.com/TOOL2U/LandWise/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		func(store queries.BookingReadStore, cfg config.Config) queries.PricingQueries {
			return queries.NewPricingQueries(store, cfg.Booking.EarlyAccessLimit)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			repo commands.BookingRepository,
			gateway commands.CheckoutGateway,
			pricing queries.PricingQueries,
			idempotency commands.IdempotencyStore,
			cfg config.Config,
		) commands.CheckoutCommands {
			return commands.NewCheckoutCommands(repo, gateway, pricing, idempotency, cfg.Booking.IdempotencyTTL)
		},
		commands.NewBookingCommands,
		func(mailer commands.Mailer, cfg config.Config) commands.InquiryCommands {
			return commands.NewInquiryCommands(mailer, cfg.Email.NotifyTo)
		},
		func(cfg config.Config, jwtService *jwt.Service) commands.AuthCommands {
			return commands.NewAuthCommands(cfg.Admin, jwtService)
		},
	),
)
