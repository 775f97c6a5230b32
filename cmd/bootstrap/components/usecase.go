package components

import (
	"meeting-room-booking/internal/domain/auth"
	"meeting-room-booking/internal/domain/booking"
	"meeting-room-booking/internal/domain/slot"
	"meeting-room-booking/internal/pkg/clock"
	"meeting-room-booking/internal/pkg/config"
	"meeting-room-booking/internal/pkg/password"
	"meeting-room-booking/internal/usecase"
	"meeting-room-booking/internal/usecase/commands"
	"meeting-room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewBookingEngine,
	fx.Annotate(
		NewAdminVerifier,
		fx.As(new(auth.Verifier)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomCommands,
		commands.NewHistoryCommands,
		commands.NewArchiveCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewRoomQueries,
		queries.NewHistoryQueries,
		func(store queries.BookingReadStore, clk clock.Clock, cfg config.Config) queries.AlertQueries {
			return queries.NewAlertQueries(store, clk, cfg.Booking.AlertWindow)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingEngine(cfg config.Config) (*booking.Engine, error) {
	day, err := slot.NewDay(cfg.Booking.DayStart, cfg.Booking.DayEnd)
	if err != nil {
		return nil, err
	}
	return booking.NewEngine(day), nil
}

func NewAdminVerifier(cfg config.Config) *password.Verifier {
	return password.NewVerifier(cfg.Admin.Username, cfg.Admin.PasswordHash)
}
