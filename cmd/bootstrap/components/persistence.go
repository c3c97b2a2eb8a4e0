package components

import (
	"github.com/TOOL2U/LandWise/internal/infra/readstore"
	"github.com/TOOL2U/LandWise/internal/infra/repository"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		repository.NewBookingRepository,
		readstore.NewBookingReadStore,
	),
)
