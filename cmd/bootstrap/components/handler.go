package components

import (
	"zerowaste-exchange/internal/handler"
	"zerowaste-exchange/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewOfferHandler,
		api.NewReservationHandler,
		api.NewPickupHandler,
		api.NewMarkdownHandler,
		api.NewImpactHandler,
		func(
			catalog *api.CatalogHandler,
			offer *api.OfferHandler,
			reservation *api.ReservationHandler,
			pickup *api.PickupHandler,
			markdown *api.MarkdownHandler,
			impact *api.ImpactHandler,
		) handler.Handlers {
			return handler.Handlers{
				Catalog:     catalog,
				Offer:       offer,
				Reservation: reservation,
				Pickup:      pickup,
				Markdown:    markdown,
				Impact:      impact,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
