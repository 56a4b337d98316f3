package components

import (
	"context"
	"fmt"
	"log/slog"

	"zerowaste-exchange/internal/infra/memory"
	"zerowaste-exchange/internal/infra/postgres"
	"zerowaste-exchange/internal/pkg/config"
	"zerowaste-exchange/internal/usecase/shared"

	"go.uber.org/fx"
)

// Repositories bundles the five ports so driver selection happens exactly
// once.
type Repositories struct {
	Products     shared.ProductRepository
	Batches      shared.BatchRepository
	Offers       shared.OfferRepository
	Reservations shared.ReservationRepository
	Impacts      shared.ImpactRepository
}

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositories,
		func(r *Repositories) shared.ProductRepository { return r.Products },
		func(r *Repositories) shared.BatchRepository { return r.Batches },
		func(r *Repositories) shared.OfferRepository { return r.Offers },
		func(r *Repositories) shared.ReservationRepository { return r.Reservations },
		func(r *Repositories) shared.ImpactRepository { return r.Impacts },
	),
)

func NewRepositories(lc fx.Lifecycle, cfg config.Config) (*Repositories, error) {
	switch cfg.Store.Driver {
	case "postgres":
		return newPostgresRepositories(lc, cfg)
	case "memory", "":
		slog.Info("using in-process store driver")
		return NewMemoryRepositories(memory.NewStore()), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Store.Driver)
	}
}

// NewMemoryRepositories is exported for test harnesses that seed a store
// directly.
func NewMemoryRepositories(store *memory.Store) *Repositories {
	return &Repositories{
		Products:     memory.NewProductRepository(store),
		Batches:      memory.NewBatchRepository(store),
		Offers:       memory.NewOfferRepository(store),
		Reservations: memory.NewReservationRepository(store),
		Impacts:      memory.NewImpactRepository(store),
	}
}

func newPostgresRepositories(lc fx.Lifecycle, cfg config.Config) (*Repositories, error) {
	pool, cleanup, err := postgres.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(context.Background(), pool); err != nil {
			cleanup()
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	slog.Info("using postgres store driver", "host", cfg.DB.Host, "db", cfg.DB.DBName)
	return &Repositories{
		Products:     postgres.NewProductRepository(pool),
		Batches:      postgres.NewBatchRepository(pool),
		Offers:       postgres.NewOfferRepository(pool),
		Reservations: postgres.NewReservationRepository(pool),
		Impacts:      postgres.NewImpactRepository(pool),
	}, nil
}
