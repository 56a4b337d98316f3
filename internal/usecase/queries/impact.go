package queries

import (
	"context"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/usecase/shared"
)

type ImpactQueries interface {
	Snapshot(ctx context.Context) (impact.Snapshot, error)
	// Rebuild recomputes the snapshot from the reservation log; exposed so
	// operators can verify the incremental counters at any time.
	Rebuild(ctx context.Context) (impact.Snapshot, error)
}

type impactQueriesImpl struct {
	impacts shared.ImpactRepository
}

func NewImpactQueries(impacts shared.ImpactRepository) ImpactQueries {
	return &impactQueriesImpl{impacts: impacts}
}

func (q *impactQueriesImpl) Snapshot(ctx context.Context) (impact.Snapshot, error) {
	return q.impacts.Snapshot(ctx)
}

func (q *impactQueriesImpl) Rebuild(ctx context.Context) (impact.Snapshot, error) {
	return q.impacts.Rebuild(ctx)
}
