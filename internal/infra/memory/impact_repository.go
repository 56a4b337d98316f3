package memory

import (
	"context"

	"zerowaste-exchange/internal/domain/impact"
	"zerowaste-exchange/internal/usecase/shared"
)

type impactRepository struct {
	store *Store
}

func NewImpactRepository(store *Store) shared.ImpactRepository {
	return &impactRepository{store: store}
}

// Apply appends the delta to the pickup log and folds it into the running
// snapshot in one critical section, keeping log and snapshot consistent.
func (r *impactRepository) Apply(_ context.Context, d impact.Delta) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.deltas = append(r.store.deltas, d)
	r.store.snapshot = r.store.snapshot.Add(d)
	return nil
}

func (r *impactRepository) Snapshot(_ context.Context) (impact.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return r.store.snapshot, nil
}

// Rebuild refolds the pickup log from zero. It must land on the same value
// the incremental snapshot carries; a divergence means the snapshot was
// mutated outside Apply.
func (r *impactRepository) Rebuild(_ context.Context) (impact.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var s impact.Snapshot
	for _, d := range r.store.deltas {
		s = s.Add(d)
	}
	return s, nil
}
