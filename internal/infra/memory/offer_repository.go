package memory

import (
	"context"
	"sort"
	"time"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type offerRepository struct {
	store *Store
}

func NewOfferRepository(store *Store) shared.OfferRepository {
	return &offerRepository{store: store}
}

func (r *offerRepository) Create(_ context.Context, o *offer.Offer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.offers[o.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "offer already exists: "+o.ID().String())
	}
	r.store.offers[o.ID()] = cloneOffer(o)
	return nil
}

// CreateIfNoneActive holds the write lock across the check and the insert,
// so two racing upserts for one (batch, audience) pair serialize: the loser
// sees the winner's offer instead of inserting a duplicate.
func (r *offerRepository) CreateIfNoneActive(_ context.Context, o *offer.Offer, now time.Time) (*offer.Offer, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.offers {
		if existing.BatchID() == o.BatchID() && existing.Audience() == o.Audience() && existing.IsActiveAt(now) {
			return cloneOffer(existing), false, nil
		}
	}
	r.store.offers[o.ID()] = cloneOffer(o)
	return cloneOffer(o), true, nil
}

func (r *offerRepository) FindByID(_ context.Context, id uuid.UUID) (*offer.Offer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	o, ok := r.store.offers[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "offer not found: "+id.String())
	}
	return cloneOffer(o), nil
}

func (r *offerRepository) FindActive(_ context.Context, batchID uuid.UUID, audience offer.Audience, now time.Time) (*offer.Offer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.offers {
		if o.BatchID() == batchID && o.Audience() == audience && o.IsActiveAt(now) {
			return cloneOffer(o), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "no active offer for batch "+batchID.String())
}

func (r *offerRepository) ListVisible(_ context.Context, audience offer.Audience, now time.Time) ([]*offer.Offer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*offer.Offer, 0)
	for _, o := range r.store.offers {
		if o.Audience() == audience && o.IsVisibleAt(now) {
			out = append(out, cloneOffer(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EndTS().Equal(out[j].EndTS()) {
			return out[i].EndTS().Before(out[j].EndTS())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out, nil
}

// RaiseDiscount applies the monotonic update inside the store lock. A pct
// at or below the stored value leaves the offer untouched, so racing
// recalculations can only ever deepen the markdown.
func (r *offerRepository) RaiseDiscount(_ context.Context, offerID uuid.UUID, pct int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	o, ok := r.store.offers[offerID]
	if !ok {
		return infra.NewRepoErr(infra.KindNotFound, "offer not found: "+offerID.String())
	}
	o.RaiseDiscount(pct)
	return nil
}
