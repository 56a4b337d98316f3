package memory

import (
	"context"
	"sort"
	"strings"

	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type productRepository struct {
	store *Store
}

func NewProductRepository(store *Store) shared.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) Create(_ context.Context, p *product.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := strings.ToUpper(p.SKU())
	if _, exists := r.store.productBySKU[key]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "sku already registered: "+p.SKU())
	}
	r.store.products[p.ID()] = p
	r.store.productBySKU[key] = p.ID()
	return nil
}

func (r *productRepository) FindByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "product not found: "+id.String())
	}
	return p, nil
}

func (r *productRepository) FindBySKU(_ context.Context, sku string) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.productBySKU[strings.ToUpper(strings.TrimSpace(sku))]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "product not found: "+sku)
	}
	return r.store.products[id], nil
}

func (r *productRepository) List(_ context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]*product.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU() < out[j].SKU() })
	return out, nil
}
