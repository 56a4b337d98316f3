package queries

import (
	"context"

	"zerowaste-exchange/internal/usecase/shared"
)

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]*ProductView, error)
	ListBatches(ctx context.Context) ([]*BatchView, error)
}

type catalogQueriesImpl struct {
	products shared.ProductRepository
	batches  shared.BatchRepository
}

func NewCatalogQueries(products shared.ProductRepository, batches shared.BatchRepository) CatalogQueries {
	return &catalogQueriesImpl{
		products: products,
		batches:  batches,
	}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*ProductView, error) {
	rows, err := q.products.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ProductView, len(rows))
	for i, p := range rows {
		views[i] = NewProductView(p)
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListBatches(ctx context.Context) ([]*BatchView, error) {
	rows, err := q.batches.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*BatchView, 0, len(rows))
	for _, b := range rows {
		name := ""
		if prod, err := q.products.FindByID(ctx, b.ProductID()); err == nil {
			name = prod.Name()
		}
		views = append(views, NewBatchView(b, name))
	}
	return views, nil
}
