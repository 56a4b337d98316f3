package postgres

import (
	"context"
	"time"

	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) shared.ProductRepository {
	return &productRepository{pool: pool}
}

const insertProduct = `
INSERT INTO products (id, sku, name, category, size, base_price_cents, weight_grams, co2e_per_kg)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	_, err := r.pool.Exec(ctx, insertProduct,
		p.ID(), p.SKU(), p.Name(), p.Category(), p.Size(),
		p.BasePrice().Cents(), p.WeightGrams(), p.CO2ePerKg(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "sku already registered", err)
		}
		return infra.WrapRepoErr(infra.KindStoreFailure, "failed to create product", err)
	}
	return nil
}

const selectProduct = `
SELECT id, sku, name, category, size, base_price_cents, weight_grams, co2e_per_kg, created_at
FROM products`

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	row := r.pool.QueryRow(ctx, selectProduct+" WHERE id = $1", id)
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find product", err)
	}
	return p, nil
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	row := r.pool.QueryRow(ctx, selectProduct+" WHERE upper(sku) = upper($1)", sku)
	p, err := scanProduct(row)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "product not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to find product by sku", err)
	}
	return p, nil
}

func (r *productRepository) List(ctx context.Context) ([]*product.Product, error) {
	rows, err := r.pool.Query(ctx, selectProduct+" ORDER BY sku")
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list products", err)
	}
	defer rows.Close()

	var out []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to scan product", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindStoreFailure, "failed to list products", err)
	}
	return out, nil
}

func scanProduct(row pgx.Row) (*product.Product, error) {
	var (
		id                   uuid.UUID
		sku, name, cat, size string
		priceCents           int64
		weightGrams, co2e    float64
		createdAt            time.Time
	)
	if err := row.Scan(&id, &sku, &name, &cat, &size, &priceCents, &weightGrams, &co2e, &createdAt); err != nil {
		return nil, err
	}
	return product.ReconstructProduct(id, sku, name, cat, size, product.NewMoney(priceCents), weightGrams, co2e, createdAt), nil
}
