//go:build unit || e2e

package builder

import (
	"time"

	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/product"
	reqdto "zerowaste-exchange/internal/handler/dto/request"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	SKU         string
	Name        string
	Category    string
	Size        string
	BasePrice   float64
	WeightGrams float64
	CO2ePerKg   float64
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		SKU:         "MILK-1GAL",
		Name:        "Whole Milk",
		Category:    "dairy",
		Size:        "1 gal",
		BasePrice:   4.99,
		WeightGrams: 3785,
		CO2ePerKg:   1.9,
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildEntity() (*product.Product, error) {
	money, err := product.NewMoneyFromDollars(b.BasePrice)
	if err != nil {
		return nil, err
	}
	return product.NewProduct(uuid.Nil, b.SKU, b.Name, b.Category, b.Size, money, b.WeightGrams, b.CO2ePerKg)
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		SKU:         b.SKU,
		Name:        b.Name,
		Category:    b.Category,
		Size:        b.Size,
		BasePrice:   b.BasePrice,
		WeightGrams: b.WeightGrams,
		CO2ePerKg:   b.CO2ePerKg,
	}
}

type BatchBuilder struct {
	ProductID    uuid.UUID
	StoreID      uuid.UUID
	QtyTotal     int
	QtyAvailable int
	ExpiryTS     time.Time
	Now          time.Time
}

func NewBatchBuilder(now time.Time) *BatchBuilder {
	return &BatchBuilder{
		ProductID:    uuid.New(),
		StoreID:      uuid.New(),
		QtyTotal:     10,
		QtyAvailable: 10,
		ExpiryTS:     now.Add(10 * time.Hour),
		Now:          now,
	}
}

func (b *BatchBuilder) With(mutate func(*BatchBuilder)) *BatchBuilder {
	mutate(b)
	return b
}

func (b *BatchBuilder) BuildEntity() (*inventory.Batch, error) {
	return inventory.NewBatch(b.ProductID, b.StoreID, b.QtyTotal, b.QtyAvailable, b.ExpiryTS, b.Now)
}
