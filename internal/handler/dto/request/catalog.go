package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	SKU         string  `json:"sku" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Size        string  `json:"size"`
	BasePrice   float64 `json:"base_price" binding:"required"`
	WeightGrams float64 `json:"weight_grams" binding:"required"`
	CO2ePerKg   float64 `json:"co2e_per_kg"`
}

type CreateBatchRequest struct {
	ProductID    uuid.UUID `json:"product_id" binding:"required"`
	StoreID      uuid.UUID `json:"store_id" binding:"required"`
	QtyTotal     int       `json:"qty_total" binding:"required"`
	QtyAvailable *int      `json:"qty_available,omitempty"`
	ExpiryTS     time.Time `json:"expiry_ts" binding:"required"`
}

// EffectiveQtyAvailable defaults a fresh batch to fully available.
func (r CreateBatchRequest) EffectiveQtyAvailable() int {
	if r.QtyAvailable == nil {
		return r.QtyTotal
	}
	return *r.QtyAvailable
}

type ImportRequest struct {
	CSV     string     `json:"csv" binding:"required"`
	StoreID *uuid.UUID `json:"store_id,omitempty"`
}
