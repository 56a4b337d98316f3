package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ProductView struct {
	ID          uuid.UUID `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	BasePrice   float64   `json:"base_price"`
	WeightGrams float64   `json:"weight_grams"`
	CO2ePerKg   float64   `json:"co2e_per_kg"`
	CreatedAt   time.Time `json:"created_at"`
}

type BatchView struct {
	ID           uuid.UUID `json:"id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name,omitempty"`
	StoreID      uuid.UUID `json:"store_id"`
	QtyTotal     int       `json:"qty_total"`
	QtyAvailable int       `json:"qty_available"`
	ExpiryTS     time.Time `json:"expiry_ts"`
	CreatedAt    time.Time `json:"created_at"`
}

// OfferView embeds batch availability and pricing so the client can render
// a listing without extra round trips.
type OfferView struct {
	ID           uuid.UUID `json:"id"`
	BatchID      uuid.UUID `json:"batch_id"`
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	DiscountPct  int       `json:"discount_pct"`
	StartTS      time.Time `json:"start_ts"`
	EndTS        time.Time `json:"end_ts"`
	Audience     string    `json:"audience"`
	BasePrice    float64   `json:"base_price"`
	UnitPrice    float64   `json:"unit_price"`
	QtyAvailable int       `json:"qty_available"`
	ExpiryTS     time.Time `json:"expiry_ts"`
}

type ReservationView struct {
	ID               uuid.UUID `json:"id"`
	OfferID          uuid.UUID `json:"offer_id"`
	BatchID          uuid.UUID `json:"batch_id"`
	UserID           uuid.UUID `json:"user_id"`
	QtyReserved      int       `json:"qty_reserved"`
	PickupStartTS    time.Time `json:"pickup_start_ts"`
	PickupEndTS      time.Time `json:"pickup_end_ts"`
	Status           string    `json:"status"`
	ConfirmationCode string    `json:"confirmation_code"`
	CreatedAt        time.Time `json:"created_at"`
}
