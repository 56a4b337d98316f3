package queries

import (
	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/domain/reservation"
)

func NewProductView(p *product.Product) *ProductView {
	return &ProductView{
		ID:          p.ID(),
		SKU:         p.SKU(),
		Name:        p.Name(),
		Category:    p.Category(),
		Size:        p.Size(),
		BasePrice:   p.BasePrice().Dollars(),
		WeightGrams: p.WeightGrams(),
		CO2ePerKg:   p.CO2ePerKg(),
		CreatedAt:   p.CreatedAt(),
	}
}

func NewBatchView(b *inventory.Batch, productName string) *BatchView {
	return &BatchView{
		ID:           b.ID(),
		ProductID:    b.ProductID(),
		ProductName:  productName,
		StoreID:      b.StoreID(),
		QtyTotal:     b.QtyTotal(),
		QtyAvailable: b.QtyAvailable(),
		ExpiryTS:     b.ExpiryTS(),
		CreatedAt:    b.CreatedAt(),
	}
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:               r.ID(),
		OfferID:          r.OfferID(),
		BatchID:          r.BatchID(),
		UserID:           r.UserID(),
		QtyReserved:      r.Qty(),
		PickupStartTS:    r.Window().Start(),
		PickupEndTS:      r.Window().End(),
		Status:           r.Status().String(),
		ConfirmationCode: r.Code().String(),
		CreatedAt:        r.CreatedAt(),
	}
}
