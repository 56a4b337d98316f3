package product

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptySKU           = errors.New("product sku cannot be empty")
	ErrEmptyProductName   = errors.New("product name cannot be empty")
	ErrProductNameTooLong = errors.New("product name is too long (max 255 characters)")
	ErrNegativeBasePrice  = errors.New("base price cannot be negative")
	ErrNonPositiveWeight  = errors.New("unit weight must be positive")
	ErrNegativeCO2e       = errors.New("co2e coefficient cannot be negative")
)

const (
	MaxProductNameLength = 255

	// DefaultCO2ePerKg is applied when the catalog source does not carry an
	// emissions coefficient. Matches the dairy figure the impact dashboard
	// was calibrated against.
	DefaultCO2ePerKg = 1.9
)

// Product is immutable reference data owned by the catalog; the engine only
// ever reads it.
type Product struct {
	id          uuid.UUID
	sku         string
	name        string
	category    string
	size        string
	basePrice   Money
	weightGrams float64
	co2ePerKg   float64
	createdAt   time.Time
}

func NewProduct(id uuid.UUID, sku, name, category, size string, basePrice Money, weightGrams, co2ePerKg float64) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if basePrice.Cents() < 0 {
		return nil, ErrNegativeBasePrice
	}
	if weightGrams <= 0 {
		return nil, ErrNonPositiveWeight
	}
	if co2ePerKg < 0 {
		return nil, ErrNegativeCO2e
	}
	if co2ePerKg == 0 {
		co2ePerKg = DefaultCO2ePerKg
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Product{
		id:          id,
		sku:         sku,
		name:        strings.TrimSpace(name),
		category:    category,
		size:        size,
		basePrice:   basePrice,
		weightGrams: weightGrams,
		co2ePerKg:   co2ePerKg,
	}, nil
}

func ReconstructProduct(id uuid.UUID, sku, name, category, size string, basePrice Money, weightGrams, co2ePerKg float64, createdAt time.Time) *Product {
	return &Product{
		id:          id,
		sku:         sku,
		name:        name,
		category:    category,
		size:        size,
		basePrice:   basePrice,
		weightGrams: weightGrams,
		co2ePerKg:   co2ePerKg,
		createdAt:   createdAt,
	}
}

func validateProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyProductName
	}
	if len(name) > MaxProductNameLength {
		return ErrProductNameTooLong
	}
	return nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) SKU() string          { return p.sku }
func (p *Product) Name() string         { return p.name }
func (p *Product) Category() string     { return p.category }
func (p *Product) Size() string         { return p.size }
func (p *Product) BasePrice() Money     { return p.basePrice }
func (p *Product) WeightGrams() float64 { return p.weightGrams }
func (p *Product) CO2ePerKg() float64   { return p.co2ePerKg }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
