package commands

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"zerowaste-exchange/internal/domain/inventory"
	"zerowaste-exchange/internal/domain/product"
	"zerowaste-exchange/internal/infra"
	"zerowaste-exchange/internal/pkg/clock"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/queries"
	"zerowaste-exchange/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductParams struct {
	SKU         string
	Name        string
	Category    string
	Size        string
	BasePrice   float64
	WeightGrams float64
	CO2ePerKg   float64
}

type CreateBatchParams struct {
	ProductID    uuid.UUID
	StoreID      uuid.UUID
	QtyTotal     int
	QtyAvailable int
	ExpiryTS     time.Time
}

// ImportResult summarizes a CSV import. Row failures are collected per-row
// so one bad line never aborts the rest of the file.
type ImportResult struct {
	Imported int      `json:"imported_count"`
	Skipped  int      `json:"skipped_count"`
	Errors   []string `json:"errors,omitempty"`
}

type CatalogCommands interface {
	CreateProduct(ctx context.Context, params CreateProductParams) (*queries.ProductView, error)
	CreateBatch(ctx context.Context, params CreateBatchParams) (*queries.BatchView, error)
	// ImportProductsCSV ingests rows of sku,name,category,size,base_price,weight_grams.
	ImportProductsCSV(ctx context.Context, csvContent string) (*ImportResult, error)
	// ImportBatchesCSV ingests rows of sku,...,qty_total,expiry_hours,
	// creating missing products on the fly.
	ImportBatchesCSV(ctx context.Context, csvContent string, storeID uuid.UUID) (*ImportResult, error)
}

type catalogUseCaseImpl struct {
	products shared.ProductRepository
	batches  shared.BatchRepository
	clock    clock.Clock
}

func NewCatalogUseCase(products shared.ProductRepository, batches shared.BatchRepository, clock clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{
		products: products,
		batches:  batches,
		clock:    clock,
	}
}

func (c *catalogUseCaseImpl) CreateProduct(ctx context.Context, params CreateProductParams) (*queries.ProductView, error) {
	price, err := product.NewMoneyFromDollars(params.BasePrice)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	prod, err := product.NewProduct(uuid.Nil, params.SKU, params.Name, params.Category, params.Size, price, params.WeightGrams, params.CO2ePerKg)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.products.Create(ctx, prod); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateSKU
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return queries.NewProductView(prod), nil
}

func (c *catalogUseCaseImpl) CreateBatch(ctx context.Context, params CreateBatchParams) (*queries.BatchView, error) {
	prod, err := c.products.FindByID(ctx, params.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	batch, err := inventory.NewBatch(params.ProductID, params.StoreID, params.QtyTotal, params.QtyAvailable, params.ExpiryTS, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := c.batches.Create(ctx, batch); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	return queries.NewBatchView(batch, prod.Name()), nil
}

func (c *catalogUseCaseImpl) ImportProductsCSV(ctx context.Context, csvContent string) (*ImportResult, error) {
	result := &ImportResult{}

	err := c.forEachRow(csvContent, func(line int, row map[string]string) error {
		params, err := productParamsFromRow(row)
		if err != nil {
			return err
		}
		if _, err := c.CreateProduct(ctx, params); err != nil {
			return err
		}
		return nil
	}, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *catalogUseCaseImpl) ImportBatchesCSV(ctx context.Context, csvContent string, storeID uuid.UUID) (*ImportResult, error) {
	result := &ImportResult{}

	err := c.forEachRow(csvContent, func(line int, row map[string]string) error {
		prod, err := c.findOrCreateProduct(ctx, row)
		if err != nil {
			return err
		}

		qtyTotal, err := strconv.Atoi(strings.TrimSpace(row["qty_total"]))
		if err != nil {
			return fmt.Errorf("invalid qty_total: %w", err)
		}
		expiryHours, err := strconv.Atoi(strings.TrimSpace(row["expiry_hours"]))
		if err != nil {
			return fmt.Errorf("invalid expiry_hours: %w", err)
		}

		_, err = c.CreateBatch(ctx, CreateBatchParams{
			ProductID:    prod.ID(),
			StoreID:      storeID,
			QtyTotal:     qtyTotal,
			QtyAvailable: qtyTotal,
			ExpiryTS:     c.clock.Now().Add(time.Duration(expiryHours) * time.Hour),
		})
		return err
	}, result)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// forEachRow applies fn to every record, tallying failures into result
// instead of aborting the import.
func (c *catalogUseCaseImpl) forEachRow(csvContent string, fn func(line int, row map[string]string) error, result *ImportResult) error {
	reader := csv.NewReader(strings.NewReader(csvContent))
	header, err := reader.Read()
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.ToLower(header[i]))
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		row := make(map[string]string, len(header))
		for i, field := range record {
			if i < len(header) {
				row[header[i]] = field
			}
		}

		if err := fn(line, row); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	return nil
}

func (c *catalogUseCaseImpl) findOrCreateProduct(ctx context.Context, row map[string]string) (*product.Product, error) {
	sku := strings.TrimSpace(row["sku"])
	if sku == "" {
		return nil, product.ErrEmptySKU
	}

	prod, err := c.products.FindBySKU(ctx, sku)
	if err == nil {
		return prod, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}

	params, err := productParamsFromRow(row)
	if err != nil {
		return nil, err
	}

	price, err := product.NewMoneyFromDollars(params.BasePrice)
	if err != nil {
		return nil, err
	}
	created, err := product.NewProduct(uuid.Nil, params.SKU, params.Name, params.Category, params.Size, price, params.WeightGrams, params.CO2ePerKg)
	if err != nil {
		return nil, err
	}
	if err := c.products.Create(ctx, created); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreOperationFailed)
	}
	return created, nil
}

func productParamsFromRow(row map[string]string) (CreateProductParams, error) {
	basePrice, err := strconv.ParseFloat(strings.TrimSpace(row["base_price"]), 64)
	if err != nil {
		return CreateProductParams{}, fmt.Errorf("invalid base_price: %w", err)
	}
	weightGrams, err := strconv.ParseFloat(strings.TrimSpace(row["weight_grams"]), 64)
	if err != nil {
		return CreateProductParams{}, fmt.Errorf("invalid weight_grams: %w", err)
	}

	var co2e float64
	if raw, ok := row["co2e_per_kg"]; ok && strings.TrimSpace(raw) != "" {
		co2e, err = strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return CreateProductParams{}, fmt.Errorf("invalid co2e_per_kg: %w", err)
		}
	}

	return CreateProductParams{
		SKU:         strings.TrimSpace(row["sku"]),
		Name:        strings.TrimSpace(row["name"]),
		Category:    strings.TrimSpace(row["category"]),
		Size:        strings.TrimSpace(row["size"]),
		BasePrice:   basePrice,
		WeightGrams: weightGrams,
		CO2ePerKg:   co2e,
	}, nil
}
