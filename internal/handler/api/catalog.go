package api

import (
	"errors"
	"net/http"

	reqdto "zerowaste-exchange/internal/handler/dto/request"
	"zerowaste-exchange/internal/handler/httperr"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/commands"
	"zerowaste-exchange/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.ProductView
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogQueries.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body request.CreateProductRequest true "Product"
// @Success 201 {object} queries.ProductView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.catalogCommands.CreateProduct(c.Request.Context(), commands.CreateProductParams{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Size:        req.Size,
		BasePrice:   req.BasePrice,
		WeightGrams: req.WeightGrams,
		CO2ePerKg:   req.CO2ePerKg,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateSKU):
			httperr.AbortWithError(c, http.StatusConflict, err, "SKU already registered", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List batches
// @Tags catalog
// @Produce json
// @Success 200 {array} queries.BatchView
// @Router /batches [get]
func (h *CatalogHandler) ListBatches(c *gin.Context) {
	batches, err := h.catalogQueries.ListBatches(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, batches)
}

// @Summary Create batch
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body request.CreateBatchRequest true "Batch"
// @Success 201 {object} queries.BatchView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /batches [post]
func (h *CatalogHandler) CreateBatch(c *gin.Context) {
	var req reqdto.CreateBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.catalogCommands.CreateBatch(c.Request.Context(), commands.CreateBatchParams{
		ProductID:    req.ProductID,
		StoreID:      req.StoreID,
		QtyTotal:     req.QtyTotal,
		QtyAvailable: req.EffectiveQtyAvailable(),
		ExpiryTS:     req.ExpiryTS,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Import products from CSV
// @Tags import
// @Accept json
// @Produce json
// @Param request body request.ImportRequest true "CSV payload"
// @Success 200 {object} commands.ImportResult
// @Router /import/products [post]
func (h *CatalogHandler) ImportProducts(c *gin.Context) {
	var req reqdto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.catalogCommands.ImportProductsCSV(c.Request.Context(), req.CSV)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Import batches from CSV
// @Tags import
// @Accept json
// @Produce json
// @Param request body request.ImportRequest true "CSV payload"
// @Success 200 {object} commands.ImportResult
// @Router /import/batches [post]
func (h *CatalogHandler) ImportBatches(c *gin.Context) {
	var req reqdto.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	storeID := uuid.Nil
	if req.StoreID != nil {
		storeID = *req.StoreID
	}

	result, err := h.catalogCommands.ImportBatchesCSV(c.Request.Context(), req.CSV, storeID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
