package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Catalog errors
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("duplicate sku")

	// Inventory errors
	ErrBatchNotFound         = errors.New("batch not found")
	ErrInsufficientInventory = errors.New("insufficient inventory")

	// Offer errors
	ErrOfferNotFound = errors.New("offer not found")
	ErrOfferExpired  = errors.New("offer expired")

	// Reservation errors
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrAlreadyFinalized        = errors.New("reservation already finalized")
	ErrCodeGenerationExhausted = errors.New("confirmation code generation exhausted")
	ErrInvalidPickupWindow     = errors.New("invalid pickup window")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
