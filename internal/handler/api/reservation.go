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

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Reserve units
// @Description Atomically hold units from an offer and issue a confirmation code
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body request.ReserveRequest true "Reservation request"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 410 {object} httperr.Response
// @Router /reserve [post]
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.reservationCommands.Reserve(c.Request.Context(), commands.ReserveParams{
		OfferID:       req.OfferID,
		UserID:        req.UserID,
		Qty:           req.Qty,
		PickupStartTS: req.PickupStartTS,
		PickupEndTS:   req.PickupEndTS,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offer not found", nil)
		case errors.Is(err, errs.ErrOfferExpired):
			httperr.AbortWithError(c, http.StatusGone, err, "Offer has expired", nil)
		case errors.Is(err, errs.ErrInsufficientInventory):
			httperr.AbortWithError(c, http.StatusConflict, err, "Not enough units available", nil)
		case errors.Is(err, errs.ErrInvalidPickupWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pickup window", nil)
		case errors.Is(err, errs.ErrCodeGenerationExhausted):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Could not issue a confirmation code", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", err.Error())
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List reservations for a user
// @Tags reservations
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user_id", nil)
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel reservation
// @Description Holder-initiated cancel; releases the held units
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body request.CancelRequest true "Cancel request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.reservationCommands.Cancel(c.Request.Context(), id, req.UserID); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, errs.ErrAlreadyFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already finalized", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "canceled"})
}
