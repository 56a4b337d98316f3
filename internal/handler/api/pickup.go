package api

import (
	"errors"
	"net/http"

	reqdto "zerowaste-exchange/internal/handler/dto/request"
	"zerowaste-exchange/internal/handler/httperr"
	"zerowaste-exchange/internal/pkg/errs"
	"zerowaste-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PickupHandler struct {
	pickupCommands commands.PickupCommands
}

func NewPickupHandler(pickupCommands commands.PickupCommands) *PickupHandler {
	return &PickupHandler{pickupCommands: pickupCommands}
}

// @Summary Confirm pickup
// @Description Finalize a reservation by confirmation code or reservation ID
// @Tags pickup
// @Accept json
// @Produce json
// @Param request body request.ConfirmPickupRequest true "Pickup confirmation"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /pickup/confirm [post]
func (h *PickupHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPickupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.pickupCommands.ConfirmPickup(c.Request.Context(), commands.ConfirmPickupParams{
		ConfirmationCode: req.ConfirmationCode,
		ReservationID:    req.ReservationID,
		StaffID:          req.StaffID,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Provide confirmation_code or reservation_id", nil)
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, errs.ErrAlreadyFinalized):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already finalized", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Sweep no-shows and relist
// @Description Expire lapsed reservations, return their units, and relist at a penalty discount
// @Tags pickup
// @Produce json
// @Success 200 {object} commands.SweepResult
// @Router /pickup/relist [post]
func (h *PickupHandler) Relist(c *gin.Context) {
	result, err := h.pickupCommands.SweepNoShows(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
