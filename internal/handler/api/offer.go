package api

import (
	"net/http"

	"zerowaste-exchange/internal/domain/offer"
	"zerowaste-exchange/internal/handler/httperr"
	"zerowaste-exchange/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	offerQueries queries.OfferQueries
}

func NewOfferHandler(offerQueries queries.OfferQueries) *OfferHandler {
	return &OfferHandler{offerQueries: offerQueries}
}

// @Summary List active offers
// @Description Active offers visible to the given audience, with embedded availability and pricing
// @Tags offers
// @Produce json
// @Param user_type query string false "public or nonprofit" default(public)
// @Success 200 {array} queries.OfferView
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c *gin.Context) {
	audience := offer.ParseAudience(c.Query("user_type"))

	offers, err := h.offerQueries.ListForAudience(c.Request.Context(), audience)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, offers)
}
