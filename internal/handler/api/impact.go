package api

import (
	"net/http"
	"strconv"

	"zerowaste-exchange/internal/handler/httperr"
	"zerowaste-exchange/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ImpactHandler struct {
	impactQueries queries.ImpactQueries
}

func NewImpactHandler(impactQueries queries.ImpactQueries) *ImpactHandler {
	return &ImpactHandler{impactQueries: impactQueries}
}

// @Summary Impact totals
// @Description Cumulative impact of all confirmed pickups. Pass rebuild=true to recompute from the pickup log instead of the materialized totals.
// @Tags impact
// @Produce json
// @Param rebuild query bool false "Recompute from the pickup log"
// @Success 200 {object} impact.Snapshot
// @Router /impact [get]
func (h *ImpactHandler) Get(c *gin.Context) {
	rebuild, _ := strconv.ParseBool(c.Query("rebuild"))

	fetch := h.impactQueries.Snapshot
	if rebuild {
		fetch = h.impactQueries.Rebuild
	}

	snapshot, err := fetch(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
