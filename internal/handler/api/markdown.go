package api

import (
	"net/http"

	"zerowaste-exchange/internal/handler/httperr"
	"zerowaste-exchange/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MarkdownHandler struct {
	markdownCommands commands.MarkdownCommands
}

func NewMarkdownHandler(markdownCommands commands.MarkdownCommands) *MarkdownHandler {
	return &MarkdownHandler{markdownCommands: markdownCommands}
}

// @Summary Recalculate markdowns
// @Description Upsert offers for every sellable batch at its current markdown tier. Idempotent.
// @Tags markdown
// @Produce json
// @Success 200 {object} commands.RecalculateResult
// @Router /markdown/calculate [post]
func (h *MarkdownHandler) Calculate(c *gin.Context) {
	result, err := h.markdownCommands.Recalculate(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
