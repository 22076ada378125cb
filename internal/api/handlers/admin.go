package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/service"
)

// HandleListReconciliation handles GET /v1/admin/reconciliation. It exposes
// the partial completions and synthesized order ids that need manual or
// automated follow-up.
func HandleListReconciliation(journal *service.ReconciliationJournal, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		entries := journal.Entries()
		c.JSON(http.StatusOK, gin.H{
			"entries": entries,
			"count":   len(entries),
		})
	}
}
