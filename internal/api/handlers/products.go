package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/client/catalog"
	"github.com/govipola/storefront/internal/domain"
)

// HandleListProducts handles GET /v1/products with optional ?category=
// filtering.
func HandleListProducts(products *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := products.FetchProducts(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "product catalog unavailable"})
			return
		}

		if category := c.Query("category"); category != "" && category != "all" {
			filtered := make([]domain.Product, 0, len(list))
			for _, p := range list {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			list = filtered
		}

		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}
