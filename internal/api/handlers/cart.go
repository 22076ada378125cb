package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/api/middleware"
	"github.com/govipola/storefront/internal/client/catalog"
	"github.com/govipola/storefront/internal/domain"
)

// AddItemRequest adds a catalog product to the cart
type AddItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateQuantityRequest sets a line's quantity; zero or below removes it, so
// no min binding here.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse is the cart view returned by every cart mutation
type CartResponse struct {
	Items []domain.CartLine `json:"items"`
	Total float64           `json:"total"`
}

func cartResponse(cart *domain.Cart) CartResponse {
	return CartResponse{Items: cart.Lines(), Total: cart.Total()}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sess.Lock()
		resp := cartResponse(sess.Cart)
		sess.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}

// HandleAddItem handles POST /v1/cart/items. The product is looked up in the
// catalog so price and name come from the catalog, not from the caller.
func HandleAddItem(products *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		list, err := products.FetchProducts(c.Request.Context())
		if err != nil {
			logger.Error("Failed to fetch products", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "product catalog unavailable"})
			return
		}

		var product *domain.Product
		for i := range list {
			if list[i].ID == req.ProductID {
				product = &list[i]
				break
			}
		}
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		sess.Lock()
		if err := sess.Cart.AddItem(*product, req.Quantity); err != nil {
			sess.Unlock()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp := cartResponse(sess.Cart)
		sess.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}

// HandleUpdateQuantity handles PATCH /v1/cart/items/:id
func HandleUpdateQuantity(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req UpdateQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sess.Lock()
		sess.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
		resp := cartResponse(sess.Cart)
		sess.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}

// HandleRemoveItem handles DELETE /v1/cart/items/:id
func HandleRemoveItem(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sess.Lock()
		sess.Cart.RemoveItem(c.Param("id"))
		resp := cartResponse(sess.Cart)
		sess.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}

// HandleClearCart handles DELETE /v1/cart
func HandleClearCart(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := middleware.GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		sess.Lock()
		sess.Cart.Clear()
		resp := cartResponse(sess.Cart)
		sess.Unlock()

		c.JSON(http.StatusOK, resp)
	}
}
