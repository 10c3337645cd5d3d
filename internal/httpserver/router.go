package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopfront/internal/config"
	cartsvc "shopfront/internal/service/cart"
	offersvc "shopfront/internal/service/offer"
	productsvc "shopfront/internal/service/product"
	"shopfront/internal/store"
)

// Deps carries the wired services the routes dispatch into.
type Deps struct {
	Products *productsvc.Service
	Offers   *offersvc.Service
	Cart     *cartsvc.Service
	Store    *store.Store
}

// buildRouter wires routes for the storefront and admin surfaces.
func buildRouter(cfg config.Config, logger *zap.Logger, deps Deps) (*gin.Engine, error) {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), corsMiddleware(cfg.CORS), rateLimiter(cfg.RateLimit))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	session := sessionMiddleware(cfg.SessionCookie)

	// Storefront.
	router.GET("/products", listProductsHandler(deps))
	router.GET("/products/:id", productDetailHandler(deps))

	cart := router.Group("/cart", session)
	{
		cart.GET("", getCartHandler(deps))
		cart.POST("/items", addCartItemHandler(deps))
		cart.PATCH("/items/:id", updateCartItemHandler(deps))
	}
	router.POST("/checkout", session, checkoutHandler(deps))
	router.GET("/bill", getBillHandler(deps))
	router.POST("/bill/ack", ackBillHandler(deps))

	// Admin console.
	admin := router.Group("/admin")
	{
		admin.GET("/offers", listOffersHandler(deps))
		admin.POST("/offers", createOfferHandler(deps))
		admin.PUT("/offers/:id", updateOfferHandler(deps))
		admin.DELETE("/offers/:id", deleteOfferHandler(deps))
		admin.GET("/products", listProductsHandler(deps))
		admin.POST("/products", createProductHandler(deps))
		admin.DELETE("/products/:id", deleteProductHandler(deps))
		admin.POST("/products/image", uploadImageHandler(deps))
	}

	return router, nil
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Store == nil || deps.Products == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "services not wired"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
