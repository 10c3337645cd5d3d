package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/domain"
	billsvc "shopfront/internal/service/bill"
	cartsvc "shopfront/internal/service/cart"
	offersvc "shopfront/internal/service/offer"
	"shopfront/internal/store"
)

// listProductsHandler serves the cached catalog, refreshing it from the
// backend when the cache is cold or ?refresh=1 is passed.
func listProductsHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := deps.Store.Snapshot()
		if snap.Products.Status == store.StatusIdle || c.Query("refresh") == "1" {
			if _, err := deps.Products.List(c.Request.Context()); err != nil {
				writeError(c, err)
				return
			}
			snap = deps.Store.Snapshot()
		}
		c.JSON(http.StatusOK, gin.H{
			"products": snap.Products.Products,
			"status":   snap.Products.Status,
		})
	}
}

// offerView decorates a resolved offer with the optimistic preview price for
// the product it is shown against.
type offerView struct {
	domain.Offer
	PreviewPrice float64 `json:"previewPrice"`
}

// productDetailHandler returns one product with its linked offers resolved
// and client-side preview prices attached. The authoritative price still
// comes from the backend at checkout.
func productDetailHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		catalog := deps.Store.Products()
		if len(catalog) == 0 {
			var err error
			catalog, err = deps.Products.List(c.Request.Context())
			if err != nil {
				writeError(c, err)
				return
			}
		}
		product := domain.FindProduct(catalog, id)
		if product == nil {
			writeError(c, fmt.Errorf("product %s: %w", id, domain.ErrNotFound))
			return
		}

		resolved := offersvc.Resolve(product.Offers, deps.Store.Offers())
		views := make([]offerView, 0, len(resolved))
		for _, o := range resolved {
			views = append(views, offerView{
				Offer:        o,
				PreviewPrice: offersvc.PreviewPrice(product.Price, o),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"product": *product,
			"offers":  views,
		})
	}
}

func getCartHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		lines := deps.Cart.Detailed(sid)
		c.JSON(http.StatusOK, gin.H{
			"items": lines,
			"total": cartsvc.Total(lines),
			"count": cartsvc.Count(deps.Cart.Entries(sid)),
		})
	}
}

func addCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ProductID string `json:"productId"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.ProductID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "productId required"})
			return
		}
		entries := deps.Cart.Add(sessionID(c), body.ProductID)
		c.JSON(http.StatusOK, gin.H{
			"items": entries,
			"count": cartsvc.Count(entries),
		})
	}
}

func updateCartItemHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Delta *int `json:"delta"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.Delta == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "delta required"})
			return
		}
		entries := deps.Cart.Update(sessionID(c), c.Param("id"), *body.Delta)
		c.JSON(http.StatusOK, gin.H{
			"items": entries,
			"count": cartsvc.Count(entries),
		})
	}
}

// checkoutHandler submits the session's cart and answers with the rendered
// bill summary.
func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		created, err := deps.Cart.Checkout(c.Request.Context(), sessionID(c))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"bill": billsvc.Summarize(*created, deps.Store.Products()),
		})
	}
}

func getBillHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, open := deps.Store.Bill()
		if b == nil {
			c.JSON(http.StatusOK, gin.H{"bill": nil, "open": open})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"bill": billsvc.Summarize(*b, deps.Store.Products()),
			"open": open,
		})
	}
}

func ackBillHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Cart.Acknowledge()
		c.Status(http.StatusNoContent)
	}
}
