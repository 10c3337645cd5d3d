package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopfront/internal/domain"
	offersvc "shopfront/internal/service/offer"
	productsvc "shopfront/internal/service/product"
	"shopfront/internal/store"
)

func listOffersHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := deps.Store.Snapshot()
		if snap.Offers.Status == store.StatusIdle || c.Query("refresh") == "1" {
			if _, err := deps.Offers.List(c.Request.Context()); err != nil {
				writeError(c, err)
				return
			}
			snap = deps.Store.Snapshot()
		}
		c.JSON(http.StatusOK, gin.H{
			"offers": snap.Offers.Offers,
			"status": snap.Offers.Status,
		})
	}
}

// createOfferBody carries the raw config so the variant can be decoded
// against the submitted type tag before validation.
type createOfferBody struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Priority  int             `json:"priority"`
	Config    json.RawMessage `json:"config"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
}

// bindOfferDraft decodes an offer payload, resolving the config variant from
// the submitted type tag before validation. It writes the error response
// itself when binding fails.
func bindOfferDraft(c *gin.Context) (offersvc.Draft, bool) {
	var body createOfferBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return offersvc.Draft{}, false
	}

	draft := offersvc.Draft{
		Name:      body.Name,
		Type:      domain.OfferType(body.Type),
		Priority:  body.Priority,
		StartDate: body.StartDate,
		EndDate:   body.EndDate,
	}
	if draft.Type.Valid() {
		cfg, err := domain.DecodeConfig(draft.Type, body.Config)
		if err != nil {
			v := domain.NewValidationErrors()
			v.Add("config", err.Error())
			writeError(c, v)
			return offersvc.Draft{}, false
		}
		draft.Config = cfg
	}
	return draft, true
}

func createOfferHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, ok := bindOfferDraft(c)
		if !ok {
			return
		}
		created, err := deps.Offers.Create(c.Request.Context(), draft)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateOfferHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft, ok := bindOfferDraft(c)
		if !ok {
			return
		}
		updated, err := deps.Offers.Update(c.Request.Context(), c.Param("id"), draft)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteOfferHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Offers.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func createProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft productsvc.Draft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		created, err := deps.Products.Create(c.Request.Context(), draft)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteProductHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// uploadImageHandler forwards a multipart image (field name "image") to the
// backend's file store and returns the stored URL.
func uploadImageHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "image file required"})
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "unreadable image file"})
			return
		}
		defer f.Close()

		url, err := deps.Products.UploadImage(c.Request.Context(), fileHeader.Filename, f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"url": url})
	}
}
