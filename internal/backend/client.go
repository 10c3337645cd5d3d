// Package backend is the REST client for the external billing API, the
// source of truth for products, offers, bill computation and file storage.
// Requests carry the cookie-based session via a shared cookie jar. There is
// no retry policy and no cancellation of superseded requests: a stale
// response still commits when it arrives.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopfront/internal/domain"
)

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

// New builds a client for the billing API at baseURL.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid backend base url %q", baseURL)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		logger: logger,
	}, nil
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var wire []wireProduct
	if err := c.do(ctx, http.MethodGet, "/products", nil, &wire); err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		products = append(products, w.toDomain())
	}
	return products, nil
}

// CreateProduct submits a new product and returns the created entity.
func (c *Client) CreateProduct(ctx context.Context, p domain.Product) (*domain.Product, error) {
	body := createProductBody{
		Name:     p.Name,
		Price:    p.Price,
		Quantity: p.Quantity,
		Offers:   p.Offers,
		Image:    p.Image,
	}
	if body.Offers == nil {
		body.Offers = []string{}
	}
	var wire wireProduct
	if err := c.do(ctx, http.MethodPost, "/products", body, &wire); err != nil {
		return nil, err
	}
	created := wire.toDomain()
	return &created, nil
}

// SoftDeleteProduct marks a product deleted.
func (c *Client) SoftDeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/products/delete/"+url.PathEscape(id), softDeleteBody{IsDeleted: true}, nil)
}

// ListOffers fetches all offers.
func (c *Client) ListOffers(ctx context.Context) ([]domain.Offer, error) {
	var wire []wireOffer
	if err := c.do(ctx, http.MethodGet, "/offers", nil, &wire); err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(wire))
	for _, w := range wire {
		offer, err := w.toDomain()
		if err != nil {
			// A malformed config on one offer should not poison the
			// whole list; skip it.
			c.logger.Warn("skipping offer with malformed config",
				zap.String("offerId", w.ID), zap.Error(err))
			continue
		}
		offers = append(offers, offer)
	}
	return offers, nil
}

// CreateOffer submits a new offer and returns the created entity.
func (c *Client) CreateOffer(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	body := createOfferBody{
		Name:      o.Name,
		Type:      string(o.Type),
		Priority:  o.Priority,
		Config:    o.Config,
		StartDate: o.StartDate,
		EndDate:   o.EndDate,
	}
	var wire wireOffer
	if err := c.do(ctx, http.MethodPost, "/offers", body, &wire); err != nil {
		return nil, err
	}
	created, err := wire.toDomain()
	if err != nil {
		return nil, apiErr(http.StatusOK, "malformed offer in response: "+err.Error())
	}
	return &created, nil
}

// UpdateOffer replaces the mutable fields of an existing offer.
func (c *Client) UpdateOffer(ctx context.Context, id string, o domain.Offer) (*domain.Offer, error) {
	body := createOfferBody{
		Name:      o.Name,
		Type:      string(o.Type),
		Priority:  o.Priority,
		Config:    o.Config,
		StartDate: o.StartDate,
		EndDate:   o.EndDate,
	}
	var wire wireOffer
	if err := c.do(ctx, http.MethodPut, "/offers/update/"+url.PathEscape(id), body, &wire); err != nil {
		return nil, err
	}
	updated, err := wire.toDomain()
	if err != nil {
		return nil, apiErr(http.StatusOK, "malformed offer in response: "+err.Error())
	}
	return &updated, nil
}

// SoftDeleteOffer marks an offer deleted.
func (c *Client) SoftDeleteOffer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/offers/delete/"+url.PathEscape(id), softDeleteBody{IsDeleted: true}, nil)
}

// CreateBill submits the minimal (productId, qty) pairs and returns the
// authoritative bill with discounts applied.
func (c *Client) CreateBill(ctx context.Context, entries []domain.CartEntry) (*domain.Bill, error) {
	lines := make([]billLine, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, billLine{ID: e.ProductID, Qty: e.Qty})
	}
	var wire wireBill
	if err := c.do(ctx, http.MethodPost, "/bill", lines, &wire); err != nil {
		return nil, err
	}
	bill := wire.toDomain()
	return &bill, nil
}

// UploadFile streams a file as multipart form data (field name "image") to
// the backend's file store and returns the stored file URL.
func (c *Client) UploadFile(ctx context.Context, filename string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	if err != nil {
		return "", transportErr(err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", transportErr(err)
	}
	if err := mw.Close(); err != nil {
		return "", transportErr(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/products/file", &buf)
	if err != nil {
		return "", transportErr(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", transportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", apiErr(resp.StatusCode, readAPIMessage(resp.Body, resp.StatusCode))
	}

	var out struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apiErr(resp.StatusCode, "malformed upload response: "+err.Error())
	}
	return out.URL, nil
}

// do runs one JSON request. body (if non-nil) is marshalled as the request
// payload; out (if non-nil) receives the decoded response.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return transportErr(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportErr(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return transportErr(err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode >= http.StatusBadRequest {
		return apiErr(resp.StatusCode, readAPIMessage(resp.Body, resp.StatusCode))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apiErr(resp.StatusCode, "malformed response body: "+err.Error())
	}
	return nil
}

// readAPIMessage pulls a {"message": ...} error body, falling back to the
// status text.
func readAPIMessage(r io.Reader, status int) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err == nil && len(raw) > 0 {
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Message != "" {
			return body.Message
		}
	}
	return http.StatusText(status)
}
