package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"videopecas-web/internal/models"
)

// listingSelect embeds the seller identity and the full comment set with each
// listing row, the way the catalog page consumes them.
const listingSelect = "*,seller:users(id,name,avatar_url,rating),comments(*)"

// listingOrder is the fixed catalog ordering: descending commission rate,
// then descending price. Higher-commission listings surface first; this is a
// product decision and is sent to the backend verbatim.
const listingOrder = "commission.desc,price.desc"

// ListingFilter carries the catalog filter selections. An empty string (or
// the UI's "all") means no filter is applied on that dimension.
type ListingFilter struct {
	Region     string // state code, e.g. "SP"
	Locality   string // city
	Brand      string // vehicle brand
	SearchTerm string // substring match on title, case-insensitive
}

func isSet(v string) bool {
	return v != "" && v != "all"
}

// CommentInput is the payload for creating a comment
type CommentInput struct {
	ListingID        string  `json:"announcement_id"`
	UserID           string  `json:"user_id"`
	UserName         string  `json:"user_name"`
	Content          string  `json:"content"`
	VideoURL         *string `json:"video_url,omitempty"`
	IsSellerResponse bool    `json:"is_seller_response"`
}

// PurchaseInput is the payload for creating a purchase record
type PurchaseInput struct {
	ListingID      string                `json:"announcement_id"`
	BuyerID        string                `json:"buyer_id"`
	BuyerName      string                `json:"buyer_name"`
	BuyerEmail     string                `json:"buyer_email"`
	BuyerPhone     string                `json:"buyer_phone"`
	BuyerCity      string                `json:"buyer_city"`
	BuyerState     string                `json:"buyer_state"`
	PaymentMethod  models.PaymentMethod  `json:"payment_method"`
	DeliveryMethod models.DeliveryMethod `json:"delivery_method"`
	ZipCode        string                `json:"zip_code"`
	Status         models.PurchaseStatus `json:"status"`
}

// Client talks to the hosted data backend over its REST interface
// (PostgREST conventions). The base URL points at the REST root, e.g.
// https://xyz.supabase.co/rest/v1. No timeouts are configured; callers own
// cancellation through their context.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new backend client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

// listingRow is the wire shape of a listing; location is flattened on the row
type listingRow struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Price        int64              `json:"price"`
	Type         models.ListingTier `json:"type"`
	VideoURL     string             `json:"video_url"`
	ThumbnailURL string             `json:"thumbnail_url"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	VehicleBrand string             `json:"vehicle_brand"`
	Views        int64              `json:"views"`
	Commission   int                `json:"commission"`
	Seller       models.Seller      `json:"seller"`
	Comments     []models.Comment   `json:"comments"`
}

func (r *listingRow) toModel() models.Listing {
	return models.Listing{
		ID:           r.ID,
		Title:        r.Title,
		Price:        r.Price,
		Tier:         r.Type,
		VideoURL:     r.VideoURL,
		ThumbnailURL: r.ThumbnailURL,
		Seller:       r.Seller,
		Location:     models.Location{City: r.City, State: r.State},
		VehicleBrand: r.VehicleBrand,
		Views:        r.Views,
		Comments:     r.Comments,
		Commission:   r.Commission,
	}
}

// ListListings fetches the filtered, sorted catalog. Filtering and ordering
// are executed by the backend; this client only encodes the request.
func (c *Client) ListListings(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	params := url.Values{}
	params.Set("select", listingSelect)
	if isSet(filter.Region) {
		params.Set("state", "eq."+filter.Region)
	}
	if isSet(filter.Locality) {
		params.Set("city", "eq."+filter.Locality)
	}
	if isSet(filter.Brand) {
		params.Set("vehicle_brand", "eq."+filter.Brand)
	}
	if filter.SearchTerm != "" {
		params.Set("title", "ilike.*"+filter.SearchTerm+"*")
	}
	params.Set("order", listingOrder)

	var rows []listingRow
	if err := c.do(ctx, http.MethodGet, "/announcements?"+params.Encode(), nil, "", &rows); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	listings := make([]models.Listing, 0, len(rows))
	for i := range rows {
		listings = append(listings, rows[i].toModel())
	}
	return listings, nil
}

// GetListing fetches a single listing with its seller and comments
func (c *Client) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	params := url.Values{}
	params.Set("select", listingSelect)
	params.Set("id", "eq."+listingID)

	var rows []listingRow
	if err := c.do(ctx, http.MethodGet, "/announcements?"+params.Encode(), nil, "", &rows); err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("get listing: listing %s not found", listingID)
	}
	listing := rows[0].toModel()
	return &listing, nil
}

// IncrementViewCount asks the backend to bump a listing's view counter. The
// counter is server-authoritative; the caller applies its own optimistic +1
// only after this succeeds.
func (c *Client) IncrementViewCount(ctx context.Context, listingID string) error {
	body := map[string]string{"announcement_id": listingID}
	if err := c.do(ctx, http.MethodPost, "/rpc/increment_views", body, "", nil); err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	return nil
}

// CreateComment creates a comment and returns the stored row
func (c *Client) CreateComment(ctx context.Context, input CommentInput) (*models.Comment, error) {
	var rows []models.Comment
	if err := c.do(ctx, http.MethodPost, "/comments", input, "return=representation", &rows); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create comment: backend returned no row")
	}
	return &rows[0], nil
}

// DeleteComment removes a comment. Exposed for completeness; no storefront
// view currently invokes it.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	params := url.Values{}
	params.Set("id", "eq."+commentID)
	if err := c.do(ctx, http.MethodDelete, "/comments?"+params.Encode(), nil, "", nil); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// CreatePurchase records a purchase and returns the stored row
func (c *Client) CreatePurchase(ctx context.Context, input PurchaseInput) (*models.Purchase, error) {
	var rows []models.Purchase
	if err := c.do(ctx, http.MethodPost, "/purchases", input, "return=representation", &rows); err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("create purchase: backend returned no row")
	}
	return &rows[0], nil
}

// do performs one request against the backend and decodes the response into
// out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, prefer string, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
