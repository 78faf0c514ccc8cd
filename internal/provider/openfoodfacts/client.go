package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://world.openfoodfacts.org"
	DefaultPageSize  = 10
	DefaultUserAgent = "ntrition/1.0 (+https://github.com/nitheesb/personal-calorie-tracker)"
	defaultTimeout   = 12 * time.Second
)

// ErrNotFound is returned when the service answers but has no such product.
var ErrNotFound = errors.New("openfoodfacts product not found")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
	PageSize   int
	// MaxTries bounds attempts for transient failures; values below 1 mean a single attempt.
	MaxTries      int
	RetryInterval time.Duration
	Log           *zap.Logger
}

// Search runs a free-text product search and returns the usable products in service order.
// Products lacking a name or a calorie value are dropped.
func (c *Client) Search(ctx context.Context, query string) ([]Product, error) {
	pageSize := c.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	u := fmt.Sprintf("%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d&sort_by=unique_scans_n",
		c.base(),
		url.QueryEscape(strings.TrimSpace(query)),
		pageSize,
	)
	body, err := c.fetch(ctx, u, "search")
	if err != nil {
		return nil, err
	}
	var parsed offSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode openfoodfacts search response: %w", err)
	}
	out := make([]Product, 0, len(parsed.Products))
	for _, p := range parsed.Products {
		if p.displayName() == "" {
			continue
		}
		prod := p.toProduct()
		if prod.Calories == nil {
			continue
		}
		out = append(out, prod)
		if len(out) == pageSize {
			break
		}
	}
	return out, nil
}

// Product fetches a single product by barcode.
func (c *Client) Product(ctx context.Context, barcode string) (Product, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return Product{}, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
	}
	u := fmt.Sprintf("%s/api/v0/product/%s.json", c.base(), url.PathEscape(barcode))
	body, err := c.fetch(ctx, u, "product")
	if err != nil {
		return Product{}, err
	}
	var parsed offResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Product{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}
	if parsed.Status != 1 || parsed.Product == nil {
		return Product{}, fmt.Errorf("barcode %q: %w", barcode, ErrNotFound)
	}
	return parsed.Product.toProduct(), nil
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return base
}

func (c *Client) logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}
	return c.Log
}

func (c *Client) fetch(ctx context.Context, u, op string) ([]byte, error) {
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	tries := c.MaxTries
	if tries < 1 {
		tries = 1
	}
	b := backoff.NewExponentialBackOff()
	if c.RetryInterval > 0 {
		b.InitialInterval = c.RetryInterval
	}
	attempt := 0
	return backoff.Retry(ctx, func() ([]byte, error) {
		attempt++
		body, err := c.do(ctx, httpClient, u)
		if err != nil {
			c.logger().Debug("openfoodfacts request failed",
				zap.String("op", op),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return body, err
	}, backoff.WithBackOff(b), backoff.WithMaxTries(uint(tries)))
}

func (c *Client) do(ctx context.Context, httpClient *http.Client, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("create openfoodfacts request: %w", err))
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(fmt.Errorf("execute openfoodfacts request: %w", err))
		}
		return nil, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, backoff.Permanent(ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, err
		}
		return nil, backoff.Permanent(err)
	}
	return body, nil
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// nutrient returns the first key present in n that parses as a number.
func nutrient(n map[string]any, keys ...string) *float64 {
	for _, key := range keys {
		if v, ok := parseFloatAny(n[key]); ok {
			return &v
		}
	}
	return nil
}

type offResponse struct {
	Status  int         `json:"status"`
	Product *offProduct `json:"product"`
}

type offProduct struct {
	Code          string         `json:"code"`
	ProductName   string         `json:"product_name"`
	ProductNameEN string         `json:"product_name_en"`
	Brands        string         `json:"brands"`
	ServingSize   string         `json:"serving_size"`
	Nutriments    map[string]any `json:"nutriments"`
}

func (p offProduct) displayName() string {
	if name := strings.TrimSpace(p.ProductNameEN); name != "" {
		return name
	}
	return strings.TrimSpace(p.ProductName)
}

func (p offProduct) toProduct() Product {
	n := p.Nutriments
	if n == nil {
		n = map[string]any{}
	}
	return Product{
		Code:        strings.TrimSpace(p.Code),
		Name:        p.displayName(),
		Brand:       strings.TrimSpace(p.Brands),
		ServingSize: strings.TrimSpace(p.ServingSize),
		Calories:    nutrient(n, "energy-kcal_100g", "energy-kcal"),
		Protein:     nutrient(n, "protein_100g", "proteins_100g"),
		Carbs:       nutrient(n, "carbohydrates_100g"),
		Fat:         nutrient(n, "fat_100g"),
		Fiber:       nutrient(n, "fiber_100g"),
	}
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}
