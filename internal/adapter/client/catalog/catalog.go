package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MikeRez0/ordermodule/internal/adapter/config"
	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// Client reads the shipping and payment methods of a store from the catalog
// service. Failed requests are retried with backoff.
type Client struct {
	client  *retryablehttp.Client
	baseURL string
	logger  *zap.Logger
}

func NewClient(cfg *config.Catalog, logger *zap.Logger) (*Client, error) {
	if cfg.HostString == "" {
		return nil, fmt.Errorf("catalog address is empty")
	}
	base := cfg.HostString
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("bad catalog address %q: %w", cfg.HostString, err)
	}

	c := retryablehttp.NewClient()
	c.RetryMax = cfg.RetryMax
	c.RetryWaitMin = 100 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.Backoff = retryablehttp.LinearJitterBackoff
	c.ErrorHandler = retryablehttp.PassthroughErrorHandler
	c.Logger = leveledLogger{logger.Sugar()}

	return &Client{
		client:  c,
		baseURL: strings.TrimRight(base, "/"),
		logger:  logger,
	}, nil
}

type method struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

func (c *Client) ShippingMethods() *ShippingMethods {
	return &ShippingMethods{client: c}
}

func (c *Client) PaymentMethods() *PaymentMethods {
	return &PaymentMethods{client: c}
}

// ShippingMethods is the shipping catalog view of the client.
type ShippingMethods struct {
	client *Client
}

func (s *ShippingMethods) SearchByStore(ctx context.Context, storeID string) ([]*domain.ShippingMethod, error) {
	methods, err := s.client.methods(ctx, storeID, "shipping-methods")
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ShippingMethod, 0, len(methods))
	for _, m := range methods {
		result = append(result, &domain.ShippingMethod{Code: m.Code, Name: m.Name, StoreID: storeID, IsActive: m.IsActive})
	}
	return result, nil
}

// PaymentMethods is the payment catalog view of the client.
type PaymentMethods struct {
	client *Client
}

func (p *PaymentMethods) SearchByStore(ctx context.Context, storeID string) ([]*domain.PaymentMethod, error) {
	methods, err := p.client.methods(ctx, storeID, "payment-methods")
	if err != nil {
		return nil, err
	}
	result := make([]*domain.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		result = append(result, &domain.PaymentMethod{Code: m.Code, Name: m.Name, StoreID: storeID, IsActive: m.IsActive})
	}
	return result, nil
}

// methods returns an empty list for an unknown store.
func (c *Client) methods(ctx context.Context, storeID, kind string) ([]method, error) {
	if storeID == "" {
		return nil, nil
	}
	requestStr := c.baseURL + "/api/stores/" + url.PathEscape(storeID) + "/" + kind
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, requestStr, nil)
	if err != nil {
		return nil, fmt.Errorf("error on %s : %w", requestStr, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound, http.StatusNoContent:
		c.logger.Debug("No methods for store", zap.String("store", storeID), zap.String("kind", kind))
		return nil, nil
	default:
		return nil, fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	var result []method
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("error on response decode: %w", err)
	}
	return result, nil
}

type leveledLogger struct {
	s *zap.SugaredLogger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) { l.s.Errorw(msg, keysAndValues...) }
func (l leveledLogger) Info(msg string, keysAndValues ...interface{})  { l.s.Debugw(msg, keysAndValues...) }
func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) { l.s.Debugw(msg, keysAndValues...) }
func (l leveledLogger) Warn(msg string, keysAndValues ...interface{})  { l.s.Warnw(msg, keysAndValues...) }
