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
	"time"

	"github.com/shopspring/decimal"
	"github.com/vetrovegor/storefront/internal/apperror"
	"github.com/vetrovegor/storefront/internal/catalog"
	"github.com/vetrovegor/storefront/internal/checkout"
	"github.com/vetrovegor/storefront/internal/config"
	"github.com/vetrovegor/storefront/internal/customer"
	"github.com/vetrovegor/storefront/internal/logging"
	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/tenant"
	"github.com/vetrovegor/storefront/pkg/metrics"
	"github.com/vetrovegor/storefront/pkg/utils"
	"go.uber.org/zap"
)

const (
	endpointBranding        = "logo"
	endpointSchedule        = "horarios_establecimiento"
	endpointWarehouses      = "bodegas_public"
	endpointProducts        = "productos/disponibles"
	endpointCustomerSearch  = "clientes/buscar"
	endpointCustomerDetails = "clientes/detalles"
	endpointSalespeople     = "comerciales/sin_auth"
	endpointOrder           = "pedido"

	IdempotencyKeyHeader = "Idempotency-Key"

	errorBodyReadLimit int64 = 1024
)

// StatusError is returned for unexpected backend status codes. It unwraps to
// apperror.ErrBackendUnavailable.
type StatusError struct {
	Endpoint string
	Status   int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend %s responded %d: %s", e.Endpoint, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return apperror.ErrBackendUnavailable
}

type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	metrics    *metrics.BackendMetrics
	log        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

func NewClient(cfg config.Backend, m *metrics.BackendMetrics, log *zap.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("backend url %q must be absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    base,
		metrics:    m,
		log:        log,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

func (c *Client) GetBranding(ctx context.Context, slug string) (tenant.Branding, error) {
	var dto brandingDTO
	if err := c.getJSON(ctx, endpointBranding, tenantQuery(slug), &dto); err != nil {
		return tenant.Branding{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) GetSchedule(ctx context.Context, slug string) ([]schedule.Entry, error) {
	var dtos []scheduleDTO
	if err := c.getJSON(ctx, endpointSchedule, tenantQuery(slug), &dtos); err != nil {
		return nil, err
	}
	return utils.Map(dtos, scheduleDTO.toDomain), nil
}

func (c *Client) GetWarehouses(ctx context.Context, slug string) ([]catalog.Warehouse, error) {
	var dtos []warehouseDTO
	if err := c.getJSON(ctx, endpointWarehouses, tenantQuery(slug), &dtos); err != nil {
		return nil, err
	}
	return utils.Map(dtos, warehouseDTO.toDomain), nil
}

func (c *Client) GetProducts(ctx context.Context, slug, warehouseID string) ([]catalog.Product, error) {
	q := tenantQuery(slug)
	q.Set("bodega_id", warehouseID)

	var dtos []productDTO
	if err := c.getJSON(ctx, endpointProducts, q, &dtos); err != nil {
		return nil, err
	}
	return utils.Map(dtos, productDTO.toDomain), nil
}

func (c *Client) SearchCustomers(ctx context.Context, slug string, query customer.Query) ([]customer.Customer, error) {
	var dtos []customerDTO
	if err := c.getJSON(ctx, endpointCustomerSearch, customerQuery(slug, query), &dtos); err != nil {
		return nil, err
	}
	return utils.Map(dtos, customerDTO.toDomain), nil
}

// GetCustomerDetails resolves the price-list discount percent of a customer,
// 0 when the customer has no price list.
func (c *Client) GetCustomerDetails(ctx context.Context, slug string, query customer.Query) (decimal.Decimal, error) {
	var dto customerDetailsDTO
	if err := c.getJSON(ctx, endpointCustomerDetails, customerQuery(slug, query), &dto); err != nil {
		return decimal.Zero, err
	}
	return dto.discount(), nil
}

func (c *Client) GetSalespeople(ctx context.Context, slug string) ([]string, error) {
	var dtos []salespersonDTO
	if err := c.getJSON(ctx, endpointSalespeople, tenantQuery(slug), &dtos); err != nil {
		return nil, err
	}
	return utils.Map(dtos, func(d salespersonDTO) string { return d.ID.String() }), nil
}

// SubmitOrder posts the order and succeeds only on 201 Created.
func (c *Client) SubmitOrder(ctx context.Context, slug string, draft checkout.OrderDraft, idempotencyKey string) error {
	dto, err := newOrderDTO(draft)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	payload, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpointOrder, tenantQuery(slug), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(IdempotencyKeyHeader, idempotencyKey)
	}

	resp, err := c.do(endpointOrder, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return statusError(endpointOrder, resp)
	}

	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, dst any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, query, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(endpoint, req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL.JoinPath(endpoint)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	return req, nil
}

func (c *Client) do(endpoint string, req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := c.httpClient.Do(req)

	duration := time.Since(start)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}

	var observed error = err
	if err == nil && status >= 400 {
		observed = fmt.Errorf("status %d", status)
	}
	c.metrics.Observe(endpoint, duration, observed)
	logging.LogBackendCall(c.log, req.Method, req.URL, status, duration)

	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %w", apperror.ErrBackendUnavailable, endpoint, err)
	}

	return resp, nil
}

func statusError(endpoint string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	return &StatusError{
		Endpoint: endpoint,
		Status:   resp.StatusCode,
		Body:     strings.TrimSpace(string(body)),
	}
}

func tenantQuery(slug string) url.Values {
	return url.Values{"establecimiento": []string{slug}}
}

func customerQuery(slug string, query customer.Query) url.Values {
	q := tenantQuery(slug)
	q.Set("nombre", query.Name)
	q.Set("nit", query.NIT)
	return q
}
