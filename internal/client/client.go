// Package client talks to the external product API. It is the only place
// in the program that touches the network.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/product-admin/internal/domain"
)

// FallbackMessage is shown when the API fails without a usable message body.
const FallbackMessage = "Unable to create the product, please try again"

// APIError is a non-2xx response from the product API. Message carries the
// server-provided detail verbatim when the body contained one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return FallbackMessage
}

// errorBody is the shape of the API's failure responses.
type errorBody struct {
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
	logger  hclog.Logger
}

// New creates a product API client for the given base URL.
func New(baseURL string, timeout time.Duration, logger hclog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListProducts returns all products known to the API.
func (c *Client) ListProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return nil, err
	}

	var products []domain.ProductRecord
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}

	return products, nil
}

// CreateProduct issues one POST to the product-creation endpoint.
func (c *Client) CreateProduct(ctx context.Context, payload *domain.NewProductPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding product payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/products/add", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	c.logger.Debug("Sending request",
		"method", req.Method,
		"url", req.URL.Path,
		"request_id", requestID,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Request failed", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("calling product API: %w", err)
	}

	c.logger.Debug("Completed request",
		"method", req.Method,
		"url", req.URL.Path,
		"request_id", requestID,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	return resp, nil
}

// checkStatus maps any non-2xx response to an *APIError, extracting the
// server's message field when one is present.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Message = body.Message
	}

	c.logger.Error("Product API returned an error",
		"status", resp.StatusCode,
		"message", apiErr.Message,
	)

	return apiErr
}
