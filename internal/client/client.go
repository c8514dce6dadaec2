package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"orderdesk/internal/models"
	"orderdesk/pkg/errors"
	"orderdesk/pkg/logger"
)

// Client is a client for the Remote Order Service. It exposes the narrow
// fetch surface the order store consumes: the full order list, a sliced
// page of it, a server-side search, and per-order details.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// New creates a Client for the service at baseURL. A timeout of 0 leaves
// request lifetime entirely to the caller's context.
func New(baseURL string, timeout time.Duration, l logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: l,
	}
}

// FetchOrders retrieves the complete order list in server order.
func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	return c.fetchOrderList(ctx, c.baseURL+"/orders")
}

// FetchOrdersPage retrieves one fixed-size slice of the order list. The
// server slices with json-server style _page/_limit parameters; callers must
// not trust it for totals and learn the total from FetchOrders instead.
func (c *Client) FetchOrdersPage(ctx context.Context, page, limit int) ([]models.Order, error) {
	if page < 1 || limit < 1 {
		return nil, errors.NewInvalidInputError(fmt.Sprintf("invalid page request: page=%d limit=%d", page, limit))
	}

	q := url.Values{}
	q.Set("_page", strconv.Itoa(page))
	q.Set("_limit", strconv.Itoa(limit))

	return c.fetchOrderList(ctx, c.baseURL+"/orders?"+q.Encode())
}

// SearchOrders retrieves orders matching the given filters. Empty filter
// fields are omitted from the query.
func (c *Client) SearchOrders(ctx context.Context, filters models.SearchFilters) ([]models.Order, error) {
	q := url.Values{}

	if filters.CustomerID != "" {
		q.Set("customer_id", filters.CustomerID)
	}

	if filters.Status != "" {
		q.Set("status", string(filters.Status))
	}

	u := c.baseURL + "/orders"
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	return c.fetchOrderList(ctx, u)
}

// FetchOrderByID retrieves the detail record for a single order.
func (c *Client) FetchOrderByID(ctx context.Context, id int) (*models.OrderDetail, error) {
	u := fmt.Sprintf("%s/order_details/%d", c.baseURL, id)

	body, err := c.doGet(ctx, u)

	if err != nil {
		c.logger.Error("Failed to fetch order detail", "error", err, "orderID", id)
		return nil, err
	}

	detail := &models.OrderDetail{}

	if err := json.Unmarshal(body, detail); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to parse order detail: %v", err))
	}

	return detail, nil
}

func (c *Client) fetchOrderList(ctx context.Context, u string) ([]models.Order, error) {
	body, err := c.doGet(ctx, u)

	if err != nil {
		c.logger.Error("Failed to fetch orders", "error", err, "url", u)
		return nil, err
	}

	var orders []models.Order

	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to parse order list: %v", err))
	}

	return orders, nil
}

// doGet issues a single GET request and maps transport and status failures
// into the shared error taxonomy. There is no retry loop: a failed request
// surfaces immediately and retrying is the caller's (the user's) decision.
func (c *Client) doGet(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)

	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.httpClient.Do(req)

	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, errors.NewTimeoutError("request timed out")
		}
		return nil, errors.NewTemporaryError(fmt.Sprintf("failed to reach order service: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, errors.NewInternalError(fmt.Sprintf("failed to read response body: %v", err))
	}

	if resp.StatusCode >= 400 {
		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, errors.NewNotFoundError("order service returned 404")
		case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusGatewayTimeout:
			return nil, errors.NewTimeoutError("order service request timed out")
		case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode >= http.StatusInternalServerError:
			return nil, errors.NewTemporaryError(fmt.Sprintf("order service error: %d", resp.StatusCode))
		default:
			return nil, errors.NewAppError(
				errors.ErrInternal,
				fmt.Sprintf("order service returned error: %d", resp.StatusCode),
				resp.StatusCode,
				false,
			)
		}
	}

	return body, nil
}
