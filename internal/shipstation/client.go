package shipstation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/quaywork/warehousectl/internal/config"
)

// Client talks to the upstream order store over its REST API.
//
// All methods are synchronous and carry the configured per-request timeout.
// Failures come back as ErrOrderNotFound or *APIError; see the package
// comment.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// New constructs a Client from cfg. Credentials must already be validated;
// New performs no network I/O.
func New(cfg config.Config) *Client {
	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetBasicAuth(cfg.APIKey, cfg.APISecret).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http: rc,
		log:  slog.Default().With("component", "shipstation"),
	}
}

// GetOrderByNumber looks up a single order by its human-facing number.
// The search is status-agnostic. Returns ErrOrderNotFound when the result
// set is empty.
func (c *Client) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	var out ordersResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("orderNumber", number).
		SetResult(&out).
		Get("/orders")
	if err := c.check("get order", resp, err); err != nil {
		return nil, err
	}

	if len(out.Orders) == 0 {
		return nil, fmt.Errorf("order %s: %w", number, ErrOrderNotFound)
	}

	// The number search can return loose matches; prefer the exact one.
	for i := range out.Orders {
		if out.Orders[i].OrderNumber == number {
			return &out.Orders[i], nil
		}
	}
	return &out.Orders[0], nil
}

// ListOrdersByStatus fetches a single page of orders in the given status.
// Pagination beyond the first page is deliberately not implemented; callers
// use a page size large enough to cover the working set.
func (c *Client) ListOrdersByStatus(ctx context.Context, status Status, pageSize int) ([]Order, error) {
	var out ordersResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"orderStatus": string(status),
			"page":        "1",
			"pageSize":    strconv.Itoa(pageSize),
		}).
		SetResult(&out).
		Get("/orders")
	if err := c.check("list orders", resp, err); err != nil {
		return nil, err
	}

	c.log.Debug("listed orders", "status", status, "count", len(out.Orders), "total", out.Total)
	return out.Orders, nil
}

// ListTags fetches the full tag catalog.
func (c *Client) ListTags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/accounts/listtags")
	if err := c.check("list tags", resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// AddTag attaches a tag to an order. The call is not conditional; callers
// that want idempotency check membership first (see workflow.EnsureTagged).
func (c *Client) AddTag(ctx context.Context, orderID, tagID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(addTagRequest{OrderID: orderID, TagID: tagID}).
		Post("/orders/addtag")
	return c.check("add tag", resp, err)
}

// UpdateOrder replaces an order's full record upstream. The update endpoint
// requires the complete object, not a partial patch, so order must be the
// record previously fetched with only the intended fields changed.
func (c *Client) UpdateOrder(ctx context.Context, order *Order) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(order).
		Post("/orders/createorder")
	return c.check("update order", resp, err)
}

// check folds resty's (response, error) pair into the package error
// taxonomy.
func (c *Client) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.log.Debug("request failed", "op", op, "error", err)
		return &APIError{Op: op, Err: err}
	}
	if resp.IsError() {
		c.log.Debug("request rejected", "op", op, "status", resp.StatusCode())
		return &APIError{Op: op, StatusCode: resp.StatusCode()}
	}
	return nil
}
