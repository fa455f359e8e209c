// Package client talks to a running screener server over its JSON API.
package client

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

	"github.com/goto/screener/core/product"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/core/task"
)

type Config struct {
	Host    string        `yaml:"host" mapstructure:"host" default:"localhost:8080"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" default:"10s"`
}

// APIError is a non 2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Reason     string `json:"reason"`
	Field      string `json:"field"`
	Value      string `json:"value"`
}

func (err APIError) Error() string {
	msg := err.Reason
	if msg == "" {
		msg = http.StatusText(err.StatusCode)
	}
	if err.Field != "" {
		return fmt.Sprintf("%d %s: %s (%s=%q)", err.StatusCode, err.Code, msg, err.Field, err.Value)
	}
	return fmt.Sprintf("%d %s: %s", err.StatusCode, err.Code, msg)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New accepts hosts with or without a scheme; plain host:port means http.
func New(cfg Config) (*Client, error) {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		return nil, fmt.Errorf("client host is empty")
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}

	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("parse client host: %w", err)
	}

	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (c *Client) Health(ctx context.Context) error {
	_, err := do[map[string]string](ctx, c, http.MethodGet, "/health", nil, nil)
	return err
}

func (c *Client) ListStocks(ctx context.Context, params url.Values) (query.ResultPage[stock.Stock], error) {
	return do[query.ResultPage[stock.Stock]](ctx, c, http.MethodGet, "/api/stocks", params, nil)
}

func (c *Client) GetStock(ctx context.Context, ticker string) (stock.Stock, error) {
	return do[stock.Stock](ctx, c, http.MethodGet, "/api/stocks/"+url.PathEscape(ticker), nil, nil)
}

func (c *Client) StockStats(ctx context.Context) (stock.Stats, error) {
	return do[stock.Stats](ctx, c, http.MethodGet, "/api/stats", nil, nil)
}

func (c *Client) Sectors(ctx context.Context) ([]string, error) {
	return do[[]string](ctx, c, http.MethodGet, "/api/sectors", nil, nil)
}

func (c *Client) ListProducts(ctx context.Context, params url.Values) (query.ResultPage[product.Product], error) {
	return do[query.ResultPage[product.Product]](ctx, c, http.MethodGet, "/api/products", params, nil)
}

func (c *Client) GetProduct(ctx context.Context, id string) (product.Product, error) {
	return do[product.Product](ctx, c, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListTasks(ctx context.Context, params url.Values) (query.ResultPage[task.Task], error) {
	return do[query.ResultPage[task.Task]](ctx, c, http.MethodGet, "/api/tasks", params, nil)
}

func (c *Client) GetTask(ctx context.Context, id string) (task.Task, error) {
	return do[task.Task](ctx, c, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, nil)
}

func (c *Client) UpdateTaskStatus(ctx context.Context, id, status string) (task.Task, error) {
	body := map[string]string{"status": status}
	return do[task.Task](ctx, c, http.MethodPatch, "/api/tasks/"+url.PathEscape(id)+"/status", nil, body)
}

func (c *Client) AddTaskBarrier(ctx context.Context, id, barrier string) (task.Task, error) {
	body := map[string]string{"barrier": barrier}
	return do[task.Task](ctx, c, http.MethodPost, "/api/tasks/"+url.PathEscape(id)+"/barriers", nil, body)
}

func (c *Client) RemoveTaskBarrier(ctx context.Context, id, barrier string) (task.Task, error) {
	path := "/api/tasks/" + url.PathEscape(id) + "/barriers/" + url.PathEscape(barrier)
	return do[task.Task](ctx, c, http.MethodDelete, path, nil, nil)
}

func (c *Client) ResetTasks(ctx context.Context) error {
	_, err := do[map[string]string](ctx, c, http.MethodPost, "/api/tasks/reset", nil, nil)
	return err
}

// Reload asks the server to re-read its datasets and returns when it did.
func (c *Client) Reload(ctx context.Context) (time.Time, error) {
	resp, err := do[struct {
		ReloadedAt time.Time `json:"reloaded_at"`
	}](ctx, c, http.MethodPost, "/api/admin/reload", nil, nil)
	return resp.ReloadedAt, err
}

func do[T any](ctx context.Context, c *Client, method, path string, params url.Values, body interface{}) (T, error) {
	var out T

	u := c.baseURL.JoinPath(path)
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return out, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return out, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return out, apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return out, nil
}
