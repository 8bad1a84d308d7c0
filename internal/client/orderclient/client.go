// Package orderclient talks to the order service over HTTP. It is the
// remote collaborator behind the user aggregation: one call per request,
// no retries, no caching of results.
package orderclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/HasinduSudeepana/User-Order-Micro-Services/internal/domain"
)

type Client struct {
	base    string
	hc      *http.Client
	timeout time.Duration
}

// New builds a client for the order service at baseURL. timeout bounds
// each call; zero means the caller's context is the only bound.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{},
		timeout: timeout,
	}
}

// OrdersForUser fetches every order attributed to userID, in the order
// the order service returns them.
func (c *Client) OrdersForUser(ctx context.Context, userID uint64) ([]domain.OrderDTO, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/api/v1/users/%d/orders", c.base, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("order service: build request: %w", err)
	}
	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order service: unexpected status %d", res.StatusCode)
	}

	var env struct {
		Code int               `json:"code"`
		Msg  string            `json:"msg"`
		Data []domain.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("order service: decode response: %w", err)
	}
	if env.Code != 0 {
		return nil, fmt.Errorf("order service: code %d: %s", env.Code, env.Msg)
	}
	return env.Data, nil
}
