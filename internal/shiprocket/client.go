package shiprocket

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/config"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/retry"
	"go.uber.org/zap"
)

// perPage is the platform's maximum page size.
const perPage = 200

// ErrAuthFailed is returned when the platform rejects the login call; the
// handler maps it to a 401 for the frontend.
var ErrAuthFailed = errors.New("shiprocket authentication failed")

// Client talks to the Shiprocket external API. All calls go through a circuit
// breaker so a flapping platform does not pile up slow requests, and each
// request retries with backoff before counting as a failure.
type Client struct {
	http     *http.Client
	baseURL  string
	email    string
	password string
	breaker  *gobreaker.CircuitBreaker
}

func NewClient(cfg config.ShiprocketConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("shiprocket base URL is required")
	}
	return &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		baseURL:  cfg.BaseURL,
		email:    cfg.Email,
		password: cfg.Password,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "shiprocket",
			Timeout: 30 * time.Second,
		}),
	}, nil
}

// Login obtains a bearer token from the platform.
func (c *Client) Login(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return "", fmt.Errorf("building login payload: %w", err)
	}

	var out struct {
		Token string `json:"token"`
	}
	err = c.doJSON(ctx, http.MethodPost, c.baseURL+"/v1/external/auth/login", "", body, &out)
	if err != nil || out.Token == "" {
		zap.L().Error("shiprocket login failed", zap.Error(err))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		return "", ErrAuthFailed
	}
	return out.Token, nil
}

// ordersPage mirrors the platform's paginated listing response.
type ordersPage struct {
	Data   []json.RawMessage `json:"data"`
	Paging struct {
		Total int `json:"total"`
	} `json:"paging"`
}

// FetchAllOrders pulls every order in the date range, following the
// platform's pagination: it keeps requesting while page*perPage is below the
// total the platform reports.
func (c *Client) FetchAllOrders(ctx context.Context, token, from, to string) ([]json.RawMessage, error) {
	var all []json.RawMessage

	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("from", from)
		query.Set("to", to)
		query.Set("page", strconv.Itoa(page))
		query.Set("per_page", strconv.Itoa(perPage))

		var out ordersPage
		endpoint := c.baseURL + "/v1/external/orders?" + query.Encode()
		if err := c.doJSON(ctx, http.MethodGet, endpoint, token, nil, &out); err != nil {
			return nil, fmt.Errorf("fetching orders page %d: %w", page, err)
		}
		all = append(all, out.Data...)

		if page*perPage >= out.Paging.Total {
			break
		}
	}

	zap.L().Info("orders fetched from shiprocket",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("total_orders", len(all)),
	)
	return all, nil
}

// doJSON performs one request through the breaker with retries and decodes
// the JSON response into out.
func (c *Client) doJSON(ctx context.Context, method, endpoint, token string, body []byte, out interface{}) error {
	return retry.WithRetry(ctx, 3, 500*time.Millisecond, func() error {
		_, err := c.breaker.Execute(func() (interface{}, error) {
			var reader io.Reader
			if body != nil {
				reader = bytes.NewReader(body)
			}
			req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
			if err != nil {
				return nil, fmt.Errorf("building request: %w", err)
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			if token != "" {
				req.Header.Set("Authorization", "Bearer "+token)
			}

			resp, err := c.http.Do(req)
			if err != nil {
				return nil, fmt.Errorf("request error: %w", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
				return nil, fmt.Errorf("shiprocket error: status %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
			}
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return nil, fmt.Errorf("invalid JSON from shiprocket: %w", err)
			}
			return nil, nil
		})
		return err
	})
}
