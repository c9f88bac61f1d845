package shiprocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.ShiprocketConfig{
		BaseURL:  srv.URL,
		Email:    "ops@example.com",
		Password: "secret",
	})
	require.NoError(t, err)
	return client, srv
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(config.ShiprocketConfig{})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/external/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "ops@example.com", creds["email"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	}))

	token, err := client.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestLoginRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Wrong credentials"}`)
	}))

	_, err := client.Login(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestLoginEmptyToken(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"token": ""})
	}))

	_, err := client.Login(context.Background())
	assert.ErrorIs(t, err, ErrAuthFailed)
}

func TestFetchAllOrdersPaginates(t *testing.T) {
	// 450 orders: pages of 200, 200 and 50.
	const total = 450
	var pagesServed []int

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/external/orders", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("from"))
		assert.Equal(t, "2026-03-07", r.URL.Query().Get("to"))
		assert.Equal(t, "200", r.URL.Query().Get("per_page"))

		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		require.NoError(t, err)
		pagesServed = append(pagesServed, page)

		remaining := total - (page-1)*200
		if remaining > 200 {
			remaining = 200
		}
		data := make([]json.RawMessage, 0, remaining)
		for i := 0; i < remaining; i++ {
			data = append(data, json.RawMessage(fmt.Sprintf(`{"id":%d}`, (page-1)*200+i)))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":   data,
			"paging": map[string]int{"total": total},
		})
	}))

	orders, err := client.FetchAllOrders(context.Background(), "tok-123", "2026-03-01", "2026-03-07")
	require.NoError(t, err)
	assert.Len(t, orders, total)
	assert.Equal(t, []int{1, 2, 3}, pagesServed)
}

func TestFetchAllOrdersSinglePage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":   []json.RawMessage{json.RawMessage(`{"id":1}`)},
			"paging": map[string]int{"total": 1},
		})
	}))

	orders, err := client.FetchAllOrders(context.Background(), "tok", "2026-03-01", "2026-03-01")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestFetchAllOrdersEmptyRange(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data":   []json.RawMessage{},
			"paging": map[string]int{"total": 0},
		})
	}))

	orders, err := client.FetchAllOrders(context.Background(), "tok", "2026-03-01", "2026-03-01")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestDoJSONRetriesTransientFailure(t *testing.T) {
	var calls int
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-after-retry"})
	}))

	token, err := client.Login(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-after-retry", token)
	assert.Equal(t, 2, calls)
}
