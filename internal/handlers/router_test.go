package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/auth"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/repository"
	ordersync "github.com/tgh-ops/warehouse-fulfillment-service/internal/sync"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/validation"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testServer bundles a fully wired router over an in-memory database.
type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	orders *repository.OrderRepository
	users  *repository.UserRepository
	jwt    *auth.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	users := repository.NewUserRepository(db)
	orders := repository.NewOrderRepository(db)
	mappings := repository.NewProductMappingRepository(db)
	audits := repository.NewAuditRepository(db)

	jwtService := auth.NewJWTService("test-secret", time.Hour)
	reconciler := ordersync.NewReconciler(orders, mappings)
	v := validation.New()

	engine := gin.New()
	RegisterRoutes(engine, Handlers{
		Auth:   NewAuthHandler(users, jwtService, v),
		Users:  NewUsersHandler(users, v),
		Orders: NewOrdersHandler(orders, audits, v),
		Sync:   NewSyncHandler(reconciler, mappings, &stubPlatform{}, v),
		JWT:    jwtService,
	})

	return &testServer{engine: engine, db: db, orders: orders, users: users, jwt: jwtService}
}

type stubPlatform struct{}

func (s *stubPlatform) Login(context.Context) (string, error) { return "stub-token", nil }

func (s *stubPlatform) FetchAllOrders(context.Context, string, string, string) ([]json.RawMessage, error) {
	return []json.RawMessage{json.RawMessage(`{"id":1}`)}, nil
}

func (ts *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)
	admin := &models.User{
		Email:       "admin@test.local",
		Password:    hash,
		Name:        "Admin",
		Role:        models.RoleAdmin,
		Permissions: models.AllPermissions(),
	}
	require.NoError(t, ts.users.Create(context.Background(), admin))
	token, err := ts.jwt.Generate(admin)
	require.NoError(t, err)
	return token
}

func (ts *testServer) seedOrder(t *testing.T, orderID, awb string) {
	t.Helper()
	require.NoError(t, ts.orders.Insert(context.Background(), &models.Order{
		OrderID:      orderID,
		Customer:     models.Customer{Name: "Asha", Mobile: "Unknown", Email: "Unknown"},
		Shipments:    []models.Shipment{{CourierName: "Delhivery", AwbCode: awb, Status: "In Transit"}},
		Products:     []models.Product{{ID: "l1", Name: "Widget", Quantity: 2}},
		PackedStatus: models.StatusNotCompleted,
		PickedStatus: models.StatusNotCompleted,
		CreatedAt:    time.Now().UTC(),
	}))
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
