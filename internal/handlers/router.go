package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/auth"
	"github.com/tgh-ops/warehouse-fulfillment-service/internal/models"
)

// Handlers groups everything the router wires up.
type Handlers struct {
	Auth   *AuthHandler
	Users  *UsersHandler
	Orders *OrdersHandler
	Sync   *SyncHandler
	JWT    *auth.JWTService
}

// RegisterRoutes attaches every route to the engine. Route paths and response
// shapes are a frontend contract; change them together with the dashboard.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "warehouse-fulfillment-service"})
	})

	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	profile := r.Group("/profile", auth.Middleware(h.JWT))
	{
		profile.GET("", h.Auth.GetProfile)
		profile.PUT("", h.Auth.UpdateProfile)
	}

	admin := r.Group("/admin", auth.Middleware(h.JWT, models.RoleAdmin))
	{
		admin.GET("/users", h.Users.List)
		admin.POST("/users", h.Users.Create)
		admin.PUT("/users/:userID", h.Users.Update)
		admin.DELETE("/users/:userID", h.Users.Delete)
	}

	r.GET("/shiprocket-orders", h.Sync.FetchPlatformOrders)
	r.POST("/sync-orders", h.Sync.SyncOrders)
	r.POST("/update-product-ids", h.Sync.UpdateProductIDs)
	r.GET("/get-previous-products", h.Sync.GetPreviousProducts)

	r.GET("/all-orders", h.Orders.List)
	order := r.Group("/order")
	{
		order.GET("/awb/:awbCode", h.Orders.GetByAwb)
		order.POST("/awb/:awbCode/delivery", h.Orders.UpdateDelivery)
		order.GET("/:orderID", h.Orders.Get)
		order.POST("/:orderID/complete-packing", h.Orders.CompletePacking)
		order.POST("/:orderID/hold-packing", h.Orders.HoldPacking)
		order.POST("/:orderID/complete-picking", h.Orders.CompletePicking)
		order.POST("/:orderID/override", h.Orders.Override)
	}
}
