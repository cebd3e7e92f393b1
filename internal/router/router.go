package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/cart"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/config"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/handler"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/middleware"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/service"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/upstream"
	"github.com/ACK1998/cafe-tamarind-sub001/internal/worker"
)

// New wires repositories, services and handlers into the HTTP surface. This
// is the composition root; nothing else constructs services.
func New(cfg *config.Config, rdb *redis.Client, api *upstream.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	carts := cart.NewStore(cart.NewRedisRepository(rdb, cfg.SessionTTL()))

	menus := service.NewMenuService(api, rdb, cfg.MenuCacheTTL())
	orders := service.NewOrderService(api, carts, dispatcher)
	ledgers := service.NewLedgerService(api)
	reviews := service.NewReviewService(api)

	healthHandler := handler.NewHealthHandler(rdb, api)
	menuHandler := handler.NewMenuHandler(menus, api)
	cartHandler := handler.NewCartHandler(carts, menus)
	orderHandler := handler.NewOrderHandler(orders)
	ledgerHandler := handler.NewLedgerHandler(ledgers)
	reviewHandler := handler.NewReviewHandler(reviews, carts)
	authHandler := handler.NewAuthHandler(api, carts)
	userHandler := handler.NewUserHandler(api)
	printHandler := handler.NewPrintHandler(api, dispatcher, cfg.CafeName)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
		middleware.ErrorHandler(),
		middleware.RateLimiter(300, time.Minute),
	)

	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/v1")
	v1.Use(middleware.SessionID())
	{
		v1.GET("/menu", menuHandler.Browse)
		v1.GET("/menu/categories", menuHandler.Categories)
		v1.GET("/menu/:id", menuHandler.Item)
		v1.GET("/menu/:id/reviews", reviewHandler.ForMenuItem)

		v1.GET("/cart", cartHandler.Get)
		v1.POST("/cart/items", cartHandler.Add)
		v1.PUT("/cart/items/:itemId", cartHandler.UpdateQuantity)
		v1.DELETE("/cart/items/:itemId", cartHandler.Remove)
		v1.DELETE("/cart", cartHandler.Clear)
		v1.PUT("/cart/tier", cartHandler.SetTier)

		v1.POST("/orders", orderHandler.Checkout)
		v1.GET("/orders/lookup", orderHandler.Lookup)
		v1.GET("/orders/:id", orderHandler.Get)

		v1.POST("/reviews", reviewHandler.Submit)
		v1.GET("/reviews/eligibility/:orderId", reviewHandler.Eligibility)
		v1.GET("/reviews/order/:orderId", reviewHandler.Existing)

		v1.POST("/auth/otp/generate", authHandler.GenerateOTP)
		v1.POST("/auth/otp/verify", authHandler.VerifyOTP)
		v1.POST("/auth/login", authHandler.CustomerLogin)
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/logout", authHandler.Logout)
		v1.GET("/me", authHandler.Profile)
		v1.GET("/me/orders", authHandler.MyOrders)
		v1.POST("/me/password", authHandler.ChangePassword)
	}

	v1.POST("/admin/login", authHandler.AdminLogin)

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(cfg.JWTSecret))
	{
		admin.GET("/menu", menuHandler.AdminList)
		admin.POST("/menu", menuHandler.Create)
		admin.PUT("/menu/:id", menuHandler.Update)
		admin.DELETE("/menu/:id", menuHandler.Delete)

		admin.POST("/orders", orderHandler.AdminPlace)
		admin.GET("/orders", orderHandler.AdminList)
		admin.POST("/orders/:id/advance", orderHandler.Advance)
		admin.POST("/orders/:id/cancel", orderHandler.Cancel)

		admin.GET("/ledgers/customer", ledgerHandler.Customer)
		admin.GET("/ledgers/employee", ledgerHandler.Employee)
		admin.POST("/ledgers/settlements", ledgerHandler.Settle)

		admin.GET("/reviews", reviewHandler.AdminList)

		admin.GET("/users", userHandler.List)
		admin.PUT("/users/:id", userHandler.Update)
		admin.DELETE("/users/:id", userHandler.Delete)
		admin.GET("/users/:id/orders", userHandler.Orders)

		admin.GET("/print/kot/:id", printHandler.KOT)
		admin.GET("/print/bill/:id", printHandler.Bill)
		admin.GET("/print/combined", printHandler.Combined)
		admin.POST("/print/:id", printHandler.Reprint)
	}

	return r
}
