package handler

import (
	"kontribo-backend/internal/adapter/http/middleware"
	redisStore "kontribo-backend/internal/adapter/storage/redis"
	"kontribo-backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SupportSvc     ports.SupportService
	WithdrawalSvc  ports.WithdrawalService
	WebhookSvc     ports.WebhookService
	LedgerSvc      ports.LedgerService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Currency       string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep: verifies backing stores)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	supportHandler := NewSupportHandler(deps.SupportSvc)
	supports := v1.Group("/supports")
	{
		supports.POST("", rl("supports"), supportHandler.CreateSupport)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("/xendit", rl("webhooks"), webhookHandler.HandleXenditCallback)
	}

	// --- JWT-authenticated routes (contributor dashboard) ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc, deps.Currency)
	ledgerHandler := NewLedgerHandler(deps.LedgerSvc, deps.Currency)

	withdrawals := v1.Group("/withdrawals", jwtAuth)
	{
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.RequestWithdrawal)
		withdrawals.GET("", rl("dashboard"), withdrawalHandler.List)
		withdrawals.GET("/balance", rl("dashboard"), withdrawalHandler.GetBalances)
	}

	v1.POST("/supports/:id/release", jwtAuth, rl("dashboard"), supportHandler.Release)

	ledger := v1.Group("/ledger", jwtAuth)
	{
		ledger.GET("/revenue", rl("dashboard"), ledgerHandler.GetFounderRevenue)
	}

	return r
}
