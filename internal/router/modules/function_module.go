package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farm2home/farm2home-backend/internal/container"
	handlers "github.com/farm2home/farm2home-backend/internal/interface/http"
	"github.com/farm2home/farm2home-backend/internal/interface/middleware"
)

// FunctionModule wires the callable endpoints under /api/functions.
// All routes are public; per-IP rate limiting applies.
type FunctionModule struct {
	Functions     *handlers.FunctionHandler
	Notifications *handlers.NotificationHandler
}

func NewFunctionModule(fn *handlers.FunctionHandler, nh *handlers.NotificationHandler) *FunctionModule {
	return &FunctionModule{Functions: fn, Notifications: nh}
}

func (m *FunctionModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil) // 120 req/min per IP
	// The filter stub blocks for its simulated latency, so keep it tighter.
	filterLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	functions := rg.Group("/functions")
	functions.POST("/say-hello", limiter, m.Functions.SayHello)
	functions.POST("/calculate-sum", limiter, m.Functions.CalculateSum)
	functions.POST("/server-time", limiter, m.Functions.GetServerTime)
	functions.POST("/process-image", filterLimiter, m.Functions.ProcessImage)
	functions.POST("/send-welcome-message", limiter, m.Notifications.SendWelcomeMessage)
}
