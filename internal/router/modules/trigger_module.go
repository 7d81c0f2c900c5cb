package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/farm2home/farm2home-backend/internal/container"
	handlers "github.com/farm2home/farm2home-backend/internal/interface/http"
	"github.com/farm2home/farm2home-backend/internal/interface/middleware"
)

// TriggerModule wires the record-creation event ingress under /api/triggers.
// Calls from private networks (the platform side) bypass the limiter.
type TriggerModule struct {
	Handler *handlers.TriggerHandler
}

func NewTriggerModule(h *handlers.TriggerHandler) *TriggerModule {
	return &TriggerModule{Handler: h}
}

func (m *TriggerModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	triggers := rg.Group("/triggers")
	triggers.Use(limiter)
	triggers.POST("/user-created", m.Handler.UserCreated)
	triggers.POST("/order-created", m.Handler.OrderCreated)
}
