package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-user-management/internal/core/auth"
	"go-user-management/internal/domain"
	"go-user-management/internal/transport/http/handler"
	mdw "go-user-management/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, codec *auth.Codec, users domain.UserRepository, h *handler.UserHandler) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.AuthBearer(codec, users, l),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	u := r.Group("/users")
	u.GET("/roles", h.ListRoles)
	u.POST("/login", h.Login)
	u.GET("", h.List)
	u.POST("", h.Create)
	u.GET("/:uid", h.Get)
	u.PUT("/:uid", h.Edit)
	u.DELETE("/:uid", h.Delete)

	return r
}
