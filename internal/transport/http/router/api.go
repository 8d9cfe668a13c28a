package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-journal-api/internal/core/auth"
	"go-journal-api/internal/core/server"
	mdw "go-journal-api/internal/transport/http/middleware"
)

// NewAPIEngine 中间件链 + /health + /metrics，业务路由来自 Registry。
// /auth/* 公共；其余全部过 Bearer 鉴权。
func NewAPIEngine(l *zap.Logger, jwter *auth.JWTer, reg *Registry) *gin.Engine {
	r := server.NewEngine(l)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查/指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("")
	reg.MountAllPublic(public)

	authed := r.Group("")
	authed.Use(mdw.AuthJWT(jwter, ""))
	reg.MountAllAPI(authed)

	return r
}
