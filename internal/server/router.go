package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SunceWallet/txrep/internal/handler"
	"github.com/SunceWallet/txrep/internal/handler/response"
	"github.com/SunceWallet/txrep/pkg/monitor"
)

type RouterConfig struct {
	Metrics bool
}

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(cfg RouterConfig, txrepHandler *handler.TxrepHandler) *gin.Engine {
	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()

	// 2. 监控埋点
	if cfg.Metrics {
		monitor.Init()
		r.Use(monitor.PrometheusMiddleware())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// 3. 基础路由
	r.GET("/health", handler.HealthCheck)

	// 4. API 路由组
	api := r.Group("/api/v1")
	{
		api.GET("/ping", func(c *gin.Context) {
			response.Success(c, gin.H{"pong": true})
		})

		txrep := api.Group("/txrep")
		txrep.POST("/encode", txrepHandler.Encode)
		txrep.POST("/decode", txrepHandler.Decode)
	}

	return r
}
