package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/merrydance/dispatch/util"
	"github.com/merrydance/dispatch/worker"
	"github.com/rs/zerolog/log"
)

// MessageResponse 通用消息响应
type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

// Server serves HTTP requests for the dispatch service.
type Server struct {
	config          util.Config
	store           db.Store
	taskDistributor worker.TaskDistributor
	router          *gin.Engine
}

// NewServer creates a new HTTP server and set up routing.
func NewServer(config util.Config, store db.Store, taskDistributor worker.TaskDistributor) (*Server, error) {
	server := &Server{
		config:          config,
		store:           store,
		taskDistributor: taskDistributor,
	}

	server.setupRouter()
	return server, nil
}

func (server *Server) setupRouter() {
	if server.config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// 跨域资源共享中间件
	router.Use(CORSMiddleware(server.config.AllowedOrigins))

	// 安全响应头中间件
	router.Use(SecurityHeadersMiddleware())

	// 请求追踪中间件（生成 X-Request-ID）
	router.Use(RequestTracingMiddleware())
	router.Use(RequestLoggingMiddleware())

	// Prometheus 指标中间件
	router.Use(PrometheusMiddleware())

	// 全局超时中间件：防止慢查询卡死导致goroutine泄漏
	router.Use(TimeoutMiddleware(30 * time.Second))

	// Prometheus 指标端点（供监控系统抓取）
	router.GET("/metrics", MetricsHandler())

	// 健康检查端点（供 Nginx/K8s 使用）
	router.GET("/health", server.healthCheck)
	router.GET("/ready", server.readinessCheck)

	v1 := router.Group("/v1")

	// 骑手路由
	v1.POST("/couriers", server.createCourier)
	v1.POST("/couriers/:id/online", server.setCourierOnline)
	v1.PATCH("/couriers/:id/location", server.updateCourierLocation)
	v1.GET("/couriers/:id/deliveries", server.listCourierDeliveries)

	// 订单组路由
	v1.POST("/order-groups", server.createOrderGroup)
	v1.GET("/order-groups/:id", server.getOrderGroup)
	v1.POST("/order-groups/:id/dispatch", server.dispatchOrderGroup)
	v1.GET("/order-groups/:id/assignments", server.listGroupAssignments)

	server.router = router
}

// Start runs the HTTP server on a specific address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// GetRouter returns the gin router for creating http.Server
func (server *Server) GetRouter() *gin.Engine {
	return server.router
}

// healthCheck 健康检查 - 基础存活检查
// GET /health
func (server *Server) healthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "dispatch-api",
	})
}

// readinessCheck 就绪检查 - 检查依赖服务
// GET /ready
func (server *Server) readinessCheck(ctx *gin.Context) {
	if err := server.store.Ping(ctx); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database connection failed",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"service":  "dispatch-api",
		"database": "connected",
	})
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// errorResponse creates an error response.
// For 4xx client errors: returns the actual error message
// For 5xx server errors: use internalError() instead to avoid leaking details
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}

// internalError logs the actual error and returns a safe generic message.
func internalError(ctx *gin.Context, err error) gin.H {
	_ = ctx.Error(err)

	evt := log.Error().
		Err(err).
		Str("request_id", GetRequestID(ctx)).
		Str("path", ctx.Request.URL.Path).
		Str("method", ctx.Request.Method)

	// Postgres 错误补充结构化字段，方便排查
	if pgErr, ok := err.(*pgconn.PgError); ok {
		evt = evt.
			Str("sqlstate", pgErr.Code).
			Str("pg_message", pgErr.Message).
			Str("pg_detail", pgErr.Detail)
	}

	evt.Msg("internal error")

	return gin.H{"error": "internal server error"}
}
