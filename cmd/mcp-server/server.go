package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/njchilds90/gopoly"
	"github.com/njchilds90/gopoly/internal/config"
)

const requestIDHeader = "X-Request-ID"

// ============================================================
// Metrics
// ============================================================

var (
	toolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gopoly_tool_calls_total",
		Help: "Tool calls by tool, coefficient field and result",
	}, []string{"tool", "field", "result"})

	toolDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gopoly_tool_duration_seconds",
		Help:    "Tool call latency in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
	}, []string{"tool"})
)

// knownTools is the tool name set published by the schema.
var knownTools = func() map[string]bool {
	var spec struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	_ = json.Unmarshal([]byte(gopoly.MCPToolSpec()), &spec)
	names := make(map[string]bool, len(spec.Tools))
	for _, t := range spec.Tools {
		names[t.Name] = true
	}
	return names
}()

// toolLabel keeps metric cardinality bounded to the published tools.
func toolLabel(name string) string {
	if knownTools[name] {
		return name
	}
	return "unknown"
}

// ============================================================
// Router
// ============================================================

func newRouter(cfg config.Config, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(logger), gin.CustomRecovery(func(c *gin.Context, rec any) {
		logger.Error("panic in handler", "path", c.Request.URL.Path, "panic", rec, "request_id", c.GetString("request_id"))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}))

	// POST /tool: execute a tool call
	r.POST("/tool", func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.Server.MaxBodyBytes)
		dec := json.NewDecoder(c.Request.Body)
		dec.DisallowUnknownFields()

		var req gopoly.ToolRequest
		if err := dec.Decode(&req); err != nil {
			status := http.StatusBadRequest
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				status = http.StatusRequestEntityTooLarge
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}
		if dec.More() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: trailing data"})
			return
		}
		if req.Params == nil {
			req.Params = map[string]interface{}{}
		}
		if _, ok := req.Params["field"]; !ok {
			req.Params["field"] = cfg.Field
		}

		start := time.Now()
		resp := gopoly.HandleToolCall(req)
		tool := toolLabel(req.Tool)
		toolDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
		result := "ok"
		if resp.Error != "" {
			result = "error"
			logger.Warn("tool call failed", "tool", req.Tool, "field", resp.Field, "error", resp.Error, "request_id", c.GetString("request_id"))
		}
		toolCalls.WithLabelValues(tool, resp.Field, result).Inc()
		c.JSON(http.StatusOK, resp)
	})

	// GET /schema: tool schema for agent registration
	r.GET("/schema", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(gopoly.MCPToolSpec()))
	})

	// GET /health: liveness check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

// requestID propagates an incoming X-Request-ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString("request_id"))
	}
}
