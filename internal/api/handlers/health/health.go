package health

import (
	"context"
	"net/http"
	"time"

	"smarty-chef/internal/core/cache"
	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serverStatus = "Smarty-Chef.PCS Server Running!"

// HealthResponse 健康檢查響應
type HealthResponse struct {
	Status             string                 `json:"status"`
	Timestamp          string                 `json:"timestamp"`
	APIKeyStatus       string                 `json:"apiKeyStatus"`
	UpstreamConfigured bool                   `json:"upstreamConfigured"`
	Version            string                 `json:"version"`
	Cache              map[string]interface{} `json:"cache,omitempty"`
}

// APIStatusResponse 上游連線檢查響應
type APIStatusResponse struct {
	SpoonacularAPI string `json:"spoonacularAPI"`
	StatusCode     int    `json:"statusCode,omitempty"`
	Error          string `json:"error,omitempty"`
	Timestamp      string `json:"timestamp"`
}

// Prober 上游連線探測
type Prober interface {
	Probe(ctx context.Context) (int, error)
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// HealthCheck 健康檢查處理器
func HealthCheck(c *gin.Context) {
	// 獲取配置
	cfg, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Configuration not found",
		})
		return
	}
	config, ok := cfg.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Invalid configuration type",
		})
		return
	}

	keyStatus := "Missing"
	if config.Spoonacular.Configured() {
		keyStatus = "Configured"
	}

	response := HealthResponse{
		Status:             serverStatus,
		Timestamp:          timestamp(),
		APIKeyStatus:       keyStatus,
		UpstreamConfigured: config.Spoonacular.Configured(),
		Version:            config.App.Version,
	}

	// 快取可能未啟用
	if v, ok := c.Get("cache"); ok {
		if store, ok := v.(cache.Store); ok && store != nil {
			response.Cache = store.Stats()
		}
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// APIStatus 以一次實際呼叫檢查上游是否可用，結果一律以 200 回傳
func APIStatus(prober Prober) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, err := prober.Probe(c.Request.Context())
		if err != nil {
			common.LogWarn("Upstream probe failed", zap.Error(err))
			c.JSON(http.StatusOK, APIStatusResponse{
				SpoonacularAPI: "Connection Failed",
				Error:          err.Error(),
				Timestamp:      timestamp(),
			})
			return
		}

		state := "Connected"
		if status < 200 || status > 299 {
			state = "Failed"
		}
		c.JSON(http.StatusOK, APIStatusResponse{
			SpoonacularAPI: state,
			StatusCode:     status,
			Timestamp:      timestamp(),
		})
	}
}

// ReadinessCheck 就緒檢查處理器
func ReadinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// LivenessCheck 存活檢查處理器
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
