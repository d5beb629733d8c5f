package api

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"smarty-chef/internal/api/handlers/health"
	"smarty-chef/internal/api/handlers/ingredient"
	recipeHandler "smarty-chef/internal/api/handlers/recipe"
	"smarty-chef/internal/api/middleware"
	"smarty-chef/internal/core/cache"
	"smarty-chef/internal/core/catalog"
	recipeService "smarty-chef/internal/core/recipe"
	"smarty-chef/internal/core/spoonacular"
	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// availableEndpoints 404 響應中列出的路由
var availableEndpoints = []string{
	"GET /",
	"POST /generate-recipe",
	"GET /health",
	"GET /api-status",
	"GET /ingredients",
}

// SetupRouter 設置路由，store 可為 nil
func SetupRouter(cfg *config.Config, store cache.Store) *gin.Engine {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
		MaxAge:          12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	// 注入共用物件
	router.Use(func(c *gin.Context) {
		c.Set("config", cfg)
		if store != nil {
			c.Set("cache", store)
		}
		c.Next()
	})

	client := spoonacular.NewClient(cfg, store)
	recipeSvc := recipeService.NewService(cfg, client)
	recipes := recipeHandler.NewHandler(recipeSvc)

	router.POST("/generate-recipe", recipes.HandleGenerate)
	router.GET("/ingredients", ingredient.HandleList)

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/api-status", health.APIStatus(client))
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	router.GET("/", func(c *gin.Context) {
		serveStatic(c, cfg.StaticDir, "index.html")
	})
	router.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			serveStatic(c, cfg.StaticDir, c.Request.URL.Path)
			return
		}
		notFound(c)
	})

	common.LogInfo("Router setup completed",
		zap.Bool("cache_enabled", store != nil),
		zap.Bool("upstream_configured", cfg.Spoonacular.Configured()),
		zap.Duration("request_timeout", cfg.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
		zap.Int("catalog_size", catalog.Size()),
	)

	return router
}

// serveStatic 從靜態目錄提供檔案，不存在時回傳 404 JSON
func serveStatic(c *gin.Context, root, name string) {
	// Clean 後的絕對路徑不會跳出 root
	file := filepath.Join(root, filepath.FromSlash(path.Clean("/"+name)))
	info, err := os.Stat(file)
	if err != nil || info.IsDir() {
		notFound(c)
		return
	}
	c.File(file)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":              common.ErrNotFound.Message,
		"availableEndpoints": availableEndpoints,
	})
}
