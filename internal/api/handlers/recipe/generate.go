// Package recipe 提供食譜生成的 HTTP 處理程序。
package recipe

import (
	"context"
	"errors"
	"net/http"

	"smarty-chef/internal/core/catalog"
	recipeService "smarty-chef/internal/core/recipe"
	"smarty-chef/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Generator 食譜生成流程
type Generator interface {
	Generate(ctx context.Context, req recipeService.Request) (*recipeService.Result, error)
}

// Handler 食譜處理程序
type Handler struct {
	generator Generator
}

// NewHandler 創建新的食譜處理程序
func NewHandler(generator Generator) *Handler {
	return &Handler{generator: generator}
}

// HandleGenerate 依食材生成食譜，只有輸入錯誤回傳 4xx
func (h *Handler) HandleGenerate(c *gin.Context) {
	requestID := requestid.Get(c)
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}

	var req recipeService.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			common.LogWarn("Request body too large",
				zap.Int64("limit", tooLarge.Limit),
				zap.String("request_id", requestID),
			)
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":   "Request body too large",
				"code":    common.ErrCodeRequestTooLarge,
				"recipes": []recipeService.Recipe{},
			})
			return
		}

		common.LogWarn("Invalid request format",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   common.ErrInvalidRequest.Message,
			"recipes": []recipeService.Recipe{},
		})
		return
	}

	// 自由輸入的食材不一定在目錄中
	known := 0
	for _, i := range req.Ingredients {
		if catalog.Contains(i) {
			known++
		}
	}

	common.LogInfo("Generating recipes",
		zap.String("request_id", requestID),
		zap.Strings("ingredients", req.Ingredients),
		zap.Int("catalog_known", known),
		zap.String("dietary_preference", req.DietaryPreference),
		zap.String("allergies", req.Allergies),
	)

	result, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		if common.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   err.Error(),
				"recipes": []recipeService.Recipe{},
			})
			return
		}

		common.LogError("Recipe generation failed",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   common.ErrInternalError.Message,
			"recipes": []recipeService.Recipe{},
		})
		return
	}

	common.LogInfo("Recipes generated",
		zap.String("request_id", requestID),
		zap.String("api_source", result.APISource),
		zap.Int("recipes", len(result.Recipes)),
		zap.String("message", result.Message),
	)

	c.JSON(http.StatusOK, result)
}
