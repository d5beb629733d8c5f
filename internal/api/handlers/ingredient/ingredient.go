// Package ingredient 提供食材目錄查詢的 HTTP 處理程序。
package ingredient

import (
	"net/http"
	"strings"

	"smarty-chef/internal/core/catalog"

	"github.com/gin-gonic/gin"
)

// ListResponse 食材目錄響應
type ListResponse struct {
	Categories []catalog.CategoryMatch `json:"categories"`
	Total      int                     `json:"total"`
}

// HandleList 列出食材目錄，支援 search 參數過濾
func HandleList(c *gin.Context) {
	matches := catalog.Search(strings.TrimSpace(c.Query("search")))

	total := 0
	for _, m := range matches {
		total += m.Count
	}

	c.JSON(http.StatusOK, ListResponse{
		Categories: matches,
		Total:      total,
	})
}
