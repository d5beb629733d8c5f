// Package catalog 提供固定的食材目錄，啟動後唯讀。
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category 食材分類
type Category struct {
	Key   string   `json:"key"`
	Items []string `json:"items"`
}

// CategoryMatch 搜尋結果中的單一分類
type CategoryMatch struct {
	Key   string   `json:"key"`
	Name  string   `json:"name"`
	Count int      `json:"count"`
	Items []string `json:"items"`
}

var index = buildIndex()

func buildIndex() map[string]struct{} {
	idx := make(map[string]struct{})
	for _, c := range catalogData {
		for _, item := range c.Items {
			idx[strings.ToLower(item)] = struct{}{}
		}
	}
	return idx
}

// Categories 回傳所有分類的副本
func Categories() []Category {
	out := make([]Category, len(catalogData))
	for i, c := range catalogData {
		items := make([]string, len(c.Items))
		copy(items, c.Items)
		out[i] = Category{Key: c.Key, Items: items}
	}
	return out
}

// Search 以不分大小寫的子字串過濾食材，沒有結果的分類不回傳
func Search(filter string) []CategoryMatch {
	needle := strings.ToLower(strings.TrimSpace(filter))
	matches := make([]CategoryMatch, 0, len(catalogData))
	for _, c := range catalogData {
		var items []string
		for _, item := range c.Items {
			if strings.Contains(strings.ToLower(item), needle) {
				items = append(items, item)
			}
		}
		if len(items) == 0 {
			continue
		}
		matches = append(matches, CategoryMatch{
			Key:   c.Key,
			Name:  FormatCategoryName(c.Key),
			Count: len(items),
			Items: items,
		})
	}
	return matches
}

// FormatCategoryName 將 "indian_dairy" 轉為 "Indian Dairy"
func FormatCategoryName(key string) string {
	// Caser 不可並行共用
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

// Contains 檢查食材是否在目錄中（不分大小寫）
func Contains(name string) bool {
	_, ok := index[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// Size 目錄中的食材總數
func Size() int {
	n := 0
	for _, c := range catalogData {
		n += len(c.Items)
	}
	return n
}
