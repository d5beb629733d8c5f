// Package spoonacular 封裝 Spoonacular 食譜 API 的呼叫。
package spoonacular

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"smarty-chef/internal/core/cache"
	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client Spoonacular 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
	cache  cache.Store
}

// NewClient 創建 Spoonacular 客戶端，store 可為 nil
func NewClient(cfg *config.Config, store cache.Store) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.Spoonacular.BaseURL, "/")).
		SetTimeout(cfg.Spoonacular.Timeout).
		SetHeader("Accept", "application/json").
		SetQueryParam("apiKey", cfg.Spoonacular.APIKey)

	return &Client{
		config: cfg,
		client: client,
		cache:  store,
	}
}

// SearchByIngredients 依食材搜尋食譜
func (c *Client) SearchByIngredients(ctx context.Context, ingredients []string, limit int) ([]Match, error) {
	const endpoint = "/recipes/findByIngredients"
	start := time.Now()

	var matches []Match
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"ingredients":  strings.Join(ingredients, ","),
			"number":       strconv.Itoa(limit),
			"ranking":      "2",
			"ignorePantry": "true",
		}).
		Get(endpoint)
	if err != nil {
		common.LogUpstreamCall(endpoint, 0, time.Since(start), err)
		return nil, common.NewError(common.ErrCodeUpstreamUnavailable,
			"Spoonacular API search failed", http.StatusBadGateway, err)
	}

	if !resp.IsSuccess() {
		err := common.NewError(common.ErrCodeUpstreamUnavailable,
			fmt.Sprintf("Spoonacular API search failed: %d", resp.StatusCode()),
			resp.StatusCode(), nil)
		common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), err)
		return nil, err
	}

	if err := common.ParseJSONBytes(resp.Body(), &matches); err != nil {
		common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), err)
		return nil, common.NewError(common.ErrCodeUpstreamUnavailable,
			"Spoonacular API search returned invalid payload", http.StatusBadGateway, err)
	}

	common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), nil)
	return matches, nil
}

// GetInformation 取得食譜詳情，優先讀取快取
func (c *Client) GetInformation(ctx context.Context, id int) (*Detail, error) {
	endpoint := fmt.Sprintf("/recipes/%d/information", id)
	key := "recipe:" + strconv.Itoa(id)

	if c.cache != nil {
		if data, ok := c.cache.Get(ctx, key); ok {
			var detail Detail
			if err := common.ParseJSONBytes(data, &detail); err == nil {
				return &detail, nil
			}
		}
	}

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("includeNutrition", "false").
		Get(endpoint)
	if err != nil {
		common.LogUpstreamCall(endpoint, 0, time.Since(start), err)
		return nil, fmt.Errorf("failed to fetch recipe %d: %w", id, err)
	}

	if !resp.IsSuccess() {
		err := common.NewError(common.ErrCodeUpstreamUnavailable,
			fmt.Sprintf("Spoonacular API information failed: %d", resp.StatusCode()),
			resp.StatusCode(), nil)
		common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), err)
		return nil, err
	}

	var detail Detail
	if err := common.ParseJSONBytes(resp.Body(), &detail); err != nil {
		common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), err)
		return nil, fmt.Errorf("failed to parse recipe %d: %w", id, err)
	}
	common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), nil)

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, resp.Body()); err != nil {
			common.LogWarn("Failed to cache recipe detail", zap.Int("id", id), zap.Error(err))
		}
	}

	return &detail, nil
}

// Probe 以隨機食譜端點檢查上游連線
func (c *Client) Probe(ctx context.Context) (int, error) {
	const endpoint = "/recipes/random"
	start := time.Now()

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("number", "1").
		Get(endpoint)
	if err != nil {
		common.LogUpstreamCall(endpoint, 0, time.Since(start), err)
		return 0, err
	}

	common.LogUpstreamCall(endpoint, resp.StatusCode(), time.Since(start), nil)
	return resp.StatusCode(), nil
}
