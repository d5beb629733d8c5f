// Package recipe 實作食材搜尋、詳情轉換、過濾與後備食譜的流程。
package recipe

import (
	"context"

	"smarty-chef/internal/core/spoonacular"
	"smarty-chef/internal/infrastructure/config"
	"smarty-chef/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Upstream 上游食譜來源
type Upstream interface {
	SearchByIngredients(ctx context.Context, ingredients []string, limit int) ([]spoonacular.Match, error)
	GetInformation(ctx context.Context, id int) (*spoonacular.Detail, error)
}

// Service 食譜服務
type Service struct {
	upstream    Upstream
	searchLimit int
	detailLimit int
}

// NewService 創建新的食譜服務
func NewService(cfg *config.Config, upstream Upstream) *Service {
	return &Service{
		upstream:    upstream,
		searchLimit: cfg.Spoonacular.SearchLimit,
		detailLimit: cfg.Spoonacular.DetailLimit,
	}
}

// Generate 執行食譜生成流程；只有輸入驗證失敗時回傳錯誤
func (s *Service) Generate(ctx context.Context, req Request) (*Result, error) {
	ingredients := common.CompactStrings(req.Ingredients)
	if len(ingredients) == 0 {
		return nil, common.NewValidationError(errMessageNoIngredients)
	}
	pref := req.DietaryPreference

	matches, err := s.upstream.SearchByIngredients(ctx, ingredients, s.searchLimit)
	if err != nil {
		common.LogWarn("Recipe search failed, using fallback",
			zap.Strings("ingredients", ingredients),
			zap.Error(err),
		)
		return &Result{
			Recipes:   []Recipe{Fallback(ingredients, pref)},
			APISource: SourceFallback,
			Error:     err.Error(),
			Message:   MessageUpstreamFailed,
		}, nil
	}

	total := len(matches)
	if total == 0 {
		return emptyFallback(ingredients, pref, MessageNoMatches, &total), nil
	}

	recipes := s.fetchDetails(ctx, matches)
	if len(recipes) == 0 {
		return emptyFallback(ingredients, pref, MessageNoDetails, &total), nil
	}

	recipes = FilterByDiet(recipes, pref)
	afterDiet := len(recipes)
	recipes = FilterByAllergies(recipes, req.Allergies)

	common.LogDebug("Recipes filtered",
		zap.Int("total_found", total),
		zap.Int("after_diet", afterDiet),
		zap.Int("after_allergies", len(recipes)),
	)

	if len(recipes) == 0 {
		return emptyFallback(ingredients, pref, MessageFilteredOut, &total), nil
	}

	after := len(recipes)
	return &Result{
		Recipes:        recipes,
		APISource:      SourceSpoonacular,
		TotalFound:     &total,
		AfterFiltering: &after,
	}, nil
}

// fetchDetails 並行取得前幾筆詳情，單筆失敗只略過該筆，保留搜尋順序
func (s *Service) fetchDetails(ctx context.Context, matches []spoonacular.Match) []Recipe {
	if len(matches) > s.detailLimit {
		matches = matches[:s.detailLimit]
	}

	results := make([]*Recipe, len(matches))
	var g errgroup.Group
	for i, m := range matches {
		i, m := i, m
		g.Go(func() error {
			detail, err := s.upstream.GetInformation(ctx, m.ID)
			if err != nil {
				common.LogDebug("Recipe detail unavailable",
					zap.Int("id", m.ID),
					zap.Error(err),
				)
				return nil
			}
			r := Transform(detail)
			results[i] = &r
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]Recipe, 0, len(results))
	for _, r := range results {
		if r != nil {
			recipes = append(recipes, *r)
		}
	}
	return recipes
}

func emptyFallback(ingredients []string, pref, message string, total *int) *Result {
	zero := 0
	res := &Result{
		Recipes:    []Recipe{Fallback(ingredients, pref)},
		APISource:  SourceFallback,
		Message:    message,
		TotalFound: total,
	}
	if total != nil {
		res.AfterFiltering = &zero
	}
	return res
}
