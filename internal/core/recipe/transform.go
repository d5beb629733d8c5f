package recipe

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"smarty-chef/internal/core/spoonacular"
)

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	lineBreakPattern = regexp.MustCompile(`[\r\n]+`)
)

// Transform 將上游詳情轉為標準化食譜，缺少的欄位一律套用預設值
func Transform(d *spoonacular.Detail) Recipe {
	if d == nil {
		d = &spoonacular.Detail{}
	}

	return Recipe{
		Title:            stringOr(d.Title, defaultTitle),
		Description:      describe(d.Summary),
		Ingredients:      ingredientLines(d.ExtendedIngredients),
		Instructions:     instructionSteps(d),
		Time:             readyTime(d.ReadyInMinutes),
		DietaryLabels:    dietaryLabels(d),
		Category:         category(d.DishTypes),
		Servings:         servings(d.Servings),
		Image:            stringOr(d.Image, ""),
		SourceURL:        stringOr(d.SourceURL, ""),
		SpoonacularScore: floatOr(d.SpoonacularScore),
		HealthScore:      floatOr(d.HealthScore),
	}
}

func stringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func floatOr(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func isTrue(b *bool) bool {
	return b != nil && *b
}

// describe 去除 HTML 標籤後截斷摘要
func describe(summary *string) string {
	if summary == nil || *summary == "" {
		return defaultDescription
	}

	text := htmlTagPattern.ReplaceAllString(*summary, "")
	if utf8.RuneCountInString(text) > descriptionMaxRunes {
		text = string([]rune(text)[:descriptionMaxRunes])
	}
	return text + descriptionEllipsis
}

// ingredientLines 每個條目對應一行，順序與數量與上游一致
func ingredientLines(items []spoonacular.ExtendedIngredient) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Original)
	}
	return lines
}

// instructionSteps 優先使用第一組結構化步驟，否則以換行切分純文字
func instructionSteps(d *spoonacular.Detail) []string {
	steps := []string{}

	if len(d.AnalyzedInstructions) > 0 {
		for _, s := range d.AnalyzedInstructions[0].Steps {
			if s.Step == "" {
				continue
			}
			steps = append(steps, s.Step)
		}
		return steps
	}

	if d.Instructions == nil {
		return steps
	}
	for _, line := range lineBreakPattern.Split(*d.Instructions, -1) {
		if line == "" {
			continue
		}
		steps = append(steps, line)
	}
	return steps
}

func readyTime(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return ""
	}
	return strconv.Itoa(*minutes) + " minutes"
}

func servings(n *int) string {
	if n == nil || *n <= 0 {
		return ""
	}
	return strconv.Itoa(*n)
}

// dietaryLabels 依固定順序組合飲食標籤、菜式與菜系
func dietaryLabels(d *spoonacular.Detail) []string {
	flags := []struct {
		set   *bool
		label string
	}{
		{d.Vegetarian, "Vegetarian"},
		{d.Vegan, "Vegan"},
		{d.GlutenFree, "Gluten-Free"},
		{d.DairyFree, "Dairy-Free"},
		{d.VeryHealthy, "Healthy"},
	}

	labels := []string{}
	for _, f := range flags {
		if isTrue(f.set) {
			labels = append(labels, f.label)
		}
	}
	for _, tag := range append(append([]string{}, d.DishTypes...), d.Cuisines...) {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		labels = append(labels, tag)
	}
	return labels
}

func category(dishTypes []string) string {
	for _, t := range dishTypes {
		if strings.TrimSpace(t) != "" {
			return t
		}
	}
	return defaultCategory
}
