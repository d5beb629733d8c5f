package recipe

import (
	"strings"
)

// NormalizePreference 轉小寫並將連字號替換為空白
func NormalizePreference(pref string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(pref)), "-", " ")
}

// ParseAllergies 以逗號切分過敏原，去除空白與空項目
func ParseAllergies(allergies string) []string {
	terms := []string{}
	for _, term := range strings.Split(allergies, ",") {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// FilterByDiet 保留任一標籤（轉小寫後）包含正規化偏好字串的食譜，偏好為空時原樣回傳
func FilterByDiet(recipes []Recipe, preference string) []Recipe {
	pref := NormalizePreference(preference)
	if pref == "" {
		return recipes
	}

	kept := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		for _, label := range r.DietaryLabels {
			if strings.Contains(strings.ToLower(label), pref) {
				kept = append(kept, r)
				break
			}
		}
	}
	return kept
}

// FilterByAllergies 移除標題或食材含有任一過敏原的食譜
func FilterByAllergies(recipes []Recipe, allergies string) []Recipe {
	terms := ParseAllergies(allergies)
	if len(terms) == 0 {
		return recipes
	}

	kept := make([]Recipe, 0, len(recipes))
	for _, r := range recipes {
		text := strings.ToLower(r.Title + " " + strings.Join(r.Ingredients, " "))
		if !containsAny(text, terms) {
			kept = append(kept, r)
		}
	}
	return kept
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
