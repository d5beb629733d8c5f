package recipe

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fallback 依食材與飲食偏好產生固定格式的後備食譜，相同輸入必得相同輸出
func Fallback(ingredients []string, preference string) Recipe {
	main := "ingredients"
	if len(ingredients) > 0 {
		main = ingredients[0]
	}
	indian := NormalizePreference(preference) == "indian"

	title := capitalize(main) + " Delight"
	if indian {
		title = "Indian-Style " + title
	}

	featured := ingredients
	if len(featured) > 3 {
		featured = featured[:3]
	}
	description := "A homemade dish featuring " + strings.Join(featured, ", ")
	if pref := strings.ToLower(strings.TrimSpace(preference)); pref != "" {
		description = fmt.Sprintf("A homemade %s dish featuring %s", pref, strings.Join(featured, ", "))
	}

	lines := make([]string, 0, len(ingredients)+4)
	for _, i := range ingredients {
		lines = append(lines, "1-2 portions "+i)
	}
	lines = append(lines,
		"Salt and pepper to taste",
		"2 tbsp cooking oil",
		"Fresh herbs (optional)",
		"Spices as needed",
	)

	cook := "Cook 5-7 minutes."
	if len(ingredients) > 1 {
		cook = fmt.Sprintf("Add %s and cook 5-7 minutes.", strings.Join(ingredients[1:], ", "))
	}
	season := "Add herbs and spices to taste."
	if indian {
		season = "Add turmeric, cumin, garam masala."
	}

	labels := []string{fallbackDefaultDietLabel}
	if strings.TrimSpace(preference) != "" {
		labels = []string{preference}
	}

	return Recipe{
		Title:       title,
		Description: description,
		Ingredients: lines,
		Instructions: []string{
			"Wash and prepare all ingredients.",
			fmt.Sprintf("Heat oil and cook %s until golden.", main),
			cook,
			"Season with salt, pepper and spices.",
			season,
			"Cook until tender and well combined.",
			"Serve hot and enjoy!",
		},
		Time:          fallbackTime,
		DietaryLabels: labels,
		Category:      defaultCategory,
		Servings:      fallbackServings,
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
