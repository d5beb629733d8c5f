package spoonacular

// Match 食材搜尋結果
type Match struct {
	ID                    int    `json:"id"`
	Title                 string `json:"title"`
	Image                 string `json:"image"`
	UsedIngredientCount   int    `json:"usedIngredientCount"`
	MissedIngredientCount int    `json:"missedIngredientCount"`
	Likes                 int    `json:"likes"`
}

// Detail 食譜詳情，上游可能省略任何欄位
type Detail struct {
	ID                   int                  `json:"id"`
	Title                *string              `json:"title,omitempty"`
	Summary              *string              `json:"summary,omitempty"`
	Instructions         *string              `json:"instructions,omitempty"`
	ReadyInMinutes       *int                 `json:"readyInMinutes,omitempty"`
	Servings             *int                 `json:"servings,omitempty"`
	Vegetarian           *bool                `json:"vegetarian,omitempty"`
	Vegan                *bool                `json:"vegan,omitempty"`
	GlutenFree           *bool                `json:"glutenFree,omitempty"`
	DairyFree            *bool                `json:"dairyFree,omitempty"`
	VeryHealthy          *bool                `json:"veryHealthy,omitempty"`
	DishTypes            []string             `json:"dishTypes,omitempty"`
	Cuisines             []string             `json:"cuisines,omitempty"`
	ExtendedIngredients  []ExtendedIngredient `json:"extendedIngredients,omitempty"`
	AnalyzedInstructions []InstructionGroup   `json:"analyzedInstructions,omitempty"`
	Image                *string              `json:"image,omitempty"`
	SourceURL            *string              `json:"sourceUrl,omitempty"`
	SpoonacularScore     *float64             `json:"spoonacularScore,omitempty"`
	HealthScore          *float64             `json:"healthScore,omitempty"`
}

// ExtendedIngredient 食材條目
type ExtendedIngredient struct {
	Original string `json:"original"`
}

// InstructionGroup 結構化步驟
type InstructionGroup struct {
	Name  string            `json:"name"`
	Steps []InstructionStep `json:"steps"`
}

// InstructionStep 單一步驟
type InstructionStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}
