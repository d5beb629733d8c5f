package recipe

// 回應來源標記
const (
	SourceSpoonacular = "Spoonacular"
	SourceFallback    = "Fallback"
)

// 後備食譜附帶的訊息
const (
	MessageNoMatches         = "No matches found"
	MessageNoDetails         = "No recipe details available"
	MessageFilteredOut       = "No recipes matched your dietary preferences or allergies"
	MessageUpstreamFailed    = "API unavailable, showing fallback recipe"
	errMessageNoIngredients  = "Please provide at least one ingredient"
	defaultDescription       = "A delicious recipe made with your selected ingredients."
	defaultTitle             = "Delicious Recipe"
	defaultCategory          = "Main Course"
	descriptionMaxRunes      = 200
	descriptionEllipsis      = "..."
	fallbackTime             = "25-30 minutes"
	fallbackServings         = "2-4"
	fallbackDefaultDietLabel = "Homemade"
)

// Recipe 標準化後的食譜
type Recipe struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Ingredients      []string `json:"ingredients"`
	Instructions     []string `json:"instructions"`
	Time             string   `json:"time"`
	DietaryLabels    []string `json:"dietary_labels"`
	Category         string   `json:"category"`
	Servings         string   `json:"servings"`
	Image            string   `json:"image"`
	SourceURL        string   `json:"sourceUrl"`
	SpoonacularScore float64  `json:"spoonacularScore"`
	HealthScore      float64  `json:"healthScore"`
}

// Request 食譜生成請求
type Request struct {
	Ingredients       []string `json:"ingredients"`
	DietaryPreference string   `json:"dietaryPreference"`
	Allergies         string   `json:"allergies"`
}

// Result 食譜生成結果
type Result struct {
	Recipes        []Recipe `json:"recipes"`
	APISource      string   `json:"apiSource"`
	TotalFound     *int     `json:"totalFound,omitempty"`
	AfterFiltering *int     `json:"afterFiltering,omitempty"`
	Message        string   `json:"message,omitempty"`
	Error          string   `json:"error,omitempty"`
}
