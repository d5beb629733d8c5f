package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smarty-chef/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T, upstreamURL string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Smarty-Chef</h1>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ok')"), 0644))

	return &config.Config{
		App:    config.AppConfig{Version: "2.0.0", Debug: true},
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Spoonacular: config.SpoonacularConfig{
			APIKey:      "test-key",
			BaseURL:     upstreamURL,
			Timeout:     time.Second,
			SearchLimit: 8,
			DetailLimit: 5,
		},
		StaticDir:      dir,
		RequestTimeout: 5 * time.Second,
	}
}

// fakeSpoonacular 模擬上游：search 回傳兩筆，詳情依 id 回傳
func fakeSpoonacular(t *testing.T, search string, details map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/recipes/findByIngredients":
			if search == "" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			_, _ = w.Write([]byte(search))
		case r.URL.Path == "/recipes/random":
			_, _ = w.Write([]byte(`{"recipes":[]}`))
		case strings.HasSuffix(r.URL.Path, "/information"):
			id := strings.Split(r.URL.Path, "/")[2]
			body, ok := details[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte(body))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func doRequest(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type generateResponse struct {
	Recipes []struct {
		Title         string   `json:"title"`
		DietaryLabels []string `json:"dietary_labels"`
		Ingredients   []string `json:"ingredients"`
	} `json:"recipes"`
	APISource      string `json:"apiSource"`
	TotalFound     *int   `json:"totalFound"`
	AfterFiltering *int   `json:"afterFiltering"`
	Message        string `json:"message"`
	Error          string `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) generateResponse {
	t.Helper()
	var resp generateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGenerateRecipeEmptyIngredients(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	for _, body := range []string{`{"ingredients":[]}`, `{}`, `{"ingredients":["  "]}`} {
		w := doRequest(router, http.MethodPost, "/generate-recipe", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
		assert.JSONEq(t, `[]`, string(raw["recipes"]))
		assert.NotEqual(t, `""`, string(raw["error"]))
	}
}

func TestGenerateRecipeMalformedBody(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid request format","recipes":[]}`, w.Body.String())
}

func TestGenerateRecipeUpstreamSuccess(t *testing.T) {
	upstream := fakeSpoonacular(t,
		`[{"id":1,"title":"Chicken Rice"},{"id":2,"title":"Rice Soup"},{"id":3,"title":"Broken"}]`,
		map[string]string{
			"1": `{"id":1,"title":"Chicken Rice","extendedIngredients":[{"original":"1 cup rice"}]}`,
			"2": `{"id":2,"title":"Rice Soup"}`,
		},
	)
	router := SetupRouter(testConfig(t, upstream.URL), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["chicken","rice"],"dietaryPreference":"","allergies":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Spoonacular", resp.APISource)
	require.Len(t, resp.Recipes, 2)
	assert.Equal(t, "Chicken Rice", resp.Recipes[0].Title)
	require.NotNil(t, resp.TotalFound)
	require.NotNil(t, resp.AfterFiltering)
	assert.Equal(t, 3, *resp.TotalFound)
	assert.Equal(t, 2, *resp.AfterFiltering)
	assert.GreaterOrEqual(t, *resp.TotalFound, *resp.AfterFiltering)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestGenerateRecipeSearchFailure(t *testing.T) {
	upstream := fakeSpoonacular(t, "", nil)
	router := SetupRouter(testConfig(t, upstream.URL), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["chicken"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Fallback", resp.APISource)
	assert.Len(t, resp.Recipes, 1)
	assert.Equal(t, "Spoonacular API search failed: 500", resp.Error)
	assert.Equal(t, "API unavailable, showing fallback recipe", resp.Message)
}

func TestGenerateRecipeUpstreamUnreachable(t *testing.T) {
	upstream := fakeSpoonacular(t, "[]", nil)
	url := upstream.URL
	upstream.Close()

	router := SetupRouter(testConfig(t, url), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["chicken"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Fallback", resp.APISource)
	assert.Len(t, resp.Recipes, 1)
	assert.NotEmpty(t, resp.Error)
}

func TestGenerateRecipeTofuVeganSoy(t *testing.T) {
	upstream := fakeSpoonacular(t,
		`[{"id":7,"title":"Tofu Stir Fry"}]`,
		map[string]string{
			"7": `{"id":7,"title":"Tofu Stir Fry","vegan":true,"extendedIngredients":[{"original":"firm tofu"},{"original":"Soy sauce"}]}`,
		},
	)
	router := SetupRouter(testConfig(t, upstream.URL), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["tofu"],"dietaryPreference":"vegan","allergies":"soy"}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	require.Len(t, resp.Recipes, 1)
	assert.Equal(t, []string{"vegan"}, resp.Recipes[0].DietaryLabels)
	assert.Equal(t, "Tofu Delight", resp.Recipes[0].Title)
	assert.Equal(t, "Fallback", resp.APISource)
}

func TestGenerateRecipeNoMatches(t *testing.T) {
	upstream := fakeSpoonacular(t, "[]", nil)
	router := SetupRouter(testConfig(t, upstream.URL), nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["chicken"]}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode(t, w)
	assert.Equal(t, "Fallback", resp.APISource)
	assert.Equal(t, "No matches found", resp.Message)
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Recipes, 1)
}

func TestGenerateRecipeBodyTooLarge(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Server.MaxBodyBytes = 16
	router := SetupRouter(cfg, nil)

	w := doRequest(router, http.MethodPost, "/generate-recipe", `{"ingredients":["chicken","rice","beans"]}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHealth(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Smarty-Chef.PCS Server Running!", resp["status"])
	assert.Equal(t, "Configured", resp["apiKeyStatus"])
	assert.Equal(t, true, resp["upstreamConfigured"])
	assert.Equal(t, "2.0.0", resp["version"])
	_, err := time.Parse(time.RFC3339, resp["timestamp"].(string))
	assert.NoError(t, err)
	assert.NotContains(t, resp, "cache")
}

func TestHealthMissingKey(t *testing.T) {
	cfg := testConfig(t, "http://127.0.0.1:1")
	cfg.Spoonacular.APIKey = ""
	router := SetupRouter(cfg, nil)

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"apiKeyStatus":"Missing"`)
	assert.Contains(t, w.Body.String(), `"upstreamConfigured":false`)
}

func TestAPIStatusConnected(t *testing.T) {
	upstream := fakeSpoonacular(t, "[]", nil)
	router := SetupRouter(testConfig(t, upstream.URL), nil)

	w := doRequest(router, http.MethodGet, "/api-status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Connected", resp["spoonacularAPI"])
	assert.Equal(t, float64(200), resp["statusCode"])
}

func TestAPIStatusConnectionFailed(t *testing.T) {
	upstream := fakeSpoonacular(t, "[]", nil)
	url := upstream.URL
	upstream.Close()
	router := SetupRouter(testConfig(t, url), nil)

	w := doRequest(router, http.MethodGet, "/api-status", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Connection Failed", resp["spoonacularAPI"])
	assert.NotEmpty(t, resp["error"])
}

func TestIngredients(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	w := doRequest(router, http.MethodGet, "/ingredients?search=paneer", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Categories []struct {
			Key   string   `json:"key"`
			Name  string   `json:"name"`
			Count int      `json:"count"`
			Items []string `json:"items"`
		} `json:"categories"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Categories)
	assert.Greater(t, resp.Total, 0)
	for _, c := range resp.Categories {
		assert.Equal(t, len(c.Items), c.Count)
		for _, item := range c.Items {
			assert.Contains(t, strings.ToLower(item), "paneer")
		}
	}
}

func TestStaticFiles(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	w := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Smarty-Chef")

	w = doRequest(router, http.MethodGet, "/app.js", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestNotFound(t *testing.T) {
	router := SetupRouter(testConfig(t, "http://127.0.0.1:1"), nil)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/../../etc/passwd"},
		{http.MethodPost, "/health"},
		{http.MethodDelete, "/generate-recipe"},
	} {
		w := doRequest(router, tc.method, tc.path, "")
		assert.Equal(t, http.StatusNotFound, w.Code, tc.path)

		var resp struct {
			Error              string   `json:"error"`
			AvailableEndpoints []string `json:"availableEndpoints"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Not found", resp.Error)
		assert.Contains(t, resp.AvailableEndpoints, "POST /generate-recipe")
	}
}
