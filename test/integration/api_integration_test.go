package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"menu-ai-be/internal/bootstrap"
	"menu-ai-be/internal/config"
	"menu-ai-be/internal/dto"
	"menu-ai-be/internal/server"
	"menu-ai-be/pkg/fallback"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// envelope mirrors the serverutils response wrapper with the payload left
// raw for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("NATS_URL", "")
	t.Setenv("LOG_FILE_PATH", t.TempDir()+"/test.log")

	cfg := config.Load()
	container := bootstrap.NewContainer(cfg)
	return server.New(cfg, container).GetApp()
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	resp.Body.Close()

	var env envelope
	if len(raw) > 0 {
		json.Unmarshal(raw, &env)
	}
	return resp, env
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestChatSpicyConversation(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{Message: "推荐一下，我想吃辣的"})
	assert.Equal(t, 200, resp.StatusCode)
	assert.True(t, env.Success)

	var chat dto.ChatResponse
	assert.NoError(t, json.Unmarshal(env.Data, &chat))
	assert.NotEmpty(t, chat.SessionId)
	assert.Contains(t, chat.Response, "辣味")
	assert.Contains(t, chat.IntentScores, "recommendation")
	assert.Equal(t, []string{"spicy"}, chat.Entities.TastePreferences)
	assert.Equal(t, 1, chat.InteractionCount)

	// Second message in the same session keeps the accumulated preference.
	resp, env = doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{
		Message:   "好的，再看看",
		SessionId: chat.SessionId,
	})
	assert.Equal(t, 200, resp.StatusCode)

	var second dto.ChatResponse
	assert.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, chat.SessionId, second.SessionId)
	assert.Equal(t, 2, second.InteractionCount)
	assert.Equal(t, 4, second.ConversationLength)
	assert.Equal(t, []string{"spicy"}, second.Preferences.TastePreferences)
}

func TestChatCatchAll(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{Message: "今天天气真好"})
	var chat dto.ChatResponse
	assert.NoError(t, json.Unmarshal(env.Data, &chat))
	assert.Equal(t, fallback.CatchAllReply, chat.Response)
}

func TestChatValidation(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/chat", map[string]string{"message": ""})
	assert.Equal(t, 400, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestSessionLifecycle(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{Message: "我想吃川菜", UserId: "u-9"})
	var chat dto.ChatResponse
	assert.NoError(t, json.Unmarshal(env.Data, &chat))

	// Show
	resp, env := doJSON(t, app, "GET", "/api/session/"+chat.SessionId, nil)
	assert.Equal(t, 200, resp.StatusCode)
	var summary dto.SessionSummaryResponse
	assert.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, "u-9", summary.UserId)
	assert.Equal(t, []string{"sichuan"}, summary.Preferences.CuisinePreference)

	// Delete
	resp, _ = doJSON(t, app, "DELETE", "/api/session/"+chat.SessionId, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/session/"+chat.SessionId, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCleanupSessionsEndpoint(t *testing.T) {
	app := newTestApp(t)

	doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{Message: "你好"})

	resp, env := doJSON(t, app, "POST", "/api/cleanup-sessions?max_age_hours=1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var cleanup dto.CleanupSessionsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &cleanup))
	assert.Equal(t, 0, cleanup.RemovedCount)
	assert.Equal(t, 1, cleanup.MaxAgeHours)

	resp, _ = doJSON(t, app, "POST", "/api/cleanup-sessions?max_age_hours=-2", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestAnalysisEndpoints(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, "POST", "/api/analyze-intent", dto.AnalyzeRequest{Message: "推荐一下，我想吃辣的"})
	var intent dto.AnalyzeIntentResponse
	assert.NoError(t, json.Unmarshal(env.Data, &intent))
	assert.Equal(t, "recommendation", intent.PrimaryIntent)

	_, env = doJSON(t, app, "POST", "/api/analyze-emotion", dto.AnalyzeRequest{Message: "太棒了，好吃"})
	var emotion dto.AnalyzeEmotionResponse
	assert.NoError(t, json.Unmarshal(env.Data, &emotion))
	assert.Equal(t, "positive", emotion.PrimaryEmotion)

	_, env = doJSON(t, app, "POST", "/api/extract-entities", dto.AnalyzeRequest{Message: "我想吃麻辣的川菜"})
	var ents dto.ExtractEntitiesResponse
	assert.NoError(t, json.Unmarshal(env.Data, &ents))
	assert.Equal(t, []string{"sichuan"}, ents.Entities.CuisineTypes)
}

func TestMenuEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "GET", "/api/menu", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var items dto.MenuItemsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.NotEmpty(t, items.Items)

	firstId := items.Items[0].ID
	resp, _ = doJSON(t, app, "GET", "/api/menu/"+firstId, nil)
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/menu/does-not-exist", nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp, env = doJSON(t, app, "GET", "/api/categories", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var categories dto.CategoriesResponse
	assert.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.NotEmpty(t, categories.Categories)

	resp, env = doJSON(t, app, "GET", "/api/popular?limit=3", nil)
	assert.Equal(t, 200, resp.StatusCode)
	var popular dto.MenuItemsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &popular))
	assert.Len(t, popular.Items, 3)

	resp, _ = doJSON(t, app, "GET", "/api/seasonal", nil)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestSearchEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/search", dto.SearchRequest{Query: "鱼"})
	assert.Equal(t, 200, resp.StatusCode)
	var search dto.SearchResponse
	assert.NoError(t, json.Unmarshal(env.Data, &search))
	assert.NotEmpty(t, search.Results)
	assert.Equal(t, len(search.Results), search.TotalCount)
}

func TestRecommendationsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/recommendations", dto.RecommendationRequest{
		UserPreferences:     map[string]interface{}{"taste": "spicy"},
		DietaryRestrictions: []string{"peanut_allergy"},
	})
	assert.Equal(t, 200, resp.StatusCode)
	var rec dto.RecommendationResponse
	assert.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.NotEmpty(t, rec.Recommendations)
	for _, item := range rec.Recommendations {
		assert.NotContains(t, item.Allergens, "花生", item.Name)
	}
}

func TestFeedbackEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, env := doJSON(t, app, "POST", "/api/feedback", dto.FeedbackRequest{
		SessionId: "s-1",
		Rating:    4,
	})
	assert.Equal(t, 200, resp.StatusCode)
	var fb dto.FeedbackResponse
	assert.NoError(t, json.Unmarshal(env.Data, &fb))
	assert.NotEmpty(t, fb.FeedbackId)

	// Rating outside 1-5 fails validation.
	resp, _ = doJSON(t, app, "POST", "/api/feedback", dto.FeedbackRequest{
		SessionId: "s-1",
		Rating:    9,
	})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestConversationMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)

	_, env := doJSON(t, app, "POST", "/api/chat", dto.ChatRequest{Message: "你好"})
	var chat dto.ChatResponse
	assert.NoError(t, json.Unmarshal(env.Data, &chat))

	resp, env := doJSON(t, app, "GET", fmt.Sprintf("/api/conversation-metrics/%s", chat.SessionId), nil)
	assert.Equal(t, 200, resp.StatusCode)
	var metrics dto.ConversationMetricsResponse
	assert.NoError(t, json.Unmarshal(env.Data, &metrics))
	assert.Equal(t, 2, metrics.TotalMessages)

	resp, _ = doJSON(t, app, "GET", "/api/conversation-metrics/missing", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
