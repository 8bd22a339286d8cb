package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/cookmate/backend/internal/types"
)

const (
	// outbound budget towards the AI service
	recommenderRate  = 20
	recommenderBurst = 40

	maxRecommendBody = 4 << 20
)

// RecommenderClient forwards searches to the Python recommendation service and
// normalizes whatever it answers into a RecommendResponse.
type RecommenderClient struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	log         *zap.Logger
}

func NewRecommenderClient(baseURL string, timeout time.Duration, log *zap.Logger) *RecommenderClient {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommenderClient{
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: rate.NewLimiter(rate.Limit(recommenderRate), recommenderBurst),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: otelhttp.NewTransport(&http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			}),
		},
		log: log,
	}
}

// Search calls GET /search with every filter the caller set.
func (c *RecommenderClient) Search(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error) {
	return c.get(ctx, "/search", searchParams(q))
}

func (c *RecommenderClient) ByIngredients(ctx context.Context, q *types.SearchQuery) (*types.RecommendResponse, error) {
	if strings.TrimSpace(q.Ingredients) == "" {
		return nil, invalid("ingredients", "are required")
	}
	return c.get(ctx, "/recommend/by_ingredients", searchParams(q))
}

func (c *RecommenderClient) ByRecipe(ctx context.Context, recipe string, q *types.SearchQuery) (*types.RecommendResponse, error) {
	recipe = strings.TrimSpace(recipe)
	if recipe == "" {
		return nil, invalid("recipe", "is required")
	}
	params := searchParams(q)
	params.Set("recipe", recipe)
	return c.get(ctx, "/recommend/by_recipe", params)
}

// DietaryOptions returns the filter vocabulary the service understands.
func (c *RecommenderClient) DietaryOptions(ctx context.Context) (*types.RecommendResponse, error) {
	return c.get(ctx, "/dietary-options", nil)
}

func (c *RecommenderClient) Health(ctx context.Context) error {
	resp, err := c.get(ctx, "/health", nil)
	if err != nil {
		return err
	}
	if resp.HTTPStatus != http.StatusOK {
		return fmt.Errorf("%w: health returned %d", ErrRecommenderUnavailable, resp.HTTPStatus)
	}
	return nil
}

func (c *RecommenderClient) get(ctx context.Context, path string, params url.Values) (*types.RecommendResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRecommenderUnavailable, err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("recommendation service unreachable", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrRecommenderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRecommendBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRecommenderUnavailable, err)
	}

	c.log.Debug("recommendation call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	return normalize(resp.StatusCode, http.StatusText(resp.StatusCode), body), nil
}

// normalize accepts the service's {status,data,suggestion,message} envelope,
// a bare JSON array, a FastAPI {"detail": ...} error or plain text.
func normalize(code int, statusText string, body []byte) *types.RecommendResponse {
	out := &types.RecommendResponse{
		Status:     "error",
		Data:       json.RawMessage("[]"),
		HTTPStatus: code,
		Message:    statusText,
	}
	if code == http.StatusOK {
		out.Status = "success"
		out.Message = ""
	}

	trimmed := strings.TrimSpace(string(body))
	switch {
	case trimmed == "":
		return out
	case strings.HasPrefix(trimmed, "["):
		out.Data = json.RawMessage(trimmed)
		return out
	case !strings.HasPrefix(trimmed, "{"):
		if code != http.StatusOK {
			out.Message = trimmed
		}
		return out
	}

	var envelope struct {
		Status     *string         `json:"status"`
		Data       json.RawMessage `json:"data"`
		Suggestion interface{}     `json:"suggestion"`
		Message    *string         `json:"message"`
		Detail     interface{}     `json:"detail"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return out
	}

	if envelope.Status == nil && envelope.Data == nil && envelope.Detail == nil && envelope.Message == nil {
		// a plain object such as /dietary-options or /recipe/{id}
		out.Data = json.RawMessage(trimmed)
		return out
	}
	if envelope.Status != nil {
		out.Status = *envelope.Status
	}
	if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
		out.Data = envelope.Data
	}
	out.Suggestion = envelope.Suggestion
	if envelope.Message != nil {
		out.Message = *envelope.Message
	}
	if detail, ok := envelope.Detail.(string); ok && detail != "" {
		out.Message = detail
	}
	return out
}

func searchParams(q *types.SearchQuery) url.Values {
	params := url.Values{}
	if q == nil {
		return params
	}
	if q.UserID > 0 {
		params.Set("user_id", strconv.FormatInt(q.UserID, 10))
	}
	if s := strings.TrimSpace(q.Ingredients); s != "" {
		params.Set("ingredients", s)
	}
	for _, v := range q.Dietary {
		params.Add("dietary", v)
	}
	for _, v := range q.Allergies {
		params.Add("allergies", v)
	}
	for _, v := range q.Cuisine {
		params.Add("cuisine", v)
	}
	if q.MaxCalories != nil {
		params.Set("max_calories", strconv.Itoa(*q.MaxCalories))
	}
	if q.MaxCookTime != nil {
		params.Set("max_cook_time", strconv.Itoa(*q.MaxCookTime))
	}
	return params
}

// IsUnavailable reports whether err means the recommendation service could not be reached.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrRecommenderUnavailable)
}
