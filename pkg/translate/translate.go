package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

// Config configures the Google Translate client.
type Config struct {
	Endpoint       string
	RequestsPerMin int
	HTTPClient     *http.Client
}

type googleImpl struct {
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ ITranslator = (*googleImpl)(nil)

// New creates a rate-limited Google Translate client.
func New(cfg Config) ITranslator {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.RequestsPerMin <= 0 {
		cfg.RequestsPerMin = DefaultRequestsPerMin
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &googleImpl{
		endpoint:   cfg.Endpoint,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(float64(cfg.RequestsPerMin)/60.0), 2),
	}
}

// Translate calls the translate_a/single endpoint and joins the returned
// segments into one string.
func (g *googleImpl) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}
	if sourceLang == "" {
		sourceLang = "auto"
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("translate: rate limiter: %w", err)
	}

	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sourceLang)
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("translate: failed to create request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("translate: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translate: API error %d: %s", resp.StatusCode, string(raw))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("translate: failed to read response: %w", err)
	}

	translated, err := parseSegments(body)
	if err != nil {
		return "", err
	}
	return translated, nil
}

// parseSegments decodes the endpoint's nested-array response:
// [[["<translated>","<original>",...], ...], ...]
func parseSegments(body []byte) (string, error) {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil || len(outer) == 0 {
		return "", fmt.Errorf("translate: unexpected response shape: %v", err)
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(outer[0], &segments); err != nil {
		return "", fmt.Errorf("translate: unexpected segment shape: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}
	return sb.String(), nil
}
