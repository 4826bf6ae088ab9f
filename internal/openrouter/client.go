package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"nanosite/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = errors.New("openrouter: api key is required")

const systemInstruction = "You are an image generation model. Always return at least one generated image encoded as base64 (data:image/png;base64,...) and avoid textual descriptions."

// StatusError reports a non-success upstream response. The raw body is kept
// verbatim so the HTTP layer can surface it for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openrouter: status %d: %s", e.StatusCode, truncate(e.Body))
}

// Options configures the OpenRouter client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	SiteURL        string
	SiteName       string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls to the OpenRouter chat-completions API.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	siteURL    string
	siteName   string
	httpClient *http.Client
	logger     *infra.Logger
}

// NewClient constructs a client with sane defaults and injected dependencies.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			// image generation is slow compared to text completions
			timeout = 120 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "google/gemini-2.5-flash-image"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		siteURL:    strings.TrimSpace(opts.SiteURL),
		siteName:   strings.TrimSpace(opts.SiteName),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// EditImage performs exactly one chat-completions call carrying the prompt and
// the reference image, and returns the raw response body. The body is not
// decoded here: the response shape is unstable across models, so extraction is
// the caller's concern.
func (c *Client) EditImage(ctx context.Context, prompt, imageDataURL string) ([]byte, error) {
	if !c.HasCredentials() {
		return nil, ErrMissingAPIKey
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, errors.New("openrouter: prompt is required")
	}

	content := []ContentPart{
		{Type: PartTypeInputText, Text: prompt},
		{Type: PartTypeText, Text: "Generate a new image based on the provided reference. Follow the user's instructions closely: " + prompt},
		{Type: PartTypeImageURL, ImageURL: &ImageURL{URL: imageDataURL}},
	}
	if b64 := base64Payload(imageDataURL); b64 != "" {
		content = append(content, ContentPart{Type: PartTypeInputImage, ImageBase64: b64})
	}

	payload := chatRequest{
		Model: c.model,
		Messages: []Message{
			{
				Role:    RoleSystem,
				Content: []ContentPart{{Type: PartTypeText, Text: systemInstruction}},
			},
			{
				Role:    RoleUser,
				Content: content,
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openrouter: encode request: %w", err)
	}
	endpoint := c.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openrouter: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.siteURL != "" {
		httpReq.Header.Set("HTTP-Referer", c.siteURL)
	}
	if c.siteName != "" {
		httpReq.Header.Set("X-Title", c.siteName)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openrouter: read response: %w", err)
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("status", resp.StatusCode).
		Msg("openrouter: upstream response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}

// base64Payload extracts the base64 section of a data URL, or "" when the
// value carries no payload separator.
func base64Payload(dataURL string) string {
	if idx := strings.Index(dataURL, ","); idx >= 0 {
		return dataURL[idx+1:]
	}
	return ""
}

func truncate(value string) string {
	const max = 160
	if len(value) <= max {
		return value
	}
	return fmt.Sprintf("%s...(%d chars)", value[:max], len(value))
}
