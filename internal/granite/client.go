// Package granite calls a Granite model through the Hugging Face Inference API.
package granite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"finchat/internal/config"
)

const (
	defaultBaseURL = "https://api-inference.huggingface.co/models"
	requestTimeout = 60 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	// MsgTokenNotSet is returned as answer text when no API token is configured.
	MsgTokenNotSet = "ERROR: HUGGINGFACE API token not set."

	exceptionPrefix = "Exception calling Hugging Face Inference API: "
)

// Defaults for generation parameters.
const (
	DefaultMaxNewTokens = 300
	DefaultTemperature  = 0.2
)

// Options configures a Client. Zero values fall back to defaults.
type Options struct {
	Token        string
	Model        string
	BaseURL      string // override for tests
	MaxNewTokens int
	Temperature  float64
}

// Client sends prompts to the hosted inference endpoint.
type Client struct {
	token        string
	model        string
	baseURL      string
	maxNewTokens int
	temperature  float64
	http         *http.Client
}

// NewClient creates a client with the given options.
func NewClient(opts Options) *Client {
	if opts.Model == "" {
		opts.Model = config.DefaultModel
	}
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MaxNewTokens <= 0 {
		opts.MaxNewTokens = DefaultMaxNewTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = DefaultTemperature
	}
	return &Client{
		token:        opts.Token,
		model:        opts.Model,
		baseURL:      opts.BaseURL,
		maxNewTokens: opts.MaxNewTokens,
		temperature:  opts.Temperature,
		http:         &http.Client{},
	}
}

// Ask sends the prompt and returns the generated text. Every failure is
// absorbed into the returned string: a missing token reports immediately
// without any network call, and network, status, or decode problems come
// back as descriptive text. Ask never panics and never returns an error.
func (c *Client) Ask(ctx context.Context, prompt string) string {
	if c.token == "" {
		return MsgTokenNotSet
	}
	text, err := c.generate(ctx, prompt)
	if err != nil {
		return exceptionPrefix + err.Error()
	}
	return text
}

// inferenceRequest is the JSON body for the inference endpoint.
type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

type inferenceOptions struct {
	UseCache bool `json:"use_cache"`
}

// generatedResult is one result object from the inference endpoint. The
// pointer distinguishes an absent generated_text field from an empty one.
type generatedResult struct {
	GeneratedText *string `json:"generated_text"`
}

// generate performs the single synchronous request. No retries.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	payload, err := json.Marshal(inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens: c.maxNewTokens,
			Temperature:  c.temperature,
		},
		Options: inferenceOptions{UseCache: false},
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	return extractGeneratedText(body), nil
}

// extractGeneratedText handles the two documented response shapes: an array
// of result objects or a single result object. Anything else comes back as
// the raw body so no data is silently dropped.
func extractGeneratedText(body []byte) string {
	var list []generatedResult
	if err := json.Unmarshal(body, &list); err == nil {
		if len(list) > 0 && list[0].GeneratedText != nil {
			return *list[0].GeneratedText
		}
		return string(body)
	}

	var single generatedResult
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != nil {
		return *single.GeneratedText
	}

	return string(body)
}
