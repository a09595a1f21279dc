// Package watson talks to a Watson Assistant instance over its v2 session API.
package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	apiVersion     = "2024-10-01"
	requestTimeout = 20 * time.Second
	deleteTimeout  = 5 * time.Second
	maxBodySize    = 1 << 20 // 1 MB

	// MsgNotConfigured is returned as answer text when any of the three
	// required settings is missing.
	MsgNotConfigured = "Watson not configured."

	exceptionPrefix = "Exception calling Watson Assistant: "
)

// Options configures a Client.
type Options struct {
	APIKey      string
	URL         string
	AssistantID string
}

// Client runs the create-session / send-message / delete-session protocol.
// Each Ask opens a fresh session and tears it down afterwards; nothing is
// shared between calls.
type Client struct {
	apiKey      string
	baseURL     string
	assistantID string
	http        *http.Client
}

// NewClient creates a client with the given options.
func NewClient(opts Options) *Client {
	return &Client{
		apiKey:      opts.APIKey,
		baseURL:     strings.TrimRight(opts.URL, "/"),
		assistantID: opts.AssistantID,
		http:        &http.Client{},
	}
}

// Configured reports whether all three settings are present.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.baseURL != "" && c.assistantID != ""
}

// Ask sends the message through a one-shot session and returns the reply
// text. Missing configuration reports immediately without any network call,
// and every other failure is absorbed into a descriptive string. Ask never
// panics and never returns an error.
func (c *Client) Ask(ctx context.Context, message string) string {
	if !c.Configured() {
		return MsgNotConfigured
	}
	text, err := c.converse(ctx, message)
	if err != nil {
		return exceptionPrefix + err.Error()
	}
	return text
}

type sessionResponse struct {
	SessionID string `json:"session_id"`
}

type messageRequest struct {
	Input messageInput `json:"input"`
}

type messageInput struct {
	MessageType string `json:"message_type"`
	Text        string `json:"text"`
}

type messageResponse struct {
	Output struct {
		Generic []genericEntry `json:"generic"`
	} `json:"output"`
}

type genericEntry struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

// converse walks the session protocol: create, message, best-effort delete.
// A create failure aborts before any message is sent.
func (c *Client) converse(ctx context.Context, message string) (string, error) {
	sessionID, err := c.createSession(ctx)
	if err != nil {
		return "", err
	}

	body, err := c.sendMessage(ctx, sessionID, message)

	// Teardown is best-effort; its result is not part of the contract.
	c.deleteSession(ctx, sessionID)

	if err != nil {
		return "", err
	}
	return extractText(body), nil
}

// createSession opens a server-side conversation context.
func (c *Client) createSession(ctx context.Context) (string, error) {
	body, err := c.post(ctx, c.sessionsURL(), nil)
	if err != nil {
		return "", fmt.Errorf("creating session: %w", err)
	}

	var sess sessionResponse
	if err := json.Unmarshal(body, &sess); err != nil {
		return "", fmt.Errorf("parsing session response: %w", err)
	}
	if sess.SessionID == "" {
		return "", fmt.Errorf("no session_id in response")
	}
	return sess.SessionID, nil
}

// sendMessage posts the user message into the session and returns the raw
// response body for shape-tolerant parsing by the caller.
func (c *Client) sendMessage(ctx context.Context, sessionID, message string) ([]byte, error) {
	payload, err := json.Marshal(messageRequest{
		Input: messageInput{MessageType: "text", Text: message},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding message: %w", err)
	}

	body, err := c.post(ctx, c.messageURL(sessionID), payload)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}
	return body, nil
}

// deleteSession is fire-and-forget cleanup.
func (c *Client) deleteSession(ctx context.Context, sessionID string) {
	ctx, cancel := context.WithTimeout(ctx, deleteTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.sessionURL(sessionID), nil)
	if err != nil {
		return
	}
	req.SetBasicAuth("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return
	}
	_ = resp.Body.Close()
}

// post performs an authenticated POST and returns the response body.
func (c *Client) post(ctx context.Context, url string, payload []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}

func (c *Client) sessionsURL() string {
	return fmt.Sprintf("%s/v2/assistants/%s/sessions?version=%s", c.baseURL, c.assistantID, apiVersion)
}

func (c *Client) messageURL(sessionID string) string {
	return fmt.Sprintf("%s/v2/assistants/%s/sessions/%s/message?version=%s", c.baseURL, c.assistantID, sessionID, apiVersion)
}

func (c *Client) sessionURL(sessionID string) string {
	return fmt.Sprintf("%s/v2/assistants/%s/sessions/%s?version=%s", c.baseURL, c.assistantID, sessionID, apiVersion)
}

// extractText collects the plain-text entries of the reply, newline-joined in
// response order. When no text entries are present the raw body is returned
// so no data is silently dropped.
func extractText(body []byte) string {
	var msg messageResponse
	if err := json.Unmarshal(body, &msg); err != nil {
		return string(body)
	}

	var texts []string
	for _, entry := range msg.Output.Generic {
		if entry.ResponseType == "text" {
			texts = append(texts, entry.Text)
		}
	}
	if len(texts) == 0 {
		return string(body)
	}
	return strings.Join(texts, "\n")
}
