package line

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.line.me"

var ErrNotConfigured = errors.New("line: channel access token not configured")

// Message is any LINE message object; it is marshaled into the push payload
// as-is. See NewTextMessage and NewFlexMessage.
type Message any

type TextMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func NewTextMessage(text string) TextMessage {
	return TextMessage{Type: "text", Text: text}
}

type FlexMessage struct {
	Type     string         `json:"type"`
	AltText  string         `json:"altText"`
	Contents map[string]any `json:"contents"`
}

func NewFlexMessage(altText string, contents map[string]any) FlexMessage {
	return FlexMessage{Type: "flex", AltText: altText, Contents: contents}
}

type Client struct {
	httpClient   *http.Client
	baseURL      string
	channelToken string
}

func NewClient(channelToken string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      defaultBaseURL,
		channelToken: channelToken,
	}
}

// NewClientWithBaseURL exists for tests against a local server.
func NewClientWithBaseURL(channelToken string, baseURL string) *Client {
	client := NewClient(channelToken)
	client.baseURL = baseURL
	return client
}

func (client *Client) Enabled() bool {
	return client.channelToken != ""
}

// Push delivers messages to one recipient via the Messaging API push
// endpoint. Fire-and-forget: no retries, no delivery receipts.
func (client *Client) Push(ctx context.Context, to string, messages []Message) error {
	if !client.Enabled() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(map[string]any{
		"to":       to,
		"messages": messages,
	})
	if err != nil {
		return fmt.Errorf("marshal push payload: %w", err)
	}

	endpoint := client.baseURL + "/v2/bot/message/push"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+client.channelToken)

	resp, err := client.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("line status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
