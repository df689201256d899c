package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// SMSClient submits one message to the SMS provider's advanced-text endpoint.
// With no API key configured it runs in simulated mode: no network call is
// made and a synthetic message id is returned, so the rest of the system can
// be exercised without a live provider account.
type SMSClient struct {
	apiKey  string
	baseURL string
	from    string
	client  *http.Client
}

func NewSMSClient(apiKey, baseURL, from string) *SMSClient {
	return &SMSClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		from:    from,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *SMSClient) Simulated() bool {
	return c.apiKey == ""
}

type sendRequest struct {
	Messages []sendMessage `json:"messages"`
}

type sendMessage struct {
	From         string        `json:"from"`
	Destinations []destination `json:"destinations"`
	Text         string        `json:"text"`
}

type destination struct {
	To string `json:"to"`
}

type sendResponse struct {
	Messages []struct {
		MessageID string `json:"messageId"`
	} `json:"messages"`
}

func (c *SMSClient) Send(ctx context.Context, phoneNumber, message string) (string, error) {
	if c.Simulated() {
		return "simulated-" + uuid.NewString()[:8], nil
	}

	reqBody, err := json.Marshal(sendRequest{
		Messages: []sendMessage{{
			From:         c.from,
			Destinations: []destination{{To: phoneNumber}},
			Text:         message,
		}},
	})
	if err != nil {
		return "", err
	}

	url := c.baseURL + "/sms/2/text/advanced"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "App "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d body=%q", resp.StatusCode, string(body))
	}

	var sr sendResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("failed to decode json: %w body=%q", err, string(body))
	}
	if len(sr.Messages) == 0 || sr.Messages[0].MessageID == "" {
		return "", fmt.Errorf("missing messageId in response body=%q", string(body))
	}

	return sr.Messages[0].MessageID, nil
}
