package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSMSClient_Send_Success(t *testing.T) {
	t.Parallel()

	type gotReq struct {
		Path          string
		Authorization string
		ContentType   string
		Body          []byte
	}

	var captured gotReq

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Authorization = r.Header.Get("Authorization")
		captured.ContentType = r.Header.Get("Content-Type")

		defer r.Body.Close()
		captured.Body, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"messageId":"abc-123"}]}`))
	}))
	defer srv.Close()

	c := NewSMSClient("key-1", srv.URL, "CargoSMS")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	msgID, err := c.Send(ctx, "+94771234567", "hello")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if msgID != "abc-123" {
		t.Fatalf("expected messageId %q, got %q", "abc-123", msgID)
	}

	if captured.Path != "/sms/2/text/advanced" {
		t.Fatalf("unexpected path: %q", captured.Path)
	}
	if captured.Authorization != "App key-1" {
		t.Fatalf("unexpected Authorization header: %q", captured.Authorization)
	}
	if captured.ContentType != "application/json" {
		t.Fatalf("unexpected Content-Type: %q", captured.ContentType)
	}

	var req sendRequest
	if err := json.Unmarshal(captured.Body, &req); err != nil {
		t.Fatalf("failed to decode request json: %v body=%q", err, string(captured.Body))
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	msg := req.Messages[0]
	if msg.From != "CargoSMS" {
		t.Fatalf("expected from %q, got %q", "CargoSMS", msg.From)
	}
	if len(msg.Destinations) != 1 || msg.Destinations[0].To != "+94771234567" {
		t.Fatalf("unexpected destinations: %+v", msg.Destinations)
	}
	if msg.Text != "hello" {
		t.Fatalf("expected text %q, got %q", "hello", msg.Text)
	}
}

func TestSMSClient_Send_Non2xx_ReturnsErrorWithBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad key"))
	}))
	defer srv.Close()

	c := NewSMSClient("key-1", srv.URL, "CargoSMS")

	_, err := c.Send(context.Background(), "+94771234567", "hi")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "unexpected status code: 401") {
		t.Fatalf("expected error to mention status code, got: %v", err)
	}
	if !strings.Contains(msg, `body="bad key"`) {
		t.Fatalf("expected error to include body, got: %v", err)
	}
}

func TestSMSClient_Send_InvalidJSON_ReturnsErrorWithBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("THIS IS NOT JSON"))
	}))
	defer srv.Close()

	c := NewSMSClient("key-1", srv.URL, "CargoSMS")

	_, err := c.Send(context.Background(), "+94771234567", "hi")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to decode json") {
		t.Fatalf("expected decode error, got: %v", err)
	}
}

func TestSMSClient_Send_MissingMessageId_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[]}`))
	}))
	defer srv.Close()

	c := NewSMSClient("key-1", srv.URL, "CargoSMS")

	_, err := c.Send(context.Background(), "+94771234567", "hi")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "missing messageId") {
		t.Fatalf("expected missing messageId error, got: %v", err)
	}
}

func TestSMSClient_Send_ContextCanceled(t *testing.T) {
	t.Parallel()

	// Server that intentionally blocks longer than our context deadline.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"messages":[{"messageId":"abc"}]}`))
	}))
	defer srv.Close()

	c := NewSMSClient("key-1", srv.URL, "CargoSMS")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Send(ctx, "+94771234567", "hi")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "context") &&
		!strings.Contains(strings.ToLower(err.Error()), "deadline") {
		t.Fatalf("expected context/deadline error, got: %v", err)
	}
}

func TestSMSClient_SimulatedMode(t *testing.T) {
	t.Parallel()

	// No API key: no request must reach the server.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request in simulated mode: %s %s", r.Method, r.URL.Path)
	}))
	defer srv.Close()

	c := NewSMSClient("", srv.URL, "CargoSMS")

	if !c.Simulated() {
		t.Fatalf("expected client to report simulated mode")
	}

	msgID, err := c.Send(context.Background(), "+94771234567", "hello")
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if !strings.HasPrefix(msgID, "simulated-") {
		t.Fatalf("expected synthetic message id, got %q", msgID)
	}
}
