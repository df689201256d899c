package notify_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/notify"
)

type fakeSendClient struct {
	calls []sendCall

	// failPhones lists phone numbers whose sends should error.
	failPhones map[string]error
}

type sendCall struct {
	phone   string
	message string
}

func (f *fakeSendClient) Send(ctx context.Context, phoneNumber, message string) (string, error) {
	f.calls = append(f.calls, sendCall{phone: phoneNumber, message: message})
	if err, ok := f.failPhones[phoneNumber]; ok {
		return "", err
	}
	return "remote-" + phoneNumber, nil
}

func testPackage() *model.Package {
	return &model.Package{
		ID:         "pkg-1",
		TrackingID: "PKG12AB34CD",
		Sender:     model.Party{Name: "John Doe", Phone: "+94771234567"},
		Receiver:   model.Party{Name: "Jane Smith", Phone: "+94779876543"},
		Status:     model.Registered,
	}
}

func TestDispatcher_NotifiesBothParties(t *testing.T) {
	t.Parallel()

	client := &fakeSendClient{}
	d := notify.NewDispatcher(client, notify.NewCatalog(), "en")

	res := d.Dispatch(context.Background(), testPackage(), model.InTransit)

	if len(client.calls) != 2 {
		t.Fatalf("expected exactly 2 send attempts, got %d", len(client.calls))
	}
	if client.calls[0].phone != "+94771234567" || client.calls[1].phone != "+94779876543" {
		t.Fatalf("unexpected recipients: %+v", client.calls)
	}
	for _, call := range client.calls {
		if !strings.Contains(call.message, "PKG12AB34CD") {
			t.Fatalf("expected tracking id in message, got %q", call.message)
		}
	}

	if !res.Sender.Sent || res.Sender.MessageID == "" {
		t.Fatalf("expected sender outcome sent, got %+v", res.Sender)
	}
	if !res.Receiver.Sent || res.Receiver.MessageID == "" {
		t.Fatalf("expected receiver outcome sent, got %+v", res.Receiver)
	}
}

func TestDispatcher_IsolatesReceiverFailure(t *testing.T) {
	t.Parallel()

	client := &fakeSendClient{
		failPhones: map[string]error{
			"+94779876543": errors.New("connection refused"),
		},
	}
	d := notify.NewDispatcher(client, notify.NewCatalog(), "en")

	res := d.Dispatch(context.Background(), testPackage(), model.Delivered)

	if len(client.calls) != 2 {
		t.Fatalf("expected both sends attempted despite failure, got %d", len(client.calls))
	}
	if !res.Sender.Sent {
		t.Fatalf("expected sender outcome sent, got %+v", res.Sender)
	}
	if res.Receiver.Sent {
		t.Fatalf("expected receiver outcome failed, got %+v", res.Receiver)
	}
	if !strings.Contains(res.Receiver.Error, "connection refused") {
		t.Fatalf("expected failure reason, got %q", res.Receiver.Error)
	}
}

func TestDispatcher_IsolatesSenderFailure(t *testing.T) {
	t.Parallel()

	client := &fakeSendClient{
		failPhones: map[string]error{
			"+94771234567": errors.New("timeout"),
		},
	}
	d := notify.NewDispatcher(client, notify.NewCatalog(), "en")

	res := d.Dispatch(context.Background(), testPackage(), model.Delayed)

	if res.Sender.Sent {
		t.Fatalf("expected sender outcome failed, got %+v", res.Sender)
	}
	if !res.Receiver.Sent {
		t.Fatalf("expected receiver send unaffected by sender failure, got %+v", res.Receiver)
	}
}

type fakeDispatchLog struct {
	trackingID string
	status     model.Status
	result     notify.Result
	at         time.Time
	err        error
}

func (f *fakeDispatchLog) StoreDispatch(ctx context.Context, trackingID string, status model.Status, result notify.Result, at time.Time) error {
	f.trackingID = trackingID
	f.status = status
	f.result = result
	f.at = at
	return f.err
}

func TestDispatcher_RecordsDispatch(t *testing.T) {
	t.Parallel()

	log := &fakeDispatchLog{}
	d := notify.NewDispatcher(&fakeSendClient{}, notify.NewCatalog(), "en").WithLog(log)

	d.Dispatch(context.Background(), testPackage(), model.InTransit)

	if log.trackingID != "PKG12AB34CD" {
		t.Fatalf("expected dispatch recorded for tracking id, got %q", log.trackingID)
	}
	if log.status != model.InTransit {
		t.Fatalf("expected recorded status in_transit, got %q", log.status)
	}
	if !log.result.Sender.Sent || !log.result.Receiver.Sent {
		t.Fatalf("expected recorded outcomes, got %+v", log.result)
	}
}

func TestDispatcher_LogFailureDoesNotAffectResult(t *testing.T) {
	t.Parallel()

	log := &fakeDispatchLog{err: errors.New("redis down")}
	d := notify.NewDispatcher(&fakeSendClient{}, notify.NewCatalog(), "en").WithLog(log)

	res := d.Dispatch(context.Background(), testPackage(), model.InTransit)

	if !res.Sender.Sent || !res.Receiver.Sent {
		t.Fatalf("expected send outcomes unaffected by log failure, got %+v", res)
	}
}
