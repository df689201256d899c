package notify

import (
	"context"
	"log/slog"
	"time"

	"cargo-tracking-service/internal/model"
)

type SendClient interface {
	Send(ctx context.Context, phoneNumber, message string) (remoteMessageID string, err error)
}

// DispatchLog records the most recent dispatch per tracking id. Optional;
// a nil log disables recording.
type DispatchLog interface {
	StoreDispatch(ctx context.Context, trackingID string, status model.Status, result Result, at time.Time) error
}

type Outcome struct {
	Role      string `json:"role"`
	Phone     string `json:"phone"`
	Sent      bool   `json:"sent"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Result struct {
	Sender   Outcome `json:"sender"`
	Receiver Outcome `json:"receiver"`
}

// Dispatcher fans a status event out into one notification attempt per party.
// Delivery is best-effort: each attempt is made at most once, a failure for
// one recipient never blocks the other, and failures are only logged. The
// triggering operation is never failed on account of notifications.
type Dispatcher struct {
	client   SendClient
	catalog  *Catalog
	language string

	log DispatchLog
}

func NewDispatcher(client SendClient, catalog *Catalog, language string) *Dispatcher {
	if language == "" {
		language = fallbackLanguage
	}
	return &Dispatcher{
		client:   client,
		catalog:  catalog,
		language: language,
	}
}

func (d *Dispatcher) WithLog(log DispatchLog) *Dispatcher {
	d.log = log
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, pkg *model.Package, status model.Status) Result {
	res := Result{
		Sender:   d.notify(ctx, pkg, status, "sender", pkg.Sender.Phone),
		Receiver: d.notify(ctx, pkg, status, "receiver", pkg.Receiver.Phone),
	}

	if d.log != nil {
		if err := d.log.StoreDispatch(ctx, pkg.TrackingID, status, res, time.Now().UTC()); err != nil {
			slog.Warn("failed to record dispatch",
				"tracking_id", pkg.TrackingID,
				"error", err,
			)
		}
	}

	return res
}

func (d *Dispatcher) notify(ctx context.Context, pkg *model.Package, status model.Status, role, phone string) Outcome {
	body := d.catalog.Render(d.language, status, pkg.TrackingID)

	remoteID, err := d.client.Send(ctx, phone, body)
	if err != nil {
		slog.Error("sms send failed",
			"tracking_id", pkg.TrackingID,
			"role", role,
			"status", string(status),
			"error", err,
		)
		return Outcome{Role: role, Phone: phone, Sent: false, Error: err.Error()}
	}

	slog.Info("sms sent",
		"tracking_id", pkg.TrackingID,
		"role", role,
		"status", string(status),
		"remote_message_id", remoteID,
	)
	return Outcome{Role: role, Phone: phone, Sent: true, MessageID: remoteID}
}
