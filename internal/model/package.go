package model

import "time"

type Status string

const (
	Registered Status = "registered"
	InTransit  Status = "in_transit"
	Delivered  Status = "delivered"
	Delayed    Status = "delayed"
	Cancelled  Status = "cancelled"
)

// ParseStatus maps a wire label (lower snake case) to a recognized Status.
func ParseStatus(raw string) (Status, bool) {
	switch Status(raw) {
	case Registered, InTransit, Delivered, Delayed, Cancelled:
		return Status(raw), true
	}
	return "", false
}

type Party struct {
	Name  string
	Phone string
}

type Package struct {
	ID         string
	TrackingID string
	Sender     Party
	Receiver   Party
	OriginWHID string
	DestWHID   string
	BoxTypeID  string
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
