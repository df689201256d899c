package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cargo-tracking-service/internal/model"
	"cargo-tracking-service/internal/notify"
	"cargo-tracking-service/internal/repo"
)

var (
	// ErrUnknownStatus marks a status label outside the recognized set.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrInvalidTransition marks a recognized label that is not a legal edge
	// from the package's current status.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrUnknownReference marks a warehouse or box type id that does not exist.
	ErrUnknownReference = errors.New("unknown reference id")
)

// allowedTransitions is the directed edge set of the package lifecycle.
// delivered and cancelled are terminal: no outgoing edges. A status is never
// allowed to transition to itself.
var allowedTransitions = map[model.Status][]model.Status{
	model.Registered: {model.InTransit, model.Delayed, model.Cancelled},
	model.InTransit:  {model.Delivered, model.Delayed, model.Cancelled},
	model.Delayed:    {model.InTransit, model.Cancelled},
}

func canTransition(from, to model.Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Dispatcher interface {
	Dispatch(ctx context.Context, pkg *model.Package, status model.Status) notify.Result
}

// Lifecycle owns every status mutation of a package. Status is persisted
// first; notification dispatch runs only after the write committed, and its
// outcome never changes the result of the triggering call.
type Lifecycle struct {
	packages   repo.PackageRepository
	refs       repo.ReferenceRepository
	dispatcher Dispatcher
}

func NewLifecycle(packages repo.PackageRepository, refs repo.ReferenceRepository, dispatcher Dispatcher) *Lifecycle {
	return &Lifecycle{
		packages:   packages,
		refs:       refs,
		dispatcher: dispatcher,
	}
}

type RegisterInput struct {
	Sender     model.Party
	Receiver   model.Party
	OriginWHID string
	DestWHID   string
	BoxTypeID  string
}

func (s *Lifecycle) Register(ctx context.Context, in RegisterInput) (*model.Package, error) {
	if err := s.checkWarehouse(ctx, "origin warehouse", in.OriginWHID); err != nil {
		return nil, err
	}
	if err := s.checkWarehouse(ctx, "dest warehouse", in.DestWHID); err != nil {
		return nil, err
	}

	ok, err := s.refs.BoxTypeExists(ctx, in.BoxTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: box type %q", ErrUnknownReference, in.BoxTypeID)
	}

	trackingID, err := s.newTrackingID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pkg := &model.Package{
		ID:         uuid.NewString(),
		TrackingID: trackingID,
		Sender:     in.Sender,
		Receiver:   in.Receiver,
		OriginWHID: in.OriginWHID,
		DestWHID:   in.DestWHID,
		BoxTypeID:  in.BoxTypeID,
		Status:     model.Registered,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.packages.Insert(ctx, pkg); err != nil {
		return nil, err
	}

	s.dispatcher.Dispatch(ctx, pkg, model.Registered)

	return pkg, nil
}

func (s *Lifecycle) checkWarehouse(ctx context.Context, ref, id string) error {
	ok, err := s.refs.WarehouseExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownReference, ref, id)
	}
	return nil
}

type TransitionResult struct {
	Package   *model.Package
	OldStatus model.Status
	NewStatus model.Status
}

func (s *Lifecycle) Transition(ctx context.Context, trackingID, rawStatus string) (*TransitionResult, error) {
	next, ok := model.ParseStatus(rawStatus)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, rawStatus)
	}

	pkg, err := s.packages.FindByTrackingID(ctx, trackingID)
	if err != nil {
		return nil, err
	}

	if !canTransition(pkg.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, pkg.Status, next)
	}

	now := time.Now().UTC()
	if err := s.packages.UpdateStatus(ctx, pkg.ID, next, now); err != nil {
		return nil, err
	}

	old := pkg.Status
	pkg.Status = next
	pkg.UpdatedAt = now

	// The status change is committed at this point; delivery is best-effort
	// and must not influence the caller's view of the transition.
	s.dispatcher.Dispatch(ctx, pkg, next)

	return &TransitionResult{Package: pkg, OldStatus: old, NewStatus: next}, nil
}

// NewTrackingID produces the human-facing package code: "PKG" followed by the
// first 8 hex characters of a v4 UUID, uppercased.
func NewTrackingID() string {
	u := uuid.New()
	return "PKG" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// newTrackingID regenerates on collision with an existing package. 32 bits of
// randomness is plenty for one id but thin across a large store, so the cheap
// existence check runs before every insert.
func (s *Lifecycle) newTrackingID(ctx context.Context) (string, error) {
	const maxAttempts = 5

	for range maxAttempts {
		id := NewTrackingID()

		_, err := s.packages.FindByTrackingID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", errors.New("could not allocate a unique tracking id")
}
