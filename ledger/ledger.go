// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/postcrossing/models"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyConfirmed = errors.New("postcard already confirmed")
	ErrStore            = errors.New("store failure")
)

// Store is the persistent record of users and postcards.
type Store interface {
	// CreateUser inserts u, filling in its ID.
	CreateUser(ctx context.Context, u *models.User) error
	// GetUser returns the user with both postcard lists populated.
	GetUser(ctx context.Context, id string) (models.User, error)
	// ListCandidates returns every user except excludeID with current counts.
	ListCandidates(ctx context.Context, excludeID string) ([]models.Candidate, error)
	// CreatePostcard inserts p, filling in its ID. This appends it to the
	// sender's sent list.
	CreatePostcard(ctx context.Context, p *models.Postcard) error
	GetPostcard(ctx context.Context, id string) (models.Postcard, error)
	// MarkReceived moves a traveling postcard to received, appending it to
	// the receiver's received list.
	MarkReceived(ctx context.Context, id string, at time.Time) (models.Postcard, error)
	// LockLedger blocks other whole-ledger writers until the current
	// transaction ends.
	LockLedger(ctx context.Context) error
	// InTx runs fn with a Store bound to a single transaction. The
	// transaction commits when fn returns nil.
	InTx(ctx context.Context, fn func(Store) error) error
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
