// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package exchange implements the postcard exchange operations.

	svc := exchange.NewService(store, metrics.New(reg),
		exchange.WithLogger(slog.Default()),
		exchange.WithAddress(cfg.PlaceholderAddress),
	)

# Operations

  - RegisterUser: create a user with empty postcard lists
  - GetUser, GetPostcard: lookups by ID
  - RequestAddress: pick the most due recipient and record a traveling postcard
  - ConfirmReceipt: move a traveling postcard to received

# Atomicity

RequestAddress holds a process-wide mutex and runs inside one ledger
transaction that also takes the ledger lock, so two concurrent senders
cannot score the same stale state. ConfirmReceipt relies on a conditional
update and needs no lock.

A postcard counts toward its sender's sent list as soon as it is assigned,
and toward its receiver's received list only once confirmed.

# Errors

  - ErrInvalidID: ID is not a UUID
  - ErrInvalidUsername: registration without a username
  - ledger.ErrNotFound, ledger.ErrAlreadyConfirmed, ledger.ErrStore
  - selector.ErrNoEligibleRecipient
*/
package exchange
