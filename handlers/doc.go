// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the postcard exchange API.

# Handler Types

Each handler is a struct holding the exchange service:

  - UserHandler: registration and profile lookup
  - PostcardHandler: address requests, receipt confirmation, postcard lookup

Handlers are created via constructor functions:

	userHandler := handlers.NewUserHandler(svc)

RequestAddress reads the sender from senderId in the JSON body; the
snake_case sender_id key is also accepted.

# Postcard Flow

A postcard is created traveling and confirmed once:

	POST /api/postcards/request-address      → RequestAddress
	PUT  /api/postcards/{postcardId}/received → ConfirmReceived

RequestAddress picks the most due user other than the sender. The card
joins the sender's sent list immediately and the receiver's received list
only on confirmation.

# Status Codes

	NotFound, no eligible recipient → 404
	already confirmed               → 400
	invalid JSON, missing fields    → 400
	malformed ID, store failure     → 500

Every 500 is logged with slog before the response is written.
*/
package handlers
