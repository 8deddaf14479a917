// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterUserRequest: username, email, country
  - RequestAddressRequest: sender_id

# Response Types

Types for JSON responses:

  - RegisterUserResponse: message, user_id
  - RequestAddressResponse: message, recipient_info, postcard_id, postcard_code
  - ConfirmReceiptResponse: message, postcard_id, received_at
  - ErrorResponse: error, message

# Domain Types

  - User: member profile with ordered sent/received postcard id lists
  - Postcard: one card between a sender and a receiver
  - Candidate: a user projection scored by the recipient selector
  - Assignment: chosen recipient plus the new postcard

# Constants

Postcard status values:

	StatusTraveling = "traveling"
	StatusReceived  = "received"

A postcard starts traveling and moves to received exactly once.
*/
package models
