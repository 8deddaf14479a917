package models

import (
	"encoding/json"
	"time"
)

// Postcard status constants
const (
	StatusTraveling = "traveling"
	StatusReceived  = "received"
)

// PlaceholderAddress stands in for real address data
const PlaceholderAddress = "123 Fictional Street, Cityville, Country"

// Request types

type RegisterUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Country  string `json:"country"`
}

type RequestAddressRequest struct {
	SenderID string `json:"senderId"`
}

// UnmarshalJSON also accepts the snake_case sender_id key. senderId wins
// when both are present.
func (r *RequestAddressRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		SenderID      string `json:"senderId"`
		SnakeSenderID string `json:"sender_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.SenderID = raw.SenderID
	if r.SenderID == "" {
		r.SenderID = raw.SnakeSenderID
	}
	return nil
}

// Response types

type RegisterUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type RecipientInfo struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Country  string `json:"country"`
	Address  string `json:"address"`
}

type RequestAddressResponse struct {
	Message       string        `json:"message"`
	RecipientInfo RecipientInfo `json:"recipient_info"`
	PostcardID    string        `json:"postcard_id"`
	PostcardCode  string        `json:"postcard_code"`
}

type ConfirmReceiptResponse struct {
	Message    string    `json:"message"`
	PostcardID string    `json:"postcard_id"`
	ReceivedAt time.Time `json:"received_at"`
}

// Domain types

// User is a registered member. SentPostcards and ReceivedPostcards hold
// postcard ids in the order they were sent and confirmed.
type User struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	Country           string    `json:"country"`
	DateJoined        time.Time `json:"date_joined"`
	SentPostcards     []string  `json:"sent_postcards"`
	ReceivedPostcards []string  `json:"received_postcards"`
	SentCount         int       `json:"sent_count"`
	ReceivedCount     int       `json:"received_count"`
}

type Postcard struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	SenderID   string     `json:"sender_id"`
	ReceiverID string     `json:"receiver_id"`
	Status     string     `json:"status"`
	SentAt     time.Time  `json:"sent_at"`
	ReceivedAt *time.Time `json:"received_at"`
}

// Candidate is a user as seen by the recipient selector, with counts read
// at selection time.
type Candidate struct {
	UserID        string
	Username      string
	Country       string
	DateJoined    time.Time
	SentCount     int
	ReceivedCount int
}

// DueScore is sent minus received. Higher means more overdue to receive mail.
func (c Candidate) DueScore() int {
	return c.SentCount - c.ReceivedCount
}

// Assignment is the outcome of a successful address request
type Assignment struct {
	Recipient Candidate
	Postcard  Postcard
	Address   string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
