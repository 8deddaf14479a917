// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/postcrossing/ledger"
	"github.com/danielhkuo/postcrossing/metrics"
	"github.com/danielhkuo/postcrossing/models"
	"github.com/danielhkuo/postcrossing/selector"
)

var (
	ErrInvalidID       = errors.New("malformed id")
	ErrInvalidUsername = errors.New("username is required")
)

// Service runs the postcard exchange on top of a ledger.
type Service struct {
	store   ledger.Store
	metrics *metrics.Metrics
	log     *slog.Logger
	address string
	now     func() time.Time

	// mu serializes address requests; the scoring scan reads every user
	mu sync.Mutex
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithAddress sets the placeholder delivery address returned to senders
func WithAddress(address string) Option {
	return func(s *Service) {
		if address != "" {
			s.address = address
		}
	}
}

func NewService(store ledger.Store, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		store:   store,
		metrics: m,
		log:     slog.Default(),
		address: models.PlaceholderAddress,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUser creates a user with empty postcard lists
func (s *Service) RegisterUser(ctx context.Context, req models.RegisterUserRequest) (models.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return models.User{}, ErrInvalidUsername
	}

	u := models.User{
		Username:   username,
		Email:      strings.TrimSpace(req.Email),
		Country:    strings.TrimSpace(req.Country),
		DateJoined: s.now(),
	}
	if err := s.store.CreateUser(ctx, &u); err != nil {
		return models.User{}, err
	}

	s.metrics.UsersRegistered.Inc()
	s.log.Info("user registered", "user_id", u.ID, "country", u.Country)
	return u, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (models.User, error) {
	if err := validateID(id); err != nil {
		return models.User{}, err
	}
	return s.store.GetUser(ctx, id)
}

func (s *Service) GetPostcard(ctx context.Context, id string) (models.Postcard, error) {
	if err := validateID(id); err != nil {
		return models.Postcard{}, err
	}
	return s.store.GetPostcard(ctx, id)
}

// RequestAddress assigns the most due user as the recipient of a new
// postcard from senderID. Scoring, the postcard insert and the append to the
// sender's sent list commit together or not at all.
func (s *Service) RequestAddress(ctx context.Context, senderID string) (models.Assignment, error) {
	if err := validateID(senderID); err != nil {
		return models.Assignment{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var assignment models.Assignment
	err := s.store.InTx(ctx, func(tx ledger.Store) error {
		if err := tx.LockLedger(ctx); err != nil {
			return err
		}

		if _, err := tx.GetUser(ctx, senderID); err != nil {
			return err
		}

		candidates, err := tx.ListCandidates(ctx, senderID)
		if err != nil {
			return err
		}
		s.metrics.SelectionCandidates.Observe(float64(len(candidates)))
		if s.log.Enabled(ctx, slog.LevelDebug) {
			s.log.DebugContext(ctx, "candidates ranked",
				"sender_id", senderID,
				"ranking", rankingSummary(selector.Rank(senderID, candidates), rankingLogLimit),
			)
		}

		recipient, err := selector.Choose(senderID, candidates)
		if err != nil {
			return err
		}

		now := s.now()
		postcard := models.Postcard{
			Code:       postcardCode(now),
			SenderID:   senderID,
			ReceiverID: recipient.UserID,
			Status:     models.StatusTraveling,
			SentAt:     now,
		}
		if err := tx.CreatePostcard(ctx, &postcard); err != nil {
			return err
		}

		assignment = models.Assignment{
			Recipient: recipient,
			Postcard:  postcard,
			Address:   s.address,
		}
		return nil
	})
	if err != nil {
		s.metrics.AddressRequestsFailed.WithLabelValues(failureReason(err)).Inc()
		return models.Assignment{}, err
	}

	s.metrics.AddressesAssigned.Inc()
	s.log.Info("address assigned",
		"sender_id", senderID,
		"recipient_id", assignment.Recipient.UserID,
		"due_score", assignment.Recipient.DueScore(),
		"postcard_id", assignment.Postcard.ID,
	)
	return assignment, nil
}

// ConfirmReceipt marks a traveling postcard as received. A second
// confirmation fails with ledger.ErrAlreadyConfirmed and changes nothing.
func (s *Service) ConfirmReceipt(ctx context.Context, postcardID string) (models.Postcard, error) {
	if err := validateID(postcardID); err != nil {
		return models.Postcard{}, err
	}

	var postcard models.Postcard
	err := s.store.InTx(ctx, func(tx ledger.Store) error {
		var err error
		postcard, err = tx.MarkReceived(ctx, postcardID, s.now())
		return err
	})
	if err != nil {
		s.metrics.ConfirmationsRejected.WithLabelValues(failureReason(err)).Inc()
		return models.Postcard{}, err
	}

	s.metrics.PostcardsReceived.Inc()
	s.log.Info("postcard received", "postcard_id", postcard.ID, "receiver_id", postcard.ReceiverID)
	return postcard, nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func postcardCode(t time.Time) string {
	return "PC-" + strconv.FormatInt(t.UnixMilli(), 10)
}

// rankingLogLimit caps how many ranked candidates the debug line carries
const rankingLogLimit = 5

// rankingSummary renders the first limit candidates as "id:score"
func rankingSummary(ranked []models.Candidate, limit int) []string {
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]string, len(ranked))
	for i, c := range ranked {
		out[i] = c.UserID + ":" + strconv.Itoa(c.DueScore())
	}
	return out
}

// failureReason is the metric label for err
func failureReason(err error) string {
	switch {
	case errors.Is(err, selector.ErrNoEligibleRecipient):
		return "no_eligible_recipient"
	case errors.Is(err, ledger.ErrNotFound):
		return "not_found"
	case errors.Is(err, ledger.ErrAlreadyConfirmed):
		return "already_confirmed"
	case errors.Is(err, ErrInvalidID):
		return "invalid_id"
	default:
		return "store"
	}
}
