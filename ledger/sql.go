// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/postcrossing/db"
	"github.com/danielhkuo/postcrossing/models"
)

// ledgerLockKey is the pg_advisory_xact_lock key shared by every writer
// that scans the whole ledger.
const ledgerLockKey = 7463017

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore implements Store on database/sql for PostgreSQL and SQLite.
type SQLStore struct {
	db     *sql.DB
	q      querier
	tx     *sql.Tx
	dbType string
}

func NewSQLStore(conn *sql.DB, dbType string) *SQLStore {
	return &SQLStore{db: conn, q: conn, dbType: dbType}
}

func (s *SQLStore) CreateUser(ctx context.Context, u *models.User) error {
	u.ID = uuid.NewString()
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO app_user (id, username, email, country, date_joined)
		VALUES ($1, $2, $3, $4, $5)
	`, u.ID, u.Username, u.Email, u.Country, u.DateJoined)
	if err != nil {
		return storeErr("insert user", err)
	}

	u.SentPostcards = []string{}
	u.ReceivedPostcards = []string{}
	u.SentCount = 0
	u.ReceivedCount = 0
	return nil
}

func (s *SQLStore) GetUser(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.q.QueryRowContext(ctx, `
		SELECT id, username, email, country, date_joined
		FROM app_user
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.Email, &u.Country, &u.DateJoined)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.User{}, storeErr("query user", err)
	}

	u.SentPostcards, err = s.postcardIDs(ctx, `
		SELECT id FROM postcard
		WHERE sender_id = $1
		ORDER BY sent_at, id
	`, id)
	if err != nil {
		return models.User{}, storeErr("query sent postcards", err)
	}

	u.ReceivedPostcards, err = s.postcardIDs(ctx, `
		SELECT id FROM postcard
		WHERE receiver_id = $1 AND status = 'received'
		ORDER BY received_at, id
	`, id)
	if err != nil {
		return models.User{}, storeErr("query received postcards", err)
	}

	u.SentCount = len(u.SentPostcards)
	u.ReceivedCount = len(u.ReceivedPostcards)
	return u, nil
}

func (s *SQLStore) postcardIDs(ctx context.Context, query, userID string) ([]string, error) {
	rows, err := s.q.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SQLStore) ListCandidates(ctx context.Context, excludeID string) ([]models.Candidate, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT u.id, u.username, u.country, u.date_joined,
			(SELECT COUNT(*) FROM postcard p WHERE p.sender_id = u.id) AS sent_count,
			(SELECT COUNT(*) FROM postcard p WHERE p.receiver_id = u.id AND p.status = 'received') AS received_count
		FROM app_user u
		WHERE u.id <> $1
		ORDER BY u.id
	`, excludeID)
	if err != nil {
		return nil, storeErr("query candidates", err)
	}
	defer rows.Close()

	var candidates []models.Candidate
	for rows.Next() {
		var c models.Candidate
		if err := rows.Scan(&c.UserID, &c.Username, &c.Country, &c.DateJoined, &c.SentCount, &c.ReceivedCount); err != nil {
			return nil, storeErr("scan candidate", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterate candidates", err)
	}

	return candidates, nil
}

func (s *SQLStore) CreatePostcard(ctx context.Context, p *models.Postcard) error {
	p.ID = uuid.NewString()
	if p.Status == "" {
		p.Status = models.StatusTraveling
	}

	_, err := s.q.ExecContext(ctx, `
		INSERT INTO postcard (id, code, sender_id, receiver_id, status, sent_at, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, p.ID, p.Code, p.SenderID, p.ReceiverID, p.Status, p.SentAt, p.ReceivedAt)
	if err != nil {
		return storeErr("insert postcard", err)
	}
	return nil
}

func (s *SQLStore) GetPostcard(ctx context.Context, id string) (models.Postcard, error) {
	var p models.Postcard
	var receivedAt sql.NullTime
	err := s.q.QueryRowContext(ctx, `
		SELECT id, code, sender_id, receiver_id, status, sent_at, received_at
		FROM postcard
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Code, &p.SenderID, &p.ReceiverID, &p.Status, &p.SentAt, &receivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Postcard{}, fmt.Errorf("postcard %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Postcard{}, storeErr("query postcard", err)
	}

	if receivedAt.Valid {
		t := receivedAt.Time
		p.ReceivedAt = &t
	}
	return p, nil
}

func (s *SQLStore) MarkReceived(ctx context.Context, id string, at time.Time) (models.Postcard, error) {
	// Conditional update so a concurrent confirmation cannot apply twice
	res, err := s.q.ExecContext(ctx, `
		UPDATE postcard SET status = 'received', received_at = $1
		WHERE id = $2 AND status = 'traveling'
	`, at, id)
	if err != nil {
		return models.Postcard{}, storeErr("update postcard", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return models.Postcard{}, storeErr("update postcard", err)
	}

	p, err := s.GetPostcard(ctx, id)
	if err != nil {
		return models.Postcard{}, err
	}
	if n == 0 {
		if p.Status == models.StatusReceived {
			return p, fmt.Errorf("postcard %s: %w", id, ErrAlreadyConfirmed)
		}
		return models.Postcard{}, storeErr("update postcard", fmt.Errorf("no rows updated for %s", id))
	}
	return p, nil
}

// LockLedger serializes whole-ledger writers for the rest of the current
// transaction. It only has an effect on PostgreSQL inside InTx; SQLite
// already runs a single writer.
func (s *SQLStore) LockLedger(ctx context.Context) error {
	if s.tx == nil || s.dbType != db.TypePostgres {
		return nil
	}
	if _, err := s.q.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, ledgerLockKey); err != nil {
		return storeErr("lock ledger", err)
	}
	return nil
}

func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.tx != nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer tx.Rollback()

	txStore := &SQLStore{db: s.db, q: tx, tx: tx, dbType: s.dbType}
	if err := fn(txStore); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}
