// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ledger stores users and postcards.

Store is the interface the rest of the server depends on; SQLStore is the
database/sql implementation used with PostgreSQL and SQLite:

	store := ledger.NewSQLStore(conn, db.TypeSQLite)

# User Lists

A user's sent and received postcard lists are derived from the postcard
table, so SentCount and ReceivedCount always equal the list lengths:

  - sent: postcards with sender_id = user, by sent_at
  - received: postcards with receiver_id = user and status 'received', by received_at

Inserting a postcard appends it to the sender's sent list. Marking it
received appends it to the receiver's received list.

# Transactions

InTx binds a Store to one transaction:

	err := store.InTx(ctx, func(tx ledger.Store) error {
		if err := tx.LockLedger(ctx); err != nil {
			return err
		}
		// read, then write
		return nil
	})

Nested InTx calls reuse the outer transaction.

# Errors

  - ErrNotFound: user or postcard absent
  - ErrAlreadyConfirmed: postcard already received
  - ErrStore: wraps any driver failure

Check with errors.Is.
*/
package ledger
