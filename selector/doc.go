// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package selector chooses who receives the next postcard.

# Due Score

Each candidate is scored as

	due_score = sent_count - received_count

Counts come from the ledger at selection time. A postcard still traveling
counts toward its sender's sent_count but not toward its receiver's
received_count, so only confirmed receipts lower a score.

# Ordering

Candidates are ordered lexicographically:

 1. Higher due score first
 2. Earlier date_joined first
 3. Smaller user ID first

The order is total, so the same ledger state always yields the same choice.

# Eligibility

Every user except the sender is a candidate. There is no cooldown, country
rule, or limit on cards already in flight to a user.

	recipient, err := selector.Choose(senderID, candidates)
	if errors.Is(err, selector.ErrNoEligibleRecipient) {
		// ledger holds only the sender
	}
*/
package selector
