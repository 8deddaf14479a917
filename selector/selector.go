// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package selector

import (
	"errors"
	"sort"

	"github.com/danielhkuo/postcrossing/models"
)

var ErrNoEligibleRecipient = errors.New("no eligible recipient")

// Rank returns the candidates other than senderID ordered from most to
// least due. The input slice is not modified.
func Rank(senderID string, candidates []models.Candidate) []models.Candidate {
	ranked := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.UserID == senderID {
			continue
		}
		ranked = append(ranked, c)
	}

	sort.Slice(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	return ranked
}

// Choose picks the single most due recipient for senderID.
func Choose(senderID string, candidates []models.Candidate) (models.Candidate, error) {
	var best models.Candidate
	found := false

	for _, c := range candidates {
		if c.UserID == senderID {
			continue
		}
		if !found || less(c, best) {
			best = c
			found = true
		}
	}

	if !found {
		return models.Candidate{}, ErrNoEligibleRecipient
	}
	return best, nil
}

// less orders a before b when a is more due
func less(a, b models.Candidate) bool {
	// 1. Higher due score wins
	if sa, sb := a.DueScore(), b.DueScore(); sa != sb {
		return sa > sb
	}

	// 2. Longest-standing member wins
	if !a.DateJoined.Equal(b.DateJoined) {
		return a.DateJoined.Before(b.DateJoined)
	}

	// 3. Stable tie-breaking by user ID (ascending)
	return a.UserID < b.UserID
}
