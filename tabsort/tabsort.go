// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tabsort

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// PostcardPath marks a postcard detail page.
const PostcardPath = "postcrossing.com/postcards/"

// Tab is one open page. ID is whatever the host uses to move it.
type Tab struct {
	ID  int
	URL string
}

// IsPostcard reports whether the tab is a postcard detail page.
func (t Tab) IsPostcard() bool {
	return strings.Contains(t.URL, PostcardPath)
}

// Number extracts the postcard number from the URL, e.g. 34269 from
// ".../postcards/CL-34269". Leading digits after the first '-' are used.
func Number(url string) (int, bool) {
	_, rest, found := strings.Cut(url, "-")
	if !found {
		return 0, false
	}
	rest, _, _ = strings.Cut(rest, "-")

	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Sort returns the tabs with postcard pages first, ascending by postcard
// number, followed by every other tab in its original order. Postcard pages
// without a number sort after the numbered ones. The input is not modified.
func Sort(tabs []Tab) []Tab {
	out := make([]Tab, 0, len(tabs))
	var rest []Tab
	for _, t := range tabs {
		if t.IsPostcard() {
			out = append(out, t)
		} else {
			rest = append(rest, t)
		}
	}
	if len(out) == 0 {
		return slices.Clone(tabs)
	}

	slices.SortStableFunc(out, func(a, b Tab) int {
		na, okA := Number(a.URL)
		nb, okB := Number(b.URL)
		switch {
		case okA && okB:
			return cmp.Compare(na, nb)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})

	return append(out, rest...)
}
