// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tabsort orders postcard detail pages by postcard number.

	tabs := []tabsort.Tab{
		{ID: 1, URL: "https://www.postcrossing.com/postcards/CL-34269"},
		{ID: 2, URL: "https://example.com"},
		{ID: 3, URL: "https://www.postcrossing.com/postcards/CL-100"},
	}
	sorted := tabsort.Sort(tabs) // ids 3, 1, 2

Tabs outside postcrossing.com/postcards/ keep their relative order after
the sorted postcard pages.
*/
package tabsort
