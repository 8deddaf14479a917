// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command tabsort reads URLs one per line from stdin and prints them with
// postcard pages first, ascending by postcard number.
//
//	pbpaste | go run ./cmd/tabsort
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/danielhkuo/postcrossing/tabsort"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		slog.Error("tabsort failed", "error", err)
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	var tabs []tabsort.Tab
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tabs = append(tabs, tabsort.Tab{ID: len(tabs), URL: line})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading urls: %w", err)
	}

	w := bufio.NewWriter(out)
	for _, t := range tabsort.Sort(tabs) {
		fmt.Fprintln(w, t.URL)
	}
	return w.Flush()
}
