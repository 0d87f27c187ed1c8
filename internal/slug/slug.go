// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from post titles,
// plus collision disambiguation against existing slugs.
package slug

import (
	"fmt"
	"regexp"
	"strings"
)

// nonSlugChars matches any run of characters that can't appear in a slug.
var nonSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)

// Generate creates a URL-friendly slug from the given title. Every run
// of non-alphanumeric, non-hyphen characters becomes a single hyphen.
// Example: "Hello, World! 2026" → "hello-world-2026"
func Generate(title string) string {
	result := strings.ToLower(strings.TrimSpace(title))
	result = nonSlugChars.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Unique returns base if it is free, otherwise base-1, base-2, … until
// taken reports false for the candidate.
func Unique(base string, taken func(string) bool) string {
	candidate := base
	for counter := 1; taken(candidate); counter++ {
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return candidate
}
