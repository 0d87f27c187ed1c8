// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Settings is the single site-settings record. It is a free-form map so
// that updates can shallow-merge arbitrary submitted keys over the stored
// record; the typed accessors below cover the keys the server itself
// consults.
type Settings map[string]any

// ModerateComments reports whether new comments require manual approval.
// Defaults to true when the key is missing, matching the store's seed.
func (s Settings) ModerateComments() bool {
	v, ok := s["moderateComments"].(bool)
	if !ok {
		return true
	}
	return v
}

// PostsPerPage returns the default page size for post listings.
func (s Settings) PostsPerPage() int {
	// JSON numbers decode as float64.
	if v, ok := s["postsPerPage"].(float64); ok && v > 0 {
		return int(v)
	}
	if v, ok := s["postsPerPage"].(int); ok && v > 0 {
		return v
	}
	return 10
}

// SiteName returns the configured site name, or empty.
func (s Settings) SiteName() string {
	v, _ := s["siteName"].(string)
	return v
}
