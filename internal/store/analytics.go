// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"techblog/internal/analytics"
	"techblog/internal/database"
	"techblog/internal/models"
)

// AnalyticsStore assembles analytics payloads from the current state of
// the posts and comments collections.
type AnalyticsStore struct {
	db *database.DB
}

// NewAnalyticsStore returns a new AnalyticsStore backed by the given database.
func NewAnalyticsStore(db *database.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// Summary returns the aggregate blog totals.
func (s *AnalyticsStore) Summary() (models.AnalyticsSummary, error) {
	return analytics.Summary(loadPosts(s.db), loadComments(s.db)), nil
}

// Content returns word-count, reading-time, and tag statistics.
func (s *AnalyticsStore) Content() (models.ContentStats, error) {
	return analytics.Content(loadPosts(s.db)), nil
}

// Engagement returns reader-engagement statistics.
func (s *AnalyticsStore) Engagement() (models.EngagementStats, error) {
	return analytics.Engagement(loadPosts(s.db), loadComments(s.db)), nil
}

// SEO returns search-optimization statistics.
func (s *AnalyticsStore) SEO() (models.SEOStats, error) {
	return analytics.SEO(loadPosts(s.db)), nil
}
