// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// Analytics payloads are derived from the whole collection set, so they
// are cached like the post listing and flushed on any write.

// AnalyticsSummary returns post/comment/view totals, per-category stats,
// popular posts, and the latest comments.
func (a *API) AnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	a.cachedAnalytics(w, r, "analytics:summary", func() (any, error) {
		return a.analytics.Summary()
	})
}

// AnalyticsContent returns word count, reading time, title length, and
// tag distribution statistics over published posts.
func (a *API) AnalyticsContent(w http.ResponseWriter, r *http.Request) {
	a.cachedAnalytics(w, r, "analytics:content", func() (any, error) {
		return a.analytics.Content()
	})
}

// AnalyticsEngagement returns engagement rates, comment statistics, and
// the top posts by engagement score.
func (a *API) AnalyticsEngagement(w http.ResponseWriter, r *http.Request) {
	a.cachedAnalytics(w, r, "analytics:engagement", func() (any, error) {
		return a.analytics.Engagement()
	})
}

// AnalyticsSEO returns title length, meta description length, and image
// and tag coverage statistics over published posts.
func (a *API) AnalyticsSEO(w http.ResponseWriter, r *http.Request) {
	a.cachedAnalytics(w, r, "analytics:seo", func() (any, error) {
		return a.analytics.SEO()
	})
}

// cachedAnalytics serves an analytics payload through the response
// cache.
func (a *API) cachedAnalytics(w http.ResponseWriter, r *http.Request, key string, compute func() (any, error)) {
	if cached, ok := a.responseCache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	data, err := compute()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	body, ok := marshalEnvelope(w, envelope{Success: true, Data: data})
	if !ok {
		return
	}
	a.responseCache.Set(r.Context(), key, body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}
