// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CategoryStat aggregates per-category totals for the analytics summary.
type CategoryStat struct {
	Posts    int `json:"posts"`
	Views    int `json:"views"`
	Comments int `json:"comments"`
}

// AnalyticsSummary is the payload of GET /api/analytics.
type AnalyticsSummary struct {
	TotalPosts     int                     `json:"totalPosts"`
	PublishedPosts int                     `json:"publishedPosts"`
	DraftPosts     int                     `json:"draftPosts"`
	TotalComments  int                     `json:"totalComments"`
	TotalViews     int                     `json:"totalViews"`
	TotalLikes     int                     `json:"totalLikes"`
	CategoryStats  map[string]CategoryStat `json:"categoryStats"`
	PopularPosts   []Post                  `json:"popularPosts"`
	RecentComments []Comment               `json:"recentComments"`
}

// DistributionStats holds min/max/average (and optionally median) over a
// numeric series.
type DistributionStats struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median,omitempty"`
}

// TagCount pairs a tag with its usage count, ordered most-used first.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ContentStats is the payload of GET /api/analytics/content.
type ContentStats struct {
	WordCountStats   DistributionStats `json:"wordCountStats"`
	ReadingTimeStats DistributionStats `json:"readingTimeStats"`
	TitleLengthStats DistributionStats `json:"titleLengthStats"`
	MostUsedTags     []TagCount        `json:"mostUsedTags"`
	TotalUniqueTags  int               `json:"totalUniqueTags"`
}

// LengthAnalysis reports how a text field tracks its optimal length
// band for search snippets.
type LengthAnalysis struct {
	AverageLength      float64 `json:"averageLength"`
	OptimalLengthCount int     `json:"optimalLengthCount"`
	OptimalPercentage  float64 `json:"optimalPercentage"`
}

// ContentOptimization reports image and tag coverage across posts.
type ContentOptimization struct {
	PostsWithImages           int     `json:"postsWithImages"`
	PostsWithImagesPercentage float64 `json:"postsWithImagesPercentage"`
	PostsWithTags             int     `json:"postsWithTags"`
	PostsWithTagsPercentage   float64 `json:"postsWithTagsPercentage"`
}

// SEOStats is the payload of GET /api/analytics/seo.
type SEOStats struct {
	TitleAnalysis           LengthAnalysis      `json:"titleAnalysis"`
	MetaDescriptionAnalysis LengthAnalysis      `json:"metaDescriptionAnalysis"`
	ContentOptimization     ContentOptimization `json:"contentOptimization"`
}

// EngagingPost summarizes a post's engagement for the top list.
type EngagingPost struct {
	Title           string `json:"title"`
	Views           int    `json:"views"`
	Comments        int    `json:"comments"`
	Likes           int    `json:"likes"`
	EngagementScore int    `json:"engagementScore"`
}

// RateStats holds average/median/max of a percentage series.
type RateStats struct {
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
	Max     float64 `json:"max"`
}

// CommentStats aggregates approved-comment metrics.
type CommentStats struct {
	TotalComments int     `json:"totalComments"`
	AverageLength float64 `json:"averageLength"`
}

// EngagementStats is the payload of GET /api/analytics/engagement.
type EngagementStats struct {
	EngagementRateStats RateStats      `json:"engagementRateStats"`
	CommentStats        CommentStats   `json:"commentStats"`
	MostEngagingPosts   []EngagingPost `json:"mostEngagingPosts"`
}
