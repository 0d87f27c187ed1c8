// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analytics computes aggregate statistics over the blog's posts
// and comments. All functions are pure: they take full collections and
// return derived numbers, leaving the inputs untouched.
package analytics

import (
	"math"
	"regexp"
	"slices"
	"sort"
	"strings"

	"techblog/internal/models"
)

// wordsPerMinute is the reading speed used for reading-time estimates.
const wordsPerMinute = 200

var htmlTags = regexp.MustCompile(`<[^>]+>`)

// Summary produces the aggregate totals served by GET /api/analytics:
// post/comment/view/like counts, per-category stats, the top five posts
// by views, and the ten most recent comments.
func Summary(posts []models.Post, comments []models.Comment) models.AnalyticsSummary {
	s := models.AnalyticsSummary{
		TotalPosts:    len(posts),
		CategoryStats: make(map[string]models.CategoryStat),
	}

	for _, p := range posts {
		if p.Published {
			s.PublishedPosts++
		}
		s.TotalViews += p.Views
		s.TotalLikes += p.Likes

		stat := s.CategoryStats[p.Category]
		stat.Posts++
		stat.Views += p.Views
		stat.Comments += p.Comments
		s.CategoryStats[p.Category] = stat
	}
	s.DraftPosts = s.TotalPosts - s.PublishedPosts

	for _, c := range comments {
		if c.Approved {
			s.TotalComments++
		}
	}

	popular := slices.Clone(posts)
	slices.SortFunc(popular, func(a, b models.Post) int {
		return b.Views - a.Views
	})
	if len(popular) > 5 {
		popular = popular[:5]
	}
	s.PopularPosts = popular

	recent := slices.Clone(comments)
	slices.SortFunc(recent, func(a, b models.Comment) int {
		return b.PostedAt().Compare(a.PostedAt())
	})
	if len(recent) > 10 {
		recent = recent[:10]
	}
	s.RecentComments = recent

	return s
}

// Content analyzes the posts' text: word counts, estimated reading
// times, title lengths, and tag usage.
func Content(posts []models.Post) models.ContentStats {
	var wordCounts, readingTimes, titleLengths []int
	tagFreq := make(map[string]int)

	for _, p := range posts {
		words := len(strings.Fields(htmlTags.ReplaceAllString(p.Content, "")))
		wordCounts = append(wordCounts, words)

		minutes := words / wordsPerMinute
		if minutes < 1 {
			minutes = 1
		}
		readingTimes = append(readingTimes, minutes)

		titleLengths = append(titleLengths, len(p.Title))

		for _, tag := range p.Tags {
			tagFreq[tag]++
		}
	}

	return models.ContentStats{
		WordCountStats:   distribution(wordCounts, true),
		ReadingTimeStats: distribution(readingTimes, false),
		TitleLengthStats: distribution(titleLengths, false),
		MostUsedTags:     topTags(tagFreq, 10),
		TotalUniqueTags:  len(tagFreq),
	}
}

// Engagement analyzes reader interaction: the per-post engagement rate
// (comments plus likes per hundred views), approved-comment stats, and
// the five posts with the highest weighted engagement score.
func Engagement(posts []models.Post, comments []models.Comment) models.EngagementStats {
	var rates []float64
	for _, p := range posts {
		if p.Views > 0 {
			rates = append(rates, float64(p.Comments+p.Likes)/float64(p.Views)*100)
		}
	}

	var totalLen, approved int
	for _, c := range comments {
		if c.Approved {
			approved++
			totalLen += len(c.Content)
		}
	}
	cs := models.CommentStats{TotalComments: approved}
	if approved > 0 {
		cs.AverageLength = round2(float64(totalLen) / float64(approved))
	}

	ranked := make([]models.EngagingPost, 0, len(posts))
	for _, p := range posts {
		ranked = append(ranked, models.EngagingPost{
			Title:           p.Title,
			Views:           p.Views,
			Comments:        p.Comments,
			Likes:           p.Likes,
			EngagementScore: Score(p),
		})
	}
	slices.SortFunc(ranked, func(a, b models.EngagingPost) int {
		return b.EngagementScore - a.EngagementScore
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	return models.EngagementStats{
		EngagementRateStats: rateStats(rates),
		CommentStats:        cs,
		MostEngagingPosts:   ranked,
	}
}

// Optimal length bands for search result snippets.
const (
	optimalTitleMin = 50
	optimalTitleMax = 60
	optimalMetaMin  = 150
	optimalMetaMax  = 160
)

// SEO analyzes search optimization signals: how many titles and meta
// descriptions fall inside their optimal length bands, and what share
// of posts carry an image and tags.
func SEO(posts []models.Post) models.SEOStats {
	if len(posts) == 0 {
		return models.SEOStats{}
	}

	var titleLenSum, metaLenSum int
	var optimalTitles, optimalMetas, withImages, withTags int
	for _, p := range posts {
		titleLen := len(p.Title)
		titleLenSum += titleLen
		if titleLen >= optimalTitleMin && titleLen <= optimalTitleMax {
			optimalTitles++
		}

		metaLen := len(p.MetaDescription)
		metaLenSum += metaLen
		if metaLen >= optimalMetaMin && metaLen <= optimalMetaMax {
			optimalMetas++
		}

		if p.Image != "" {
			withImages++
		}
		if len(p.Tags) > 0 {
			withTags++
		}
	}

	total := float64(len(posts))
	return models.SEOStats{
		TitleAnalysis: models.LengthAnalysis{
			AverageLength:      round2(float64(titleLenSum) / total),
			OptimalLengthCount: optimalTitles,
			OptimalPercentage:  round2(float64(optimalTitles) / total * 100),
		},
		MetaDescriptionAnalysis: models.LengthAnalysis{
			AverageLength:      round2(float64(metaLenSum) / total),
			OptimalLengthCount: optimalMetas,
			OptimalPercentage:  round2(float64(optimalMetas) / total * 100),
		},
		ContentOptimization: models.ContentOptimization{
			PostsWithImages:           withImages,
			PostsWithImagesPercentage: round2(float64(withImages) / total * 100),
			PostsWithTags:             withTags,
			PostsWithTagsPercentage:   round2(float64(withTags) / total * 100),
		},
	}
}

// Score is the weighted engagement score of a post: each comment counts
// ten views' worth, each like five.
func Score(p models.Post) int {
	return p.Views + p.Comments*10 + p.Likes*5
}

func distribution(values []int, withMedian bool) models.DistributionStats {
	if len(values) == 0 {
		return models.DistributionStats{}
	}
	d := models.DistributionStats{Min: values[0], Max: values[0]}
	sum := 0
	for _, v := range values {
		if v < d.Min {
			d.Min = v
		}
		if v > d.Max {
			d.Max = v
		}
		sum += v
	}
	d.Average = round2(float64(sum) / float64(len(values)))
	if withMedian {
		d.Median = median(values)
	}
	return d
}

func median(values []int) float64 {
	sorted := slices.Clone(values)
	sort.Ints(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return round2(float64(sorted[n/2-1]+sorted[n/2]) / 2)
}

func rateStats(rates []float64) models.RateStats {
	if len(rates) == 0 {
		return models.RateStats{}
	}
	sorted := slices.Clone(rates)
	sort.Float64s(sorted)

	sum := 0.0
	for _, r := range sorted {
		sum += r
	}
	var med float64
	n := len(sorted)
	if n%2 == 1 {
		med = sorted[n/2]
	} else {
		med = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return models.RateStats{
		Average: round2(sum / float64(n)),
		Median:  round2(med),
		Max:     round2(sorted[n-1]),
	}
}

func topTags(freq map[string]int, limit int) []models.TagCount {
	tags := make([]models.TagCount, 0, len(freq))
	for tag, count := range freq {
		tags = append(tags, models.TagCount{Tag: tag, Count: count})
	}
	slices.SortFunc(tags, func(a, b models.TagCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Tag, b.Tag)
	})
	if len(tags) > limit {
		tags = tags[:limit]
	}
	return tags
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
