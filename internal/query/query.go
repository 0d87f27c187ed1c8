// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package query implements the stateless filter → sort → paginate
// pipeline over post and comment collections. Given the same input
// collection and parameters it always produces the same output.
package query

import (
	"slices"
	"strings"

	"techblog/internal/models"
)

// Sort orders for post listings.
const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
	SortTitle    = "title"
	SortViews    = "views"
	SortComments = "comments"
)

// DefaultLimit is the page size used when none is given.
const DefaultLimit = 10

// Params selects and orders posts. Zero values mean "no filter".
type Params struct {
	Category string
	Tag      string
	Search   string
	Featured bool
	Admin    bool // include unpublished posts
	Sort     string
	Page     int
	Limit    int
}

// Pagination reports where a page sits within the full match set.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Result is one page of posts plus its pagination block.
type Result struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

// Posts filters, sorts, and paginates the given collection. The input
// slice is not modified.
func Posts(posts []models.Post, p Params) Result {
	matched := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if matches(post, p) {
			matched = append(matched, post)
		}
	}

	sortPosts(matched, p.Sort)

	page := p.Page
	if page < 1 {
		page = 1
	}
	limit := p.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(matched)
	pages := (total + limit - 1) / limit

	offset := (page - 1) * limit
	var pagePosts []models.Post
	if offset < total {
		end := offset + limit
		if end > total {
			end = total
		}
		pagePosts = matched[offset:end]
	} else {
		// A page past the end is an empty page, not an error.
		pagePosts = []models.Post{}
	}

	return Result{
		Posts: pagePosts,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
}

func matches(post models.Post, p Params) bool {
	if !p.Admin && !post.Published {
		return false
	}
	if p.Category != "" && post.Category != p.Category {
		return false
	}
	if p.Tag != "" && !post.HasTag(p.Tag) {
		return false
	}
	if p.Search != "" && !matchesSearch(post, p.Search) {
		return false
	}
	if p.Featured && !post.Featured {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against title,
// excerpt, or content, or a case-insensitive exact match against the
// tag set.
func matchesSearch(post models.Post, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(post.Title), term) ||
		strings.Contains(strings.ToLower(post.Excerpt), term) ||
		strings.Contains(strings.ToLower(post.Content), term) {
		return true
	}
	for _, tag := range post.Tags {
		if strings.ToLower(tag) == term {
			return true
		}
	}
	return false
}

func sortPosts(posts []models.Post, order string) {
	switch order {
	case SortDateAsc:
		slices.SortFunc(posts, func(a, b models.Post) int {
			return a.PublishDate().Compare(b.PublishDate())
		})
	case SortTitle:
		slices.SortFunc(posts, func(a, b models.Post) int {
			return strings.Compare(a.Title, b.Title)
		})
	case SortViews:
		slices.SortFunc(posts, func(a, b models.Post) int {
			return b.Views - a.Views
		})
	case SortComments:
		slices.SortFunc(posts, func(a, b models.Post) int {
			return b.Comments - a.Comments
		})
	default: // date-desc
		slices.SortFunc(posts, func(a, b models.Post) int {
			return b.PublishDate().Compare(a.PublishDate())
		})
	}
}

// CommentParams selects comments. Approved is a tri-state filter:
// nil means "any approval state".
type CommentParams struct {
	PostID   int64
	Approved *bool
}

// Comments filters the collection and returns it sorted newest-first.
// The input slice is not modified.
func Comments(comments []models.Comment, p CommentParams) []models.Comment {
	matched := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if p.PostID != 0 && c.PostID != p.PostID {
			continue
		}
		if p.Approved != nil && c.Approved != *p.Approved {
			continue
		}
		matched = append(matched, c)
	}

	slices.SortFunc(matched, func(a, b models.Comment) int {
		return b.PostedAt().Compare(a.PostedAt())
	})
	return matched
}
