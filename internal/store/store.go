// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements durable CRUD over the blog's JSON-backed
// collections. Each entity gets its own store struct over a shared
// database handle. Every mutating operation loads the full collection,
// changes it in memory, and writes it back; there is no locking across
// that sequence, so concurrent writers race last-writer-wins by design.
package store

import (
	"math/rand/v2"
	"time"

	"techblog/internal/database"
	"techblog/internal/models"
)

// newID generates a collection-unique id: Unix seconds with a random
// four-digit suffix, matching the ids already present in the data files.
func newID() int64 {
	return time.Now().Unix()*10000 + rand.Int64N(9000) + 1000
}

func loadPosts(db *database.DB) []models.Post {
	var posts []models.Post
	db.Load(database.Posts, &posts)
	return posts
}

func loadComments(db *database.DB) []models.Comment {
	var comments []models.Comment
	db.Load(database.Comments, &comments)
	return comments
}

func loadCategories(db *database.DB) []models.Category {
	var categories []models.Category
	db.Load(database.Categories, &categories)
	return categories
}

func loadSettings(db *database.DB) models.Settings {
	settings := models.Settings{}
	db.Load(database.Settings, &settings)
	return settings
}

// adjustCommentCount shifts a post's denormalized comment counter by
// delta, floored at zero, and persists the posts collection. A missing
// post is a no-op.
func adjustCommentCount(db *database.DB, postID int64, delta int) error {
	posts := loadPosts(db)
	for i := range posts {
		if posts[i].ID == postID {
			posts[i].Comments += delta
			if posts[i].Comments < 0 {
				posts[i].Comments = 0
			}
			return db.Save(database.Posts, posts)
		}
	}
	return nil
}
