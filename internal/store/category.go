// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"techblog/internal/database"
	"techblog/internal/models"
)

// CategoryStore reads the categories collection. The Count field is
// derived from the posts collection on every read, never stored.
type CategoryStore struct {
	db *database.DB
}

// NewCategoryStore returns a new CategoryStore backed by the given database.
func NewCategoryStore(db *database.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// List returns all categories with their published-post counts.
func (s *CategoryStore) List() ([]models.Category, error) {
	categories := loadCategories(s.db)
	posts := loadPosts(s.db)

	for i := range categories {
		count := 0
		for _, p := range posts {
			if p.Category == categories[i].ID && p.Published {
				count++
			}
		}
		categories[i].Count = count
	}
	return categories, nil
}
