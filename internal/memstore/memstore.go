// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package memstore holds an in-memory mirror of the blog collections,
// seeded with the same content as a fresh on-disk store. Nothing here is
// persisted; the mirror backs the /api/demo preview routes so visitors
// can exercise the full CRUD surface without touching real content.
package memstore

import (
	"strconv"
	"sync"
	"time"

	"techblog/internal/database"
	"techblog/internal/models"
	"techblog/internal/query"
	"techblog/internal/slug"
	"techblog/internal/store"
)

// Mirror is an in-memory copy of the blog collections. Unlike the file
// store it holds shared state across requests, so a mutex guards it.
type Mirror struct {
	mu         sync.Mutex
	posts      []models.Post
	categories []models.Category
	comments   []models.Comment
	settings   models.Settings
	nextID     int64
}

// New returns a mirror seeded with the default blog content.
func New() *Mirror {
	return &Mirror{
		posts:      database.SeedPosts(),
		categories: database.SeedCategories(),
		comments:   []models.Comment{},
		settings:   database.DefaultSettings(),
		nextID:     1000,
	}
}

// Reset discards all changes and reseeds the mirror.
func (m *Mirror) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts = database.SeedPosts()
	m.categories = database.SeedCategories()
	m.comments = []models.Comment{}
	m.settings = database.DefaultSettings()
}

// newID returns a session-unique ID. The mirror is throwaway state, so a
// simple counter is enough; collisions with seed IDs are avoided by
// starting well above them.
func (m *Mirror) newID() int64 {
	m.nextID++
	return time.Now().Unix()*10000 + m.nextID
}

// Query runs the shared query engine over the mirrored posts.
func (m *Mirror) Query(p query.Params) query.Result {
	m.mu.Lock()
	posts := make([]models.Post, len(m.posts))
	copy(posts, m.posts)
	m.mu.Unlock()

	return query.Posts(posts, p)
}

// Get returns a post by numeric ID or slug, bumping its view counter in
// memory only.
func (m *Mirror) Get(identifier string) (models.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.posts {
		p := &m.posts[i]
		if strconv.FormatInt(p.ID, 10) == identifier || p.Slug == identifier {
			p.Views++
			return *p, nil
		}
	}
	return models.Post{}, store.ErrNotFound
}

// Create adds a post to the mirror with the same defaulting and slug
// rules as the persisted store.
func (m *Mirror) Create(input models.PostInput) (models.Post, error) {
	if errs := validatePost(input); len(errs) > 0 {
		return models.Post{}, errs
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	post := models.Post{
		ID:        m.newID(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Tags:      []string{},
		Author:    "Anonymous",
		Date:      now.Format(models.DateFormat),
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Tags != nil {
		post.Tags = input.Tags
	}
	if input.Excerpt != nil {
		post.Excerpt = *input.Excerpt
	}
	if input.Author != nil && *input.Author != "" {
		post.Author = *input.Author
	}
	if input.AuthorEmail != nil {
		post.AuthorEmail = *input.AuthorEmail
	}
	if input.Image != nil {
		post.Image = *input.Image
	}
	if input.Featured != nil {
		post.Featured = *input.Featured
	}
	if input.Published != nil {
		post.Published = *input.Published
	}

	post.Slug = slug.Unique(slug.Generate(post.Title), func(candidate string) bool {
		for _, p := range m.posts {
			if p.Slug == candidate {
				return true
			}
		}
		return false
	})

	post.MetaTitle = post.Title
	if input.MetaTitle != nil && *input.MetaTitle != "" {
		post.MetaTitle = *input.MetaTitle
	}
	post.MetaDescription = post.Excerpt
	if input.MetaDescription != nil && *input.MetaDescription != "" {
		post.MetaDescription = *input.MetaDescription
	}

	m.posts = append(m.posts, post)
	return post, nil
}

// Update modifies a mirrored post in place.
func (m *Mirror) Update(id int64, input models.PostInput) (models.Post, error) {
	if errs := validatePost(input); len(errs) > 0 {
		return models.Post{}, errs
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.posts {
		p := &m.posts[i]
		if p.ID != id {
			continue
		}

		p.Title = input.Title
		p.Content = input.Content
		p.Category = input.Category
		if input.Tags != nil {
			p.Tags = input.Tags
		}
		if input.Excerpt != nil {
			p.Excerpt = *input.Excerpt
		}
		if input.Author != nil {
			p.Author = *input.Author
		}
		if input.AuthorEmail != nil {
			p.AuthorEmail = *input.AuthorEmail
		}
		if input.Image != nil {
			p.Image = *input.Image
		}
		if input.Featured != nil {
			p.Featured = *input.Featured
		}
		if input.Published != nil {
			p.Published = *input.Published
		}

		if generated := slug.Generate(p.Title); generated != p.Slug {
			p.Slug = slug.Unique(generated, func(candidate string) bool {
				for _, other := range m.posts {
					if other.ID != id && other.Slug == candidate {
						return true
					}
				}
				return false
			})
		}

		p.UpdatedAt = time.Now()
		return *p, nil
	}
	return models.Post{}, store.ErrNotFound
}

// Delete removes a mirrored post and its comments.
func (m *Mirror) Delete(id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]models.Post, 0, len(m.posts))
	found := false
	for _, p := range m.posts {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return store.ErrNotFound
	}
	m.posts = kept

	keptComments := make([]models.Comment, 0, len(m.comments))
	for _, c := range m.comments {
		if c.PostID != id {
			keptComments = append(keptComments, c)
		}
	}
	m.comments = keptComments
	return nil
}

// Categories returns the mirrored categories with published-post counts.
func (m *Mirror) Categories() []models.Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Category, len(m.categories))
	copy(out, m.categories)
	for i := range out {
		count := 0
		for _, p := range m.posts {
			if p.Published && p.Category == out[i].ID {
				count++
			}
		}
		out[i].Count = count
	}
	return out
}

// Settings returns a copy of the mirrored settings.
func (m *Mirror) Settings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(models.Settings, len(m.settings))
	for k, v := range m.settings {
		out[k] = v
	}
	return out
}

// validatePost mirrors the persisted store's required-field checks.
func validatePost(input models.PostInput) store.ValidationErrors {
	var errs store.ValidationErrors
	if input.Title == "" {
		errs = append(errs, "Post title is required")
	}
	if input.Content == "" {
		errs = append(errs, "Post content is required")
	}
	if input.Category == "" {
		errs = append(errs, "Post category is required")
	}
	return errs
}
