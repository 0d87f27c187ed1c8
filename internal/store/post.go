// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"strconv"
	"strings"
	"time"

	"techblog/internal/database"
	"techblog/internal/models"
	"techblog/internal/slug"
)

// PostStore handles all post-related operations against the JSON store.
type PostStore struct {
	db *database.DB
}

// NewPostStore returns a new PostStore backed by the given database.
func NewPostStore(db *database.DB) *PostStore {
	return &PostStore{db: db}
}

// List returns the full posts collection, unfiltered.
func (s *PostStore) List() ([]models.Post, error) {
	return loadPosts(s.db), nil
}

// Get retrieves a post by numeric id or by slug. A successful lookup
// increments the post's view counter and persists it.
func (s *PostStore) Get(identifier string) (*models.Post, error) {
	posts := loadPosts(s.db)
	for i := range posts {
		if strconv.FormatInt(posts[i].ID, 10) == identifier || posts[i].Slug == identifier {
			posts[i].Views++
			if err := s.db.Save(database.Posts, posts); err != nil {
				return nil, err
			}
			p := posts[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create validates the input, derives a unique slug, and appends a new
// post with a fresh id and zeroed counters.
func (s *PostStore) Create(in models.PostInput) (*models.Post, error) {
	if errs := validatePost(in); len(errs) > 0 {
		return nil, errs
	}

	posts := loadPosts(s.db)
	now := time.Now()

	post := models.Post{
		ID:        newID(),
		Title:     strings.TrimSpace(in.Title),
		Content:   strings.TrimSpace(in.Content),
		Category:  in.Category,
		Tags:      in.Tags,
		Author:    "Anonymous",
		Date:      now.Format(models.DateFormat),
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if in.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*in.Excerpt)
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.AuthorEmail != nil {
		post.AuthorEmail = *in.AuthorEmail
	}
	if in.Image != nil {
		post.Image = *in.Image
	}
	if in.Featured != nil {
		post.Featured = *in.Featured
	}
	if in.Published != nil {
		post.Published = *in.Published
	}
	post.MetaTitle = post.Title
	if in.MetaTitle != nil {
		post.MetaTitle = *in.MetaTitle
	}
	post.MetaDescription = post.Excerpt
	if in.MetaDescription != nil {
		post.MetaDescription = *in.MetaDescription
	}

	post.Slug = slug.Unique(slug.Generate(post.Title), func(candidate string) bool {
		return slugExists(posts, candidate, 0)
	})

	posts = append(posts, post)
	if err := s.db.Save(database.Posts, posts); err != nil {
		return nil, err
	}
	return &post, nil
}

// Update validates the input and applies it over the stored post.
// Fields absent from the input keep their prior value. The slug is
// regenerated only when the title change produces a different one, with
// the uniqueness search excluding the post being updated.
func (s *PostStore) Update(id int64, in models.PostInput) (*models.Post, error) {
	if errs := validatePost(in); len(errs) > 0 {
		return nil, errs
	}

	posts := loadPosts(s.db)
	for i := range posts {
		if posts[i].ID != id {
			continue
		}

		newSlug := slug.Generate(in.Title)
		if newSlug != posts[i].Slug {
			newSlug = slug.Unique(newSlug, func(candidate string) bool {
				return slugExists(posts, candidate, id)
			})
		}

		posts[i].Title = strings.TrimSpace(in.Title)
		posts[i].Slug = newSlug
		posts[i].Content = strings.TrimSpace(in.Content)
		posts[i].Category = in.Category
		if in.Excerpt != nil {
			posts[i].Excerpt = strings.TrimSpace(*in.Excerpt)
		}
		if in.Tags != nil {
			posts[i].Tags = in.Tags
		}
		if in.Author != nil {
			posts[i].Author = *in.Author
		}
		if in.AuthorEmail != nil {
			posts[i].AuthorEmail = *in.AuthorEmail
		}
		if in.Image != nil {
			posts[i].Image = *in.Image
		}
		if in.Featured != nil {
			posts[i].Featured = *in.Featured
		}
		if in.Published != nil {
			posts[i].Published = *in.Published
		}
		if in.MetaTitle != nil {
			posts[i].MetaTitle = *in.MetaTitle
		}
		if in.MetaDescription != nil {
			posts[i].MetaDescription = *in.MetaDescription
		}
		posts[i].UpdatedAt = time.Now()

		if err := s.db.Save(database.Posts, posts); err != nil {
			return nil, err
		}
		p := posts[i]
		return &p, nil
	}
	return nil, ErrNotFound
}

// Delete removes a post and cascades to every comment referencing it.
func (s *PostStore) Delete(id int64) error {
	posts := loadPosts(s.db)
	kept := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(posts) {
		return ErrNotFound
	}

	comments := loadComments(s.db)
	keptComments := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if c.PostID != id {
			keptComments = append(keptComments, c)
		}
	}
	if len(keptComments) != len(comments) {
		if err := s.db.Save(database.Comments, keptComments); err != nil {
			return err
		}
	}

	return s.db.Save(database.Posts, kept)
}

func slugExists(posts []models.Post, candidate string, excludeID int64) bool {
	for _, p := range posts {
		if p.Slug == candidate && p.ID != excludeID {
			return true
		}
	}
	return false
}

func validatePost(in models.PostInput) ValidationErrors {
	var errs ValidationErrors
	if strings.TrimSpace(in.Title) == "" {
		errs = append(errs, "Post title is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, "Post content is required")
	}
	if strings.TrimSpace(in.Category) == "" {
		errs = append(errs, "Post category is required")
	}
	return errs
}
