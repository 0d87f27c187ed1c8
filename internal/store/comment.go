// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"net/mail"
	"strings"
	"time"

	"techblog/internal/database"
	"techblog/internal/models"
)

// CommentStore handles comment lifecycle operations. It also maintains
// the owning post's denormalized comment counter: the counter always
// equals the number of currently-approved comments for that post.
type CommentStore struct {
	db *database.DB
}

// NewCommentStore returns a new CommentStore backed by the given database.
func NewCommentStore(db *database.DB) *CommentStore {
	return &CommentStore{db: db}
}

// List returns the full comments collection, unfiltered.
func (s *CommentStore) List() ([]models.Comment, error) {
	return loadComments(s.db), nil
}

// Create validates the input and appends a new comment. When comment
// moderation is enabled in settings the comment starts unapproved;
// otherwise it is auto-approved and the post's counter is incremented.
func (s *CommentStore) Create(in models.CommentInput) (*models.Comment, error) {
	if errs := validateComment(in); len(errs) > 0 {
		return nil, errs
	}

	comments := loadComments(s.db)
	settings := loadSettings(s.db)
	now := time.Now()

	comment := models.Comment{
		ID:        newID(),
		PostID:    in.PostID,
		Author:    strings.TrimSpace(in.Author),
		Email:     strings.TrimSpace(in.Email),
		Website:   strings.TrimSpace(in.Website),
		Content:   strings.TrimSpace(in.Content),
		Date:      now.Format(models.CommentDateFormat),
		Approved:  !settings.ModerateComments(),
		IP:        in.IP,
		UserAgent: in.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	comments = append(comments, comment)
	if err := s.db.Save(database.Comments, comments); err != nil {
		return nil, err
	}

	if comment.Approved {
		if err := adjustCommentCount(s.db, comment.PostID, 1); err != nil {
			return nil, err
		}
	}
	return &comment, nil
}

// Approve transitions a comment from unapproved to approved and bumps
// the owning post's counter. Approving an already-approved comment
// returns ErrAlreadyApproved; the transition is one-way.
func (s *CommentStore) Approve(id int64) error {
	comments := loadComments(s.db)
	for i := range comments {
		if comments[i].ID != id {
			continue
		}
		if comments[i].Approved {
			return ErrAlreadyApproved
		}
		comments[i].Approved = true
		comments[i].UpdatedAt = time.Now()
		if err := s.db.Save(database.Comments, comments); err != nil {
			return err
		}
		return adjustCommentCount(s.db, comments[i].PostID, 1)
	}
	return ErrNotFound
}

// Delete removes a comment permanently. If it was approved, the owning
// post's counter is decremented (floored at zero).
func (s *CommentStore) Delete(id int64) error {
	comments := loadComments(s.db)
	var deleted *models.Comment
	kept := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if c.ID == id {
			d := c
			deleted = &d
			continue
		}
		kept = append(kept, c)
	}
	if deleted == nil {
		return ErrNotFound
	}

	if err := s.db.Save(database.Comments, kept); err != nil {
		return err
	}
	if deleted.Approved {
		return adjustCommentCount(s.db, deleted.PostID, -1)
	}
	return nil
}

func validateComment(in models.CommentInput) ValidationErrors {
	var errs ValidationErrors
	if in.PostID == 0 {
		errs = append(errs, "Post ID is required")
	}
	if strings.TrimSpace(in.Author) == "" {
		errs = append(errs, "Author name is required")
	}
	if !validEmail(in.Email) {
		errs = append(errs, "Valid email is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, "Comment content is required")
	}
	return errs
}

// validEmail accepts a bare address like user@example.com. Display
// names and angle brackets are rejected.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
