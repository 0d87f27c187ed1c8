// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// CommentDateFormat is the layout of a comment's date field.
const CommentDateFormat = "2006-01-02 15:04:05"

// Comment is a reader comment on a post. PostID is a soft reference to
// Post.ID; the store cascades deletes manually. Approval is a one-way
// transition from false to true.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Website   string    `json:"website"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	Approved  bool      `json:"approved"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PostedAt parses the comment's date. Zero time on malformed input.
func (c *Comment) PostedAt() time.Time {
	t, err := time.Parse(CommentDateFormat, c.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CommentInput carries the client-supplied fields for a new comment.
// IP and user agent are filled in by the handler from the request.
type CommentInput struct {
	PostID    int64  `json:"postId"`
	Author    string `json:"author"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Content   string `json:"content"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}
