// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the blog's records as they appear on the wire
// and in the JSON backing files. Field names follow the camelCase keys
// the API has always served.
package models

import (
	"encoding/json"
	"time"
)

// DateFormat is the layout of a post's publish date.
const DateFormat = "2006-01-02"

// Post is a single blog post. IDs are int64 and unique within the posts
// collection; slugs are unique across all posts.
type Post struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Slug            string    `json:"slug"`
	Excerpt         string    `json:"excerpt"`
	Content         string    `json:"content"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	Author          string    `json:"author"`
	AuthorEmail     string    `json:"authorEmail"`
	Date            string    `json:"date"`
	Image           string    `json:"image"`
	Featured        bool      `json:"featured"`
	Published       bool      `json:"published"`
	Comments        int       `json:"comments"`
	Views           int       `json:"views"`
	Likes           int       `json:"likes"`
	MetaTitle       string    `json:"metaTitle"`
	MetaDescription string    `json:"metaDescription"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UnmarshalJSON defaults Published to true when the field is absent, so
// records written before the published flag existed stay visible.
func (p *Post) UnmarshalJSON(data []byte) error {
	type alias Post
	aux := alias{Published: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*p = Post(aux)
	return nil
}

// PublishDate parses the post's date. The zero time is returned for
// missing or malformed dates, which sorts them last under date-desc.
func (p *Post) PublishDate() time.Time {
	t, err := time.Parse(DateFormat, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// HasTag reports whether tag is present in the post's tag set.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PostInput carries the client-supplied fields for creating or updating
// a post. Pointer fields distinguish "absent" from "zero": on update an
// absent field preserves the stored value.
type PostInput struct {
	Title           string   `json:"title"`
	Excerpt         *string  `json:"excerpt"`
	Content         string   `json:"content"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	Author          *string  `json:"author"`
	AuthorEmail     *string  `json:"authorEmail"`
	Image           *string  `json:"image"`
	Featured        *bool    `json:"featured"`
	Published       *bool    `json:"published"`
	MetaTitle       *string  `json:"metaTitle"`
	MetaDescription *string  `json:"metaDescription"`
}
