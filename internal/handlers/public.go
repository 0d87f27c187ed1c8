// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"techblog/internal/markdown"
	"techblog/internal/models"
	"techblog/internal/query"
	"techblog/internal/store"
	"techblog/web"
)

// templates holds the parsed public page templates, loaded once from the
// embedded filesystem.
var templates = template.Must(template.ParseFS(web.TemplateFS, "templates/*.tmpl"))

// Public groups handlers for the server-rendered reading pages.
type Public struct {
	posts    *store.PostStore
	comments *store.CommentStore
	settings *store.SettingStore
}

// NewPublic creates the public page handler group.
func NewPublic(posts *store.PostStore, comments *store.CommentStore, settings *store.SettingStore) *Public {
	return &Public{posts: posts, comments: comments, settings: settings}
}

// siteName reads the configured site name, with a fallback when the
// settings file is unreadable.
func (p *Public) siteName() string {
	settings, err := p.settings.Get()
	if err != nil {
		return "TechBlog"
	}
	return settings.SiteName()
}

// Home renders the first page of published posts.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	posts, err := p.posts.List()
	if err != nil {
		slog.Error("list posts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	limit := query.DefaultLimit
	var description string
	if settings, err := p.settings.Get(); err == nil {
		limit = settings.PostsPerPage()
		description, _ = settings["siteDescription"].(string)
	}

	result := query.Posts(posts, query.Params{Limit: limit})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = templates.ExecuteTemplate(w, "home.html.tmpl", map[string]any{
		"SiteName":    p.siteName(),
		"Description": description,
		"Posts":       result.Posts,
		"Pagination":  result.Pagination,
	})
	if err != nil {
		slog.Error("render home failed", "error", err)
	}
}

// Post renders a single published post with its approved comments. The
// post body is Markdown converted to HTML at request time.
func (p *Public) Post(w http.ResponseWriter, r *http.Request) {
	post, err := p.posts.Get(chi.URLParam(r, "slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if !post.Published {
		// Drafts are reachable only through the API's admin flag.
		http.NotFound(w, r)
		return
	}

	contentHTML, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Error("render post content failed", "error", err, "slug", post.Slug)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var comments []models.Comment
	if all, err := p.comments.List(); err == nil {
		approved := true
		comments = query.Comments(all, query.CommentParams{PostID: post.ID, Approved: &approved})
	}

	metaTitle := post.MetaTitle
	if metaTitle == "" {
		metaTitle = post.Title
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = templates.ExecuteTemplate(w, "post.html.tmpl", map[string]any{
		"SiteName":        p.siteName(),
		"Post":            post,
		"MetaTitle":       metaTitle,
		"MetaDescription": post.MetaDescription,
		"ContentHTML":     template.HTML(contentHTML),
		"Comments":        comments,
	})
	if err != nil {
		slog.Error("render post failed", "error", err, "slug", post.Slug)
	}
}
