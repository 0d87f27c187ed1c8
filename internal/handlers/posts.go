// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"techblog/internal/models"
	"techblog/internal/query"
)

// postParams builds query engine parameters from the request. The page
// size falls back to the postsPerPage setting when no limit is given.
func (a *API) postParams(values url.Values) query.Params {
	p := query.Params{
		Category: values.Get("category"),
		Tag:      values.Get("tag"),
		Search:   values.Get("search"),
		Featured: values.Get("featured") == "true",
		Admin:    values.Get("admin") == "true",
		Sort:     values.Get("sort"),
	}
	p.Page, _ = strconv.Atoi(values.Get("page"))
	p.Limit, _ = strconv.Atoi(values.Get("limit"))

	if p.Limit < 1 {
		if settings, err := a.settings.Get(); err == nil {
			p.Limit = settings.PostsPerPage()
		}
	}
	return p
}

// PostsGet serves both the filtered post listing and single-post lookup.
// A request carrying ?id or ?slug returns one post (bumping its view
// counter); anything else goes through the query engine.
func (a *API) PostsGet(w http.ResponseWriter, r *http.Request) {
	if identifier := singlePostIdentifier(r.URL.Query()); identifier != "" {
		post, err := a.posts.Get(identifier)
		if err != nil {
			respondStoreError(w, err, "Post not found")
			return
		}
		respondData(w, http.StatusOK, post)
		return
	}

	// Listings are the hottest endpoint; serve from the response cache
	// when possible. View bumps on single posts keep those uncached.
	cacheKey := "posts?" + r.URL.Query().Encode()
	if cached, ok := a.responseCache.Get(r.Context(), cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	posts, err := a.posts.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load posts")
		return
	}

	result := query.Posts(posts, a.postParams(r.URL.Query()))

	body, ok := marshalEnvelope(w, envelope{
		Success:    true,
		Data:       result.Posts,
		Pagination: &result.Pagination,
	})
	if !ok {
		return
	}
	a.responseCache.Set(r.Context(), cacheKey, body)
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// singlePostIdentifier returns the id or slug parameter, preferring id.
func singlePostIdentifier(values url.Values) string {
	if id := values.Get("id"); id != "" {
		return id
	}
	return values.Get("slug")
}

// PostCreate adds a new post from a JSON body.
func (a *API) PostCreate(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if !decodeBody(w, r, &input) {
		return
	}

	post, err := a.posts.Create(input)
	if err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusCreated, post, "Post created successfully")
}

// PostUpdate replaces an existing post's content. The target is named by
// the id query parameter.
func (a *API) PostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	var input models.PostInput
	if !decodeBody(w, r, &input) {
		return
	}

	post, err := a.posts.Update(id, input)
	if err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusOK, post, "Post updated successfully")
}

// PostDelete removes a post and its comments.
func (a *API) PostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := a.posts.Delete(id); err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusOK, nil, "Post deleted successfully")
}

// requireID parses the id query parameter, answering 400 when it is
// missing or not numeric.
func requireID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("id")
	if raw == "" {
		respondError(w, http.StatusBadRequest, "Missing id parameter")
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return id, true
}
