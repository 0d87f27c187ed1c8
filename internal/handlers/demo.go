// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"techblog/internal/models"
)

// The /api/demo endpoints run against the in-memory mirror, so visitors
// can try the full CRUD surface without touching persisted content. The
// mirror reseeds itself on restart or an explicit reset.

// DemoPostsGet serves the mirrored post listing and single-post lookup
// with the same query parameters as the persisted endpoint.
func (a *API) DemoPostsGet(w http.ResponseWriter, r *http.Request) {
	if identifier := singlePostIdentifier(r.URL.Query()); identifier != "" {
		post, err := a.mirror.Get(identifier)
		if err != nil {
			respondStoreError(w, err, "Post not found")
			return
		}
		respondData(w, http.StatusOK, post)
		return
	}

	result := a.mirror.Query(a.postParams(r.URL.Query()))
	writeJSON(w, http.StatusOK, envelope{
		Success:    true,
		Data:       result.Posts,
		Pagination: &result.Pagination,
	})
}

// DemoPostCreate adds a post to the mirror only.
func (a *API) DemoPostCreate(w http.ResponseWriter, r *http.Request) {
	var input models.PostInput
	if !decodeBody(w, r, &input) {
		return
	}

	post, err := a.mirror.Create(input)
	if err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}
	respondMessage(w, http.StatusCreated, post, "Post created successfully")
}

// DemoPostUpdate modifies a mirrored post.
func (a *API) DemoPostUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	var input models.PostInput
	if !decodeBody(w, r, &input) {
		return
	}

	post, err := a.mirror.Update(id, input)
	if err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}
	respondMessage(w, http.StatusOK, post, "Post updated successfully")
}

// DemoPostDelete removes a mirrored post.
func (a *API) DemoPostDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := a.mirror.Delete(id); err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}
	respondMessage(w, http.StatusOK, nil, "Post deleted successfully")
}

// DemoCategoriesGet lists the mirrored categories with counts.
func (a *API) DemoCategoriesGet(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, a.mirror.Categories())
}

// DemoReset reseeds the mirror.
func (a *API) DemoReset(w http.ResponseWriter, r *http.Request) {
	a.mirror.Reset()
	respondMessage(w, http.StatusOK, nil, "Demo content reset")
}
