// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"

	"techblog/internal/middleware"
	"techblog/internal/models"
	"techblog/internal/query"
)

// CommentsGet lists comments filtered by postId and approved, newest
// first.
func (a *API) CommentsGet(w http.ResponseWriter, r *http.Request) {
	comments, err := a.comments.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load comments")
		return
	}

	var p query.CommentParams
	values := r.URL.Query()
	if raw := values.Get("postId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid postId parameter")
			return
		}
		p.PostID = id
	}
	if raw := values.Get("approved"); raw != "" {
		approved := raw == "true"
		p.Approved = &approved
	}

	respondData(w, http.StatusOK, query.Comments(comments, p))
}

// CommentCreate submits a new comment. The client's address and agent
// are recorded for moderation; whether the comment appears immediately
// depends on the moderateComments setting.
func (a *API) CommentCreate(w http.ResponseWriter, r *http.Request) {
	var input models.CommentInput
	if !decodeBody(w, r, &input) {
		return
	}
	input.IP = middleware.ClientIP(r)
	input.UserAgent = r.UserAgent()

	comment, err := a.comments.Create(input)
	if err != nil {
		respondStoreError(w, err, "Post not found")
		return
	}

	a.invalidate(r)

	message := "Comment submitted and awaiting moderation"
	if comment.Approved {
		message = "Comment posted successfully"
	}
	respondMessage(w, http.StatusCreated, comment, message)
}

// CommentUpdate handles moderation actions. Only action=approve is
// supported; approval is one-way.
func (a *API) CommentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if action := r.URL.Query().Get("action"); action != "approve" {
		respondError(w, http.StatusBadRequest, "Unsupported action")
		return
	}

	if err := a.comments.Approve(id); err != nil {
		respondStoreError(w, err, "Comment not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusOK, nil, "Comment approved successfully")
}

// CommentDelete removes a comment.
func (a *API) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := requireID(w, r)
	if !ok {
		return
	}

	if err := a.comments.Delete(id); err != nil {
		respondStoreError(w, err, "Comment not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusOK, nil, "Comment deleted successfully")
}
