// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// maxUploadSize is the maximum allowed media upload size (10 MB).
const maxUploadSize = 10 << 20

// allowedMediaTypes defines MIME types accepted for post images.
var allowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaUpload stores a post image in object storage and returns its
// public URL for use as the post's image field. Answers 503 when no
// storage backend is configured.
func (a *API) MediaUpload(w http.ResponseWriter, r *http.Request) {
	if a.storageClient == nil {
		respondError(w, http.StatusServiceUnavailable, "Media storage is not configured")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 10 MB")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Missing file field")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedMediaTypes[contentType] {
		respondError(w, http.StatusUnsupportedMediaType, "Unsupported file type")
		return
	}

	key, err := a.storageClient.Upload(r.Context(), header.Filename, contentType, file, header.Size)
	if err != nil {
		slog.Error("media upload failed", "error", err, "filename", header.Filename)
		respondError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	respondMessage(w, http.StatusCreated, map[string]string{
		"key": key,
		"url": a.storageClient.FileURL(key),
	}, "File uploaded successfully")
}
