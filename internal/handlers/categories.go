// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// CategoriesGet lists all categories with their published-post counts.
func (a *API) CategoriesGet(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categories.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	respondData(w, http.StatusOK, categories)
}
