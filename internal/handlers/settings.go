// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "net/http"

// SettingsGet returns the full settings document.
func (a *API) SettingsGet(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settings.Get()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	respondData(w, http.StatusOK, settings)
}

// SettingsUpdate shallow-merges the request body into the settings
// document. Keys absent from the body are left untouched.
func (a *API) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var partial map[string]any
	if !decodeBody(w, r, &partial) {
		return
	}

	settings, err := a.settings.Update(partial)
	if err != nil {
		respondStoreError(w, err, "Settings not found")
		return
	}

	a.invalidate(r)
	respondMessage(w, http.StatusOK, settings, "Settings updated successfully")
}
