// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"time"

	"techblog/internal/database"
	"techblog/internal/models"
)

// SettingStore manages the single site-settings record.
type SettingStore struct {
	db *database.DB
}

// NewSettingStore returns a new SettingStore backed by the given database.
func NewSettingStore(db *database.DB) *SettingStore {
	return &SettingStore{db: db}
}

// Get returns the stored settings record.
func (s *SettingStore) Get() (models.Settings, error) {
	return loadSettings(s.db), nil
}

// Update shallow-merges the submitted keys over the stored record and
// bumps updatedAt. Keys not present in partial are left untouched.
func (s *SettingStore) Update(partial map[string]any) (models.Settings, error) {
	settings := loadSettings(s.db)
	for k, v := range partial {
		settings[k] = v
	}
	settings["updatedAt"] = time.Now().Format(time.RFC3339Nano)

	if err := s.db.Save(database.Settings, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
