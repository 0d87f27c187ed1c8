// Package database manages the flat-file JSON store backing the blog.
// Each collection (posts, categories, comments, settings) lives in its
// own pretty-printed JSON document under a single data directory. There
// is no cross-file transactionality: every save rewrites one whole file.
package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Collection names. Each maps to <name>.json in the data directory.
const (
	Posts      = "posts"
	Categories = "categories"
	Comments   = "comments"
	Settings   = "settings"
)

// DB is a handle to the JSON data directory. Construct one per process
// with Open; tests point it at a temporary directory.
type DB struct {
	dir string
}

// Open ensures the data directory exists, seeds any missing collection
// files, and returns a ready-to-use handle.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("database mkdir: %w", err)
	}
	db := &DB{dir: dir}
	if err := db.ensureSeed(); err != nil {
		return nil, err
	}
	slog.Info("database opened", "dir", dir)
	return db, nil
}

// Dir returns the data directory path.
func (db *DB) Dir() string {
	return db.dir
}

func (db *DB) path(collection string) string {
	return filepath.Join(db.dir, collection+".json")
}

// Load reads a collection into v. A missing or unparsable backing file
// is not an error: v is left at its zero value so callers always see an
// empty collection rather than a failure.
func (db *DB) Load(collection string, v any) error {
	data, err := os.ReadFile(db.path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		slog.Warn("collection unreadable, treating as empty", "collection", collection, "error", err)
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("collection unparsable, treating as empty", "collection", collection, "error", err)
		return nil
	}
	return nil
}

// Save overwrites a collection with v, pretty-printed. The write goes
// through a temp file and rename so readers never observe a partial
// document. Failure leaves the previous file intact.
func (db *DB) Save(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	tmp, err := os.CreateTemp(db.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	if err := os.Rename(tmp.Name(), db.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", collection, err)
	}
	return nil
}

// exists reports whether a collection's backing file is present.
func (db *DB) exists(collection string) bool {
	_, err := os.Stat(db.path(collection))
	return err == nil
}
