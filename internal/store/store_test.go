// store_test.go provides a shared test database helper for the store
// tests. Every test gets its own seeded data directory via t.TempDir.
package store

import (
	"testing"

	"techblog/internal/database"
	"techblog/internal/models"
)

// testDB opens a fresh JSON store in a temporary directory. The seed
// content (2 posts, 4 categories, default settings) is present.
func testDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return db
}

// emptyPosts clears the posts collection.
func emptyPosts(t *testing.T, db *database.DB) {
	t.Helper()
	if err := db.Save(database.Posts, []models.Post{}); err != nil {
		t.Fatalf("empty posts: %v", err)
	}
}

// disableModeration turns off comment moderation so new comments are
// auto-approved.
func disableModeration(t *testing.T, db *database.DB) {
	t.Helper()
	if _, err := NewSettingStore(db).Update(map[string]any{"moderateComments": false}); err != nil {
		t.Fatalf("disable moderation: %v", err)
	}
}

// postInput returns a valid minimal PostInput with the given title.
func postInput(title string) models.PostInput {
	return models.PostInput{
		Title:    title,
		Content:  "Some content.",
		Category: "programming",
	}
}

// commentInput returns a valid CommentInput for the given post.
func commentInput(postID int64) models.CommentInput {
	return models.CommentInput{
		PostID:  postID,
		Author:  "Reader",
		Email:   "reader@example.com",
		Content: "Nice post!",
	}
}

// findPost fetches a post by id without bumping its view counter.
func findPost(t *testing.T, db *database.DB, id int64) *models.Post {
	t.Helper()
	var posts []models.Post
	db.Load(database.Posts, &posts)
	for i := range posts {
		if posts[i].ID == id {
			return &posts[i]
		}
	}
	return nil
}
