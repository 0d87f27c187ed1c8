package store

import (
	"errors"
	"strconv"
	"testing"

	"techblog/internal/models"
)

func TestPostCreate(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	created, err := s.Create(postInput("My First Post"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero id")
	}
	if created.Slug != "my-first-post" {
		t.Errorf("slug: got %q, want %q", created.Slug, "my-first-post")
	}
	if created.Views != 0 || created.Likes != 0 || created.Comments != 0 {
		t.Error("counters must start at zero")
	}
	if !created.Published {
		t.Error("posts default to published")
	}
	if created.MetaTitle != "My First Post" {
		t.Errorf("metaTitle falls back to title, got %q", created.MetaTitle)
	}

	// Persisted.
	if findPost(t, db, created.ID) == nil {
		t.Error("created post not persisted")
	}
}

func TestPostCreateValidation(t *testing.T) {
	s := NewPostStore(testDB(t))

	_, err := s.Create(models.PostInput{Title: "  ", Content: "", Category: ""})
	errs, ok := AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(errs) != 3 {
		t.Errorf("got %d messages, want 3: %v", len(errs), errs)
	}
}

func TestPostCreateSlugCollisions(t *testing.T) {
	db := testDB(t)
	emptyPosts(t, db)
	s := NewPostStore(db)

	want := []string{"same-title", "same-title-1", "same-title-2", "same-title-3"}
	seen := map[string]bool{}
	for i := range want {
		p, err := s.Create(postInput("Same Title"))
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if seen[p.Slug] {
			t.Fatalf("slug %q assigned twice", p.Slug)
		}
		seen[p.Slug] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("expected slug %q to be assigned", w)
		}
	}
}

func TestPostGet(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	created, _ := s.Create(postInput("Viewed Post"))

	t.Run("by id increments views", func(t *testing.T) {
		got, err := s.Get(strconv.FormatInt(created.ID, 10))
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Views != 1 {
			t.Errorf("views: got %d, want 1", got.Views)
		}
	})

	t.Run("by slug increments views", func(t *testing.T) {
		got, err := s.Get("viewed-post")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Views != 2 {
			t.Errorf("views: got %d, want 2", got.Views)
		}
	})

	t.Run("k lookups bump views by k", func(t *testing.T) {
		before := findPost(t, db, created.ID).Views
		const k = 5
		for i := 0; i < k; i++ {
			if _, err := s.Get("viewed-post"); err != nil {
				t.Fatalf("Get: %v", err)
			}
		}
		after := findPost(t, db, created.ID).Views
		if after != before+k {
			t.Errorf("views: got %d, want %d", after, before+k)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Get("no-such-post")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestPostUpdate(t *testing.T) {
	db := testDB(t)
	s := NewPostStore(db)

	excerpt := "the excerpt"
	created, _ := s.Create(models.PostInput{
		Title:    "Original Title",
		Content:  "content",
		Category: "programming",
		Excerpt:  &excerpt,
		Tags:     []string{"go"},
	})

	t.Run("absent fields preserved", func(t *testing.T) {
		updated, err := s.Update(created.ID, postInput("Original Title"))
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Excerpt != "the excerpt" {
			t.Errorf("excerpt lost: got %q", updated.Excerpt)
		}
		if len(updated.Tags) != 1 || updated.Tags[0] != "go" {
			t.Errorf("tags lost: got %v", updated.Tags)
		}
		if updated.Slug != "original-title" {
			t.Errorf("slug changed without title change: %q", updated.Slug)
		}
	})

	t.Run("title change regenerates slug", func(t *testing.T) {
		updated, err := s.Update(created.ID, postInput("Brand New Title"))
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Slug != "brand-new-title" {
			t.Errorf("slug: got %q, want %q", updated.Slug, "brand-new-title")
		}
		if !updated.UpdatedAt.After(created.UpdatedAt) {
			t.Error("updatedAt not bumped")
		}
	})

	t.Run("slug collision during update excludes self", func(t *testing.T) {
		other, _ := s.Create(postInput("Taken Title"))

		// Renaming our post to the taken title must disambiguate.
		updated, err := s.Update(created.ID, postInput("Taken Title"))
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Slug != "taken-title-1" {
			t.Errorf("slug: got %q, want %q", updated.Slug, "taken-title-1")
		}

		// Re-saving the other post with its own title keeps its slug.
		same, err := s.Update(other.ID, postInput("Taken Title"))
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if same.Slug != "taken-title" {
			t.Errorf("self-collision: got %q, want %q", same.Slug, "taken-title")
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		_, err := s.Update(created.ID, models.PostInput{})
		if _, ok := AsValidation(err); !ok {
			t.Errorf("expected ValidationErrors, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := s.Update(999999, postInput("Whatever"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestPostDeleteCascades(t *testing.T) {
	db := testDB(t)
	disableModeration(t, db)
	posts := NewPostStore(db)
	comments := NewCommentStore(db)

	victim, _ := posts.Create(postInput("Doomed Post"))
	survivor, _ := posts.Create(postInput("Surviving Post"))

	comments.Create(commentInput(victim.ID))
	comments.Create(commentInput(victim.ID))
	kept, _ := comments.Create(commentInput(survivor.ID))

	if err := posts.Delete(victim.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if findPost(t, db, victim.ID) != nil {
		t.Error("post still present after delete")
	}

	remaining, _ := comments.List()
	if len(remaining) != 1 {
		t.Fatalf("cascade: got %d comments, want 1", len(remaining))
	}
	if remaining[0].ID != kept.ID {
		t.Error("cascade removed a comment belonging to another post")
	}
}

func TestPostDeleteNotFound(t *testing.T) {
	s := NewPostStore(testDB(t))
	if err := s.Delete(424242); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
