package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"techblog/internal/cache"
	"techblog/internal/database"
	"techblog/internal/handlers"
	"techblog/internal/memstore"
	"techblog/internal/router"
	"techblog/internal/store"
)

// newCachedRouter wires a router whose API uses a miniredis-backed
// response cache.
func newCachedRouter(t *testing.T) (chi.Router, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	db, err := database.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	api := handlers.NewAPI(
		store.NewPostStore(db),
		store.NewCommentStore(db),
		store.NewCategoryStore(db),
		store.NewSettingStore(db),
		store.NewAnalyticsStore(db),
		memstore.New(),
		cache.NewResponseCache(client, cache.DefaultResponseTTL),
		nil,
	)
	public := handlers.NewPublic(store.NewPostStore(db), store.NewCommentStore(db), store.NewSettingStore(db))

	return router.New(api, public), mr
}

func TestPostsListIsCached(t *testing.T) {
	r, mr := newCachedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	keys := mr.Keys()
	if len(keys) != 1 {
		t.Fatalf("cached keys: got %v, want one posts entry", keys)
	}

	// A second identical request is served from the cache byte-for-byte.
	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	if second.Body.String() != rr.Body.String() {
		t.Error("cached response differs from original")
	}
}

func TestWritesInvalidateCache(t *testing.T) {
	r, mr := newCachedRouter(t)

	// Warm the cache.
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/analytics/summary", nil))
	if len(mr.Keys()) != 2 {
		t.Fatalf("cached keys: got %v, want 2", mr.Keys())
	}

	body, _ := json.Marshal(map[string]any{
		"title":    "Cache Buster",
		"content":  "Invalidate everything.",
		"category": "technology",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want 201 (body %s)", rr.Code, rr.Body.String())
	}

	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("cache keys after write: got %v, want none", keys)
	}

	// The fresh listing includes the new post.
	fresh := httptest.NewRecorder()
	r.ServeHTTP(fresh, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	var env struct {
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(fresh.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal listing: %v", err)
	}
	if env.Pagination.Total != 3 {
		t.Errorf("total after create: got %d, want 3", env.Pagination.Total)
	}
}

func TestSinglePostBypassesCache(t *testing.T) {
	r, mr := newCachedRouter(t)

	// View bumps must reach the store on every request, so single-post
	// lookups are never cached.
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts?id=1", nil))
	if keys := mr.Keys(); len(keys) != 0 {
		t.Errorf("cache keys after single lookup: got %v, want none", keys)
	}
}
