package database

import (
	"fmt"
	"log/slog"
	"time"

	"techblog/internal/models"
)

// ensureSeed writes initial content for any collection whose backing
// file is absent. Existing files are never touched, so a re-open after
// edits is a no-op.
func (db *DB) ensureSeed() error {
	if !db.exists(Posts) {
		if err := db.Save(Posts, SeedPosts()); err != nil {
			return fmt.Errorf("seed posts: %w", err)
		}
		slog.Info("seeded collection", "collection", Posts)
	}
	if !db.exists(Categories) {
		if err := db.Save(Categories, SeedCategories()); err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		slog.Info("seeded collection", "collection", Categories)
	}
	if !db.exists(Comments) {
		if err := db.Save(Comments, []models.Comment{}); err != nil {
			return fmt.Errorf("seed comments: %w", err)
		}
		slog.Info("seeded collection", "collection", Comments)
	}
	if !db.exists(Settings) {
		if err := db.Save(Settings, DefaultSettings()); err != nil {
			return fmt.Errorf("seed settings: %w", err)
		}
		slog.Info("seeded collection", "collection", Settings)
	}
	return nil
}

// SeedPosts returns the starter posts written on first run. Also used by
// the in-memory demo store.
func SeedPosts() []models.Post {
	now := time.Now()
	return []models.Post{
		{
			ID:              1,
			Title:           "Getting Started with Modern JavaScript",
			Slug:            "getting-started-modern-javascript",
			Excerpt:         "Learn the fundamentals of ES6+ JavaScript features and how they can improve your development workflow.",
			Content:         "JavaScript has evolved significantly over the years, and modern JavaScript (ES6+) brings many powerful features that make development more efficient and enjoyable...",
			Category:        "programming",
			Tags:            []string{"javascript", "es6", "programming", "tutorial"},
			Author:          "John Developer",
			AuthorEmail:     "john@example.com",
			Date:            now.AddDate(0, 0, -5).Format(models.DateFormat),
			Image:           "https://images.unsplash.com/photo-1627398242454-45a1465c2479?w=600&h=300&fit=crop",
			Featured:        true,
			Published:       true,
			Comments:        12,
			Views:           1250,
			Likes:           89,
			MetaTitle:       "Getting Started with Modern JavaScript - TechBlog",
			MetaDescription: "Learn ES6+ JavaScript features including arrow functions, template literals, destructuring, and more.",
			CreatedAt:       now.AddDate(0, 0, -5),
			UpdatedAt:       now.AddDate(0, 0, -1),
		},
		{
			ID:              2,
			Title:           "Building Responsive Web Applications",
			Slug:            "building-responsive-web-applications",
			Excerpt:         "Master the art of creating web applications that work seamlessly across all devices and screen sizes.",
			Content:         "Responsive web design is no longer optional. With users accessing websites from various devices, creating responsive applications ensures the best user experience...",
			Category:        "web-development",
			Tags:            []string{"responsive", "css", "mobile", "design"},
			Author:          "John Developer",
			AuthorEmail:     "john@example.com",
			Date:            now.AddDate(0, 0, -10).Format(models.DateFormat),
			Image:           "https://images.unsplash.com/photo-1559028006-448665bd7c7f?w=600&h=300&fit=crop",
			Featured:        false,
			Published:       true,
			Comments:        8,
			Views:           890,
			Likes:           67,
			MetaTitle:       "Building Responsive Web Applications - TechBlog",
			MetaDescription: "Learn how to create responsive web applications using CSS Grid, Flexbox, and mobile-first design principles.",
			CreatedAt:       now.AddDate(0, 0, -10),
			UpdatedAt:       now.AddDate(0, 0, -3),
		},
	}
}

// SeedCategories returns the starter categories written on first run.
func SeedCategories() []models.Category {
	now := time.Now()
	return []models.Category{
		{
			ID:          "programming",
			Name:        "Programming",
			Slug:        "programming",
			Description: "Programming languages, frameworks, and development techniques",
			Image:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=400&h=300&fit=crop",
			Color:       "#3498db",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "web-development",
			Name:        "Web Development",
			Slug:        "web-development",
			Description: "Frontend and backend web development topics",
			Image:       "https://images.unsplash.com/photo-1547658719-da2b51169166?w=400&h=300&fit=crop",
			Color:       "#e74c3c",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "technology",
			Name:        "Technology",
			Slug:        "technology",
			Description: "Latest technology trends and innovations",
			Image:       "https://images.unsplash.com/photo-1518709268805-4e9042af2176?w=400&h=300&fit=crop",
			Color:       "#27ae60",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          "tutorials",
			Name:        "Tutorials",
			Slug:        "tutorials",
			Description: "Step-by-step guides and how-to articles",
			Image:       "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=300&fit=crop",
			Color:       "#f39c12",
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}
}

// DefaultSettings returns the initial site-settings record.
func DefaultSettings() models.Settings {
	now := time.Now().Format(time.RFC3339)
	return models.Settings{
		"siteName":           "TechBlog",
		"siteDescription":    "Exploring technology, sharing knowledge, and building the future",
		"siteUrl":            "https://techblog.example.com",
		"authorName":         "John Developer",
		"authorEmail":        "john@example.com",
		"authorBio":          "Full-stack developer passionate about web technologies and sharing knowledge.",
		"postsPerPage":       10,
		"commentsEnabled":    true,
		"moderateComments":   true,
		"allowGuestComments": true,
		"socialLinks": map[string]string{
			"twitter":  "https://twitter.com/johndeveloper",
			"github":   "https://github.com/johndeveloper",
			"linkedin": "https://linkedin.com/in/johndeveloper",
		},
		"seo": map[string]string{
			"metaTitle":       "TechBlog - Technology and Programming Blog",
			"metaDescription": "Explore the latest in technology, programming tutorials, and web development insights.",
			"metaKeywords":    "technology, programming, web development, tutorials, javascript, go",
		},
		"createdAt": now,
		"updatedAt": now,
	}
}
