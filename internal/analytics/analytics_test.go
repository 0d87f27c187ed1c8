package analytics

import (
	"strings"
	"testing"

	"techblog/internal/models"
)

func TestSummary(t *testing.T) {
	posts := []models.Post{
		{ID: 1, Category: "go", Published: true, Views: 100, Likes: 10, Comments: 2},
		{ID: 2, Category: "go", Published: true, Views: 50, Likes: 5, Comments: 1},
		{ID: 3, Category: "css", Published: false, Views: 10, Likes: 1, Comments: 0},
	}
	comments := []models.Comment{
		{ID: 1, Approved: true, Date: "2026-01-01 10:00:00"},
		{ID: 2, Approved: false, Date: "2026-01-02 10:00:00"},
		{ID: 3, Approved: true, Date: "2026-01-03 10:00:00"},
	}

	s := Summary(posts, comments)

	if s.TotalPosts != 3 || s.PublishedPosts != 2 || s.DraftPosts != 1 {
		t.Errorf("post totals: %+v", s)
	}
	if s.TotalComments != 2 {
		t.Errorf("totalComments: got %d, want 2 (approved only)", s.TotalComments)
	}
	if s.TotalViews != 160 || s.TotalLikes != 16 {
		t.Errorf("views/likes: got %d/%d", s.TotalViews, s.TotalLikes)
	}

	goStats := s.CategoryStats["go"]
	if goStats.Posts != 2 || goStats.Views != 150 || goStats.Comments != 3 {
		t.Errorf("go category stats: %+v", goStats)
	}

	if len(s.PopularPosts) != 3 || s.PopularPosts[0].ID != 1 {
		t.Errorf("popularPosts: %v", s.PopularPosts)
	}
	if len(s.RecentComments) != 3 || s.RecentComments[0].ID != 3 {
		t.Errorf("recentComments not newest-first")
	}
}

func TestSummaryTruncatesTopLists(t *testing.T) {
	var posts []models.Post
	for i := 1; i <= 8; i++ {
		posts = append(posts, models.Post{ID: int64(i), Views: i, Published: true})
	}
	var comments []models.Comment
	for i := 1; i <= 15; i++ {
		comments = append(comments, models.Comment{ID: int64(i), Date: "2026-01-01 10:00:00"})
	}

	s := Summary(posts, comments)
	if len(s.PopularPosts) != 5 {
		t.Errorf("popularPosts: got %d, want 5", len(s.PopularPosts))
	}
	if s.PopularPosts[0].Views != 8 {
		t.Errorf("top post views: got %d, want 8", s.PopularPosts[0].Views)
	}
	if len(s.RecentComments) != 10 {
		t.Errorf("recentComments: got %d, want 10", len(s.RecentComments))
	}
}

func TestContent(t *testing.T) {
	posts := []models.Post{
		{
			Title:   "Ten",                                           // 3 chars
			Content: "<p>" + strings.Repeat("word ", 400) + "</p>",   // 400 words
			Tags:    []string{"go", "web"},
		},
		{
			Title:   "Short",                                         // 5 chars
			Content: "only three words",                              // 3 words
			Tags:    []string{"go"},
		},
	}

	c := Content(posts)

	if c.WordCountStats.Min != 3 || c.WordCountStats.Max != 400 {
		t.Errorf("word counts: %+v", c.WordCountStats)
	}
	if c.WordCountStats.Average != 201.5 {
		t.Errorf("average words: got %v, want 201.5", c.WordCountStats.Average)
	}
	if c.WordCountStats.Median != 201.5 {
		t.Errorf("median words: got %v, want 201.5", c.WordCountStats.Median)
	}

	// 400 words at 200 wpm is 2 minutes; 3 words floors to 1.
	if c.ReadingTimeStats.Min != 1 || c.ReadingTimeStats.Max != 2 {
		t.Errorf("reading times: %+v", c.ReadingTimeStats)
	}

	if c.TitleLengthStats.Min != 3 || c.TitleLengthStats.Max != 5 {
		t.Errorf("title lengths: %+v", c.TitleLengthStats)
	}

	if c.TotalUniqueTags != 2 {
		t.Errorf("uniqueTags: got %d, want 2", c.TotalUniqueTags)
	}
	if len(c.MostUsedTags) != 2 || c.MostUsedTags[0].Tag != "go" || c.MostUsedTags[0].Count != 2 {
		t.Errorf("mostUsedTags: %v", c.MostUsedTags)
	}
}

func TestContentEmpty(t *testing.T) {
	c := Content(nil)
	if c.WordCountStats.Max != 0 || c.TotalUniqueTags != 0 || len(c.MostUsedTags) != 0 {
		t.Errorf("empty input should produce zero stats: %+v", c)
	}
}

func TestEngagement(t *testing.T) {
	posts := []models.Post{
		{Title: "A", Views: 100, Comments: 5, Likes: 5},  // rate 10%, score 175
		{Title: "B", Views: 200, Comments: 0, Likes: 10}, // rate 5%, score 250
		{Title: "C", Views: 0, Comments: 3, Likes: 0},    // no rate, score 30
	}
	comments := []models.Comment{
		{Approved: true, Content: "1234"},
		{Approved: true, Content: "123456"},
		{Approved: false, Content: strings.Repeat("x", 100)},
	}

	e := Engagement(posts, comments)

	if e.EngagementRateStats.Average != 7.5 {
		t.Errorf("average rate: got %v, want 7.5", e.EngagementRateStats.Average)
	}
	if e.EngagementRateStats.Max != 10 {
		t.Errorf("max rate: got %v, want 10", e.EngagementRateStats.Max)
	}

	if e.CommentStats.TotalComments != 2 {
		t.Errorf("totalComments: got %d, want 2", e.CommentStats.TotalComments)
	}
	if e.CommentStats.AverageLength != 5 {
		t.Errorf("averageLength: got %v, want 5", e.CommentStats.AverageLength)
	}

	if len(e.MostEngagingPosts) != 3 {
		t.Fatalf("mostEngaging: got %d posts", len(e.MostEngagingPosts))
	}
	if e.MostEngagingPosts[0].Title != "B" || e.MostEngagingPosts[0].EngagementScore != 250 {
		t.Errorf("top engaging: %+v", e.MostEngagingPosts[0])
	}
}

func TestSEO(t *testing.T) {
	posts := []models.Post{
		{
			Title:           strings.Repeat("t", 55),  // in the 50-60 band
			MetaDescription: strings.Repeat("m", 155), // in the 150-160 band
			Image:           "https://cdn.example.com/a.jpg",
			Tags:            []string{"go"},
		},
		{
			Title:           strings.Repeat("t", 20),
			MetaDescription: strings.Repeat("m", 40),
		},
	}

	s := SEO(posts)

	if s.TitleAnalysis.AverageLength != 37.5 {
		t.Errorf("title average: got %v, want 37.5", s.TitleAnalysis.AverageLength)
	}
	if s.TitleAnalysis.OptimalLengthCount != 1 || s.TitleAnalysis.OptimalPercentage != 50 {
		t.Errorf("optimal titles: %+v", s.TitleAnalysis)
	}

	if s.MetaDescriptionAnalysis.AverageLength != 97.5 {
		t.Errorf("meta average: got %v, want 97.5", s.MetaDescriptionAnalysis.AverageLength)
	}
	if s.MetaDescriptionAnalysis.OptimalLengthCount != 1 || s.MetaDescriptionAnalysis.OptimalPercentage != 50 {
		t.Errorf("optimal metas: %+v", s.MetaDescriptionAnalysis)
	}

	co := s.ContentOptimization
	if co.PostsWithImages != 1 || co.PostsWithImagesPercentage != 50 {
		t.Errorf("image coverage: %+v", co)
	}
	if co.PostsWithTags != 1 || co.PostsWithTagsPercentage != 50 {
		t.Errorf("tag coverage: %+v", co)
	}
}

func TestSEOEmpty(t *testing.T) {
	s := SEO(nil)
	if s.TitleAnalysis.OptimalLengthCount != 0 || s.ContentOptimization.PostsWithImages != 0 {
		t.Errorf("empty input should produce zero stats: %+v", s)
	}
}

func TestScore(t *testing.T) {
	p := models.Post{Views: 100, Comments: 2, Likes: 4}
	if got := Score(p); got != 140 {
		t.Errorf("Score: got %d, want 140", got)
	}
}
