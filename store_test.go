package s11a

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "test_site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(slug string) Post {
	return Post{
		Slug:      slug,
		Title:     "Test Post",
		Date:      "2024-01-15",
		Tags:      []string{"go", "testing"},
		Category:  "Technology",
		Excerpt:   "A test post excerpt",
		Thumbnail: "/public/uploads/test.jpg",
		Content:   "# Test Content\n\nThis is test content.",
		Published: true,
	}
}

func TestSaveAndGetPost(t *testing.T) {
	s := setupTestStore(t)

	post := testPost("test-post")
	if err := s.SavePost(post); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	got, err := s.GetPost("test-post")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Slug != post.Slug {
		t.Errorf("Slug = %q, want %q", got.Slug, post.Slug)
	}
	if got.Title != post.Title {
		t.Errorf("Title = %q, want %q", got.Title, post.Title)
	}
	if got.Category != post.Category {
		t.Errorf("Category = %q, want %q", got.Category, post.Category)
	}
	if got.Excerpt != post.Excerpt {
		t.Errorf("Excerpt = %q, want %q", got.Excerpt, post.Excerpt)
	}
	if got.Thumbnail != post.Thumbnail {
		t.Errorf("Thumbnail = %q, want %q", got.Thumbnail, post.Thumbnail)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" || got.Tags[1] != "testing" {
		t.Errorf("Tags = %v, want [go testing]", got.Tags)
	}
	if got.Link != "/blog/test-post" {
		t.Errorf("Link = %q, want /blog/test-post", got.Link)
	}
}

func TestGetPostExcludesDrafts(t *testing.T) {
	s := setupTestStore(t)

	draft := testPost("draft-post")
	draft.Published = false
	if err := s.SavePost(draft); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}

	if _, err := s.GetPost("draft-post"); err == nil {
		t.Error("GetPost should not return unpublished posts")
	}
	got, err := s.GetPostAny("draft-post")
	if err != nil {
		t.Fatalf("GetPostAny failed: %v", err)
	}
	if got.Published {
		t.Error("Published = true, want false")
	}
}

func TestListPostsByTag(t *testing.T) {
	s := setupTestStore(t)

	a := testPost("post-a")
	a.Tags = []string{"go"}
	b := testPost("post-b")
	b.Tags = []string{"rust"}
	for _, p := range []Post{a, b} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListPosts("go")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 1 || got[0].Slug != "post-a" {
		t.Errorf("ListPosts(go) = %v, want only post-a", got)
	}
}

func TestListPostsOrdersByDateDescending(t *testing.T) {
	s := setupTestStore(t)

	older := testPost("older")
	older.Date = "2023-06-01"
	newer := testPost("newer")
	newer.Date = "2024-06-01"
	for _, p := range []Post{older, newer} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListPosts("")
	if err != nil {
		t.Fatalf("ListPosts failed: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "newer" {
		t.Errorf("posts not ordered by date descending: %v", got)
	}
}

func TestListCategories(t *testing.T) {
	s := setupTestStore(t)

	a := testPost("post-a")
	a.Category = "Technology"
	b := testPost("post-b")
	b.Category = "Food"
	c := testPost("post-c")
	c.Category = ""
	for _, p := range []Post{a, b, c} {
		if err := s.SavePost(p); err != nil {
			t.Fatalf("SavePost failed: %v", err)
		}
	}

	got, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}
	if len(got) != 2 || got[0] != "Food" || got[1] != "Technology" {
		t.Errorf("ListCategories = %v, want [Food Technology]", got)
	}
}

func TestDeletePost(t *testing.T) {
	s := setupTestStore(t)

	if err := s.SavePost(testPost("doomed")); err != nil {
		t.Fatalf("SavePost failed: %v", err)
	}
	if err := s.DeletePost("doomed"); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}
	if _, err := s.GetPostAny("doomed"); err == nil {
		t.Error("post should be gone after delete")
	}
}

func TestSaveAndListImages(t *testing.T) {
	s := setupTestStore(t)

	img := Image{
		Filename:     "sunset.jpg",
		OriginalName: "IMG_1234.HEIC",
		Width:        800,
		Height:       600,
		Size:         123456,
		UploadedAt:   "2024-05-01T12:00:00Z",
	}
	if err := s.SaveImage(img); err != nil {
		t.Fatalf("SaveImage failed: %v", err)
	}

	images, err := s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 1 || images[0].Filename != "sunset.jpg" || images[0].Width != 800 {
		t.Errorf("ListImages = %v", images)
	}

	if err := s.DeleteImage("sunset.jpg"); err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	images, err = s.ListImages()
	if err != nil {
		t.Fatalf("ListImages failed: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("image should be gone after delete, got %v", images)
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{",go,web,", []string{"go", "web"}},
		{"go,web", []string{"go", "web"}},
		{",,", nil},
		{"", nil},
	}
	for _, tt := range tests {
		got := ParseTags(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	}
}
