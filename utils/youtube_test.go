package utils

import "testing"

func TestExtractYouTubeID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://example.com/not-youtube", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := ExtractYouTubeID(c.url); got != c.want {
			t.Errorf("ExtractYouTubeID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	if got := YouTubeThumbnail("dQw4w9WgXcQ"); got != "https://img.youtube.com/vi/dQw4w9WgXcQ/hqdefault.jpg" {
		t.Errorf("unexpected thumbnail url: %s", got)
	}
	if got := YouTubeThumbnail(""); got != "" {
		t.Errorf("empty id should yield empty thumbnail, got %s", got)
	}
}
