package media

import (
	"strings"
	"testing"
)

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("blogs", "cover.JPG")
	if !strings.HasPrefix(key, "blogs/") {
		t.Fatalf("key should live under folder, got %s", key)
	}
	if !strings.HasSuffix(key, ".jpg") {
		t.Fatalf("extension should be kept lowercased, got %s", key)
	}
	if strings.Contains(key, "cover") {
		t.Fatalf("original filename must not leak into the key, got %s", key)
	}

	if k := buildObjectKey("", "x.png"); !strings.HasPrefix(k, "misc/") {
		t.Fatalf("empty folder should fall back to misc/, got %s", k)
	}
	// client filenames must not traverse out of the folder
	if k := buildObjectKey("team", "../../etc/passwd"); !strings.HasPrefix(k, "team/") || strings.Contains(k, "..") {
		t.Fatalf("traversal attempt leaked into key: %s", k)
	}
	if k := buildObjectKey("blogs", "weird.superlongextension"); strings.Contains(k, "superlong") {
		t.Fatalf("oversized extension should be dropped, got %s", k)
	}

	if buildObjectKey("blogs", "a.jpg") == buildObjectKey("blogs", "a.jpg") {
		t.Fatal("keys must be unique per upload")
	}
}
