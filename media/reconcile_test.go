package media

import (
	"reflect"
	"testing"

	"github.com/rana-danish-se/naqvix-server/models"
)

func TestParseKeepListShapes(t *testing.T) {
	want := []string{"https://cdn.local/a.jpg", "https://cdn.local/b.jpg"}

	cases := map[string][]string{
		"repeated values": {"https://cdn.local/a.jpg", "https://cdn.local/b.jpg"},
		"json array":      {`["https://cdn.local/a.jpg","https://cdn.local/b.jpg"]`},
	}
	for name, in := range cases {
		if got := ParseKeepList(in); !reflect.DeepEqual(got, want) {
			t.Errorf("%s: got %v want %v", name, got, want)
		}
	}

	if got := ParseKeepList([]string{"https://cdn.local/a.jpg"}); !reflect.DeepEqual(got, want[:1]) {
		t.Errorf("bare string: got %v want %v", got, want[:1])
	}
}

func TestParseKeepListEdge(t *testing.T) {
	if got := ParseKeepList(nil); len(got) != 0 {
		t.Errorf("nil input: got %v", got)
	}
	if got := ParseKeepList([]string{"", "  "}); len(got) != 0 {
		t.Errorf("blank values: got %v", got)
	}
	// a value that merely starts with '[' but is not JSON stays literal
	if got := ParseKeepList([]string{"[not-json"}); !reflect.DeepEqual(got, []string{"[not-json"}) {
		t.Errorf("malformed json fallback: got %v", got)
	}
	if got := ParseKeepList([]string{`["a","","b"]`}); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("json with blanks: got %v", got)
	}
}

func TestDiffOrderAndMembership(t *testing.T) {
	existing := models.MediaList{
		{URL: "u-a", StorageKey: "k-a"},
		{URL: "u-b", StorageKey: "k-b"},
		{URL: "u-c", StorageKey: "k-c"},
	}

	kept, stale := Diff(existing, []string{"u-c", "u-b"})
	if !reflect.DeepEqual(kept.URLs(), []string{"u-b", "u-c"}) {
		t.Errorf("kept order should follow existing, got %v", kept.URLs())
	}
	if len(stale) != 1 || stale[0].StorageKey != "k-a" {
		t.Errorf("expected only k-a stale, got %+v", stale)
	}

	kept, stale = Diff(existing, nil)
	if len(kept) != 0 || len(stale) != 3 {
		t.Errorf("empty keep-list should mark everything stale, got kept=%d stale=%d", len(kept), len(stale))
	}

	// unknown URLs in the keep-list are ignored
	kept, _ = Diff(existing, []string{"u-a", "u-zzz"})
	if !reflect.DeepEqual(kept.URLs(), []string{"u-a"}) {
		t.Errorf("unknown keep URL should be ignored, got %v", kept.URLs())
	}
}
