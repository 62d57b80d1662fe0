package utils

import (
	"strings"
	"testing"
)

func TestMakeSlug(t *testing.T) {
	s := MakeSlug("Community Meetup 2026!")
	if !strings.HasPrefix(s, "community-meetup-2026-") {
		t.Fatalf("unexpected slug %q", s)
	}
	if s == MakeSlug("Community Meetup 2026!") {
		t.Fatal("same title must not produce the same slug twice")
	}
	if got := MakeSlug(""); !strings.HasPrefix(got, "item-") {
		t.Fatalf("empty title should fall back to item-, got %q", got)
	}
}
