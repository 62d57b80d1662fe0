package controllers

import "testing"

func TestParseID(t *testing.T) {
	if id, err := parseID("42"); err != nil || id != 42 {
		t.Fatalf("parseID(42) = %d, %v", id, err)
	}
	for _, raw := range []string{"", "  ", "abc", "12x", "-3", "0", "66e4b9c2f1"} {
		if _, err := parseID(raw); err == nil {
			t.Errorf("parseID(%q) should fail", raw)
		}
	}
}

func TestParsePagination(t *testing.T) {
	if p, l := parsePagination("", ""); p != 1 || l != 10 {
		t.Fatalf("defaults: got page=%d limit=%d", p, l)
	}
	if p, l := parsePagination("3", "25"); p != 3 || l != 25 {
		t.Fatalf("explicit: got page=%d limit=%d", p, l)
	}
	if p, l := parsePagination("-1", "1000"); p != 1 || l != 10 {
		t.Fatalf("out of range values fall back, got page=%d limit=%d", p, l)
	}
}

func TestPageEnvelope(t *testing.T) {
	env := pageEnvelope(nil, 2, 10, 35)
	if env["total_pages"] != 4 {
		t.Fatalf("total_pages = %v, want 4", env["total_pages"])
	}
	if env["has_prev"] != true || env["has_next"] != true {
		t.Fatalf("page 2 of 4 should have both neighbors: %v", env)
	}

	env = pageEnvelope(nil, 4, 10, 35)
	if env["has_next"] != false {
		t.Fatalf("last page should not have next: %v", env)
	}

	env = pageEnvelope(nil, 1, 10, 0)
	if env["total_pages"] != 0 || env["has_prev"] != false || env["has_next"] != false {
		t.Fatalf("empty result envelope wrong: %v", env)
	}
}
