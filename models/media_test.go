package models

import "testing"

func TestMediaListScanSources(t *testing.T) {
	refs := `[{"url":"https://cdn.local/a.jpg","storage_key":"blogs/a"}]`

	var fromBytes MediaList
	if err := fromBytes.Scan([]byte(refs)); err != nil {
		t.Fatalf("scan []byte: %v", err)
	}
	var fromString MediaList
	if err := fromString.Scan(refs); err != nil {
		t.Fatalf("scan string: %v", err)
	}
	if len(fromBytes) != 1 || len(fromString) != 1 {
		t.Fatalf("expected one ref, got %d and %d", len(fromBytes), len(fromString))
	}
	if fromBytes[0] != fromString[0] {
		t.Fatalf("byte and string scans disagree: %+v vs %+v", fromBytes[0], fromString[0])
	}

	var fromNull MediaList
	if err := fromNull.Scan(nil); err != nil {
		t.Fatalf("scan NULL: %v", err)
	}
	if fromNull == nil || len(fromNull) != 0 {
		t.Fatalf("NULL should scan to an empty non-nil list, got %#v", fromNull)
	}

	var bad MediaList
	if err := bad.Scan(42); err == nil {
		t.Fatal("expected error for unsupported source type")
	}
}

func TestMediaListValueEmpty(t *testing.T) {
	var m MediaList
	v, err := m.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "[]" {
		t.Fatalf("nil list should serialize as [], got %v", v)
	}
}
