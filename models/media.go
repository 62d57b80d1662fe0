package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MediaRef points at one object held by the external media store. URL is the
// public locator served to clients; StorageKey is the opaque handle needed to
// delete the object later. A ref is only ever created by a successful upload.
type MediaRef struct {
	URL        string `json:"url"`
	StorageKey string `json:"storage_key"`
}

// MediaList is an ordered set of MediaRef persisted as a single JSON column.
type MediaList []MediaRef

// Value implements driver.Valuer. An empty list is stored as [] rather than
// NULL so scans always round-trip to a non-nil slice of the same length.
func (m MediaList) Value() (driver.Value, error) {
	if m == nil {
		m = MediaList{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for []byte, string and NULL source values.
func (m *MediaList) Scan(value interface{}) error {
	if value == nil {
		*m = MediaList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported media column type %T", value)
	}
	if len(data) == 0 {
		*m = MediaList{}
		return nil
	}
	return json.Unmarshal(data, m)
}

// URLs returns the public locators in list order.
func (m MediaList) URLs() []string {
	out := make([]string, 0, len(m))
	for _, ref := range m {
		out = append(out, ref.URL)
	}
	return out
}
