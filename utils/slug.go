package utils

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gosimple/slug"
)

// MakeSlug derives a URL-safe slug from a title plus a short random suffix,
// so two records with the same title never collide on the unique index.
func MakeSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "item"
	}
	return base + "-" + randomSuffix()
}

func randomSuffix() string {
	b := make([]byte, 2)
	if _, err := rand.Read(b); err != nil {
		return "0000"
	}
	return hex.EncodeToString(b)
}
