package media

import (
	"encoding/json"
	"strings"

	"github.com/rana-danish-se/naqvix-server/models"
)

// ParseKeepList normalizes the existingImages form field into a flat list of
// URLs. Admin clients send it three ways: repeated form values, one value
// holding a JSON-encoded array, or one bare URL string.
func ParseKeepList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.HasPrefix(v, "[") {
			var arr []string
			if err := json.Unmarshal([]byte(v), &arr); err == nil {
				for _, u := range arr {
					if u = strings.TrimSpace(u); u != "" {
						out = append(out, u)
					}
				}
				continue
			}
			// not valid JSON, fall through and treat it as a literal URL
		}
		out = append(out, v)
	}
	return out
}

// Diff splits existing media into the refs whose URL appears in keepURLs and
// the stale remainder. Both slices preserve the original ordering. Membership
// is decided on the URL, not the storage key.
func Diff(existing models.MediaList, keepURLs []string) (kept, stale models.MediaList) {
	keep := make(map[string]struct{}, len(keepURLs))
	for _, u := range keepURLs {
		keep[u] = struct{}{}
	}
	kept = make(models.MediaList, 0, len(existing))
	stale = make(models.MediaList, 0)
	for _, ref := range existing {
		if _, ok := keep[ref.URL]; ok {
			kept = append(kept, ref)
		} else {
			stale = append(stale, ref)
		}
	}
	return kept, stale
}
