package utils

import "regexp"

var youtubeIDPattern = regexp.MustCompile(`(?:v=|/shorts/|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractYouTubeID pulls the 11-character video id out of watch, share and
// shorts URLs. Returns "" when the URL carries no recognizable id.
func ExtractYouTubeID(url string) string {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// YouTubeThumbnail returns the standard hq thumbnail URL for a video id.
func YouTubeThumbnail(id string) string {
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/hqdefault.jpg"
}
