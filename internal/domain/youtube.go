package domain

import "regexp"

var youtubeIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// YouTubeEmbed converts a YouTube watch, short or embed URL to its embed URL
// and default thumbnail. ok is false when url carries no 11-character
// video id.
func YouTubeEmbed(url string) (embed, thumbnail string, ok bool) {
	m := youtubeIDPattern.FindStringSubmatch(url)
	if m == nil || len(m[2]) != 11 {
		return "", "", false
	}
	id := m[2]
	return "https://www.youtube.com/embed/" + id, "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg", true
}
