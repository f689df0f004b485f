package directory

import (
	"net/url"
	"regexp"
	"strings"
)

const youtubeEmbedBase = "https://www.youtube.com/embed/"

var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// YouTubeEmbedURL turns a shared YouTube link into an embeddable player URL.
// Recognized shapes, each with or without a www. host prefix:
//
//	https://youtu.be/<id>
//	https://youtube.com/watch?v=<id>
//	https://youtube.com/embed/<id>
//	https://youtube.com/v/<id>
//
// origin is passed to the player for postMessage access. Anything else, including
// malformed URLs, yields ok == false.
func YouTubeEmbedURL(raw, origin string) (embed string, ok bool) {
	id, ok := YouTubeVideoID(raw)
	if !ok {
		return "", false
	}

	return youtubeEmbedBase + id +
		"?enablejsapi=1&origin=" + url.QueryEscape(origin) +
		"&rel=0&modestbranding=1", true
}

// YouTubeVideoID extracts the video id from a recognized YouTube link.
func YouTubeVideoID(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	var id string
	switch host {
	case "youtu.be":
		id = strings.TrimPrefix(u.Path, "/")
	case "youtube.com":
		id = youtubePathID(u)
	default:
		return "", false
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}

	return id, true
}

func youtubePathID(u *url.URL) string {
	if u.Path == "/watch" {
		return u.Query().Get("v")
	}

	for _, prefix := range []string{"/embed/", "/v/"} {
		if rest, found := strings.CutPrefix(u.Path, prefix); found {
			id, _, _ := strings.Cut(rest, "/")

			return id
		}
	}

	return ""
}
