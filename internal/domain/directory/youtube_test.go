package directory

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://showcase.example.edu"

func TestYouTubeEmbedURL_RecognizedShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		id   string
	}{
		{name: "short link", raw: "https://youtu.be/abc123", id: "abc123"},
		{name: "short link with www", raw: "https://www.youtu.be/abc123", id: "abc123"},
		{name: "watch", raw: "https://youtube.com/watch?v=xyz&t=5", id: "xyz"},
		{name: "watch with www", raw: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", id: "dQw4w9WgXcQ"},
		{name: "embed", raw: "https://youtube.com/embed/Ab_c-9", id: "Ab_c-9"},
		{name: "embed with www", raw: "https://www.youtube.com/embed/Ab_c-9", id: "Ab_c-9"},
		{name: "legacy v path", raw: "http://youtube.com/v/legacy1", id: "legacy1"},
		{name: "legacy v path with www", raw: "https://www.youtube.com/v/legacy1", id: "legacy1"},
		{name: "upper case host", raw: "https://WWW.YouTube.com/watch?v=caps", id: "caps"},
		{name: "embed with trailing slash", raw: "https://www.youtube.com/embed/abc123/", id: "abc123"},
		{name: "embed with extra segment", raw: "https://youtube.com/embed/abc123/extra", id: "abc123"},
		{name: "legacy v path with trailing slash", raw: "https://youtube.com/v/abc123/", id: "abc123"},
		{name: "legacy v path with extra segment", raw: "https://www.youtube.com/v/abc123/extra?x=1", id: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed, ok := YouTubeEmbedURL(tt.raw, testOrigin)
			require.True(t, ok)

			parsed, err := url.Parse(embed)
			require.NoError(t, err)
			assert.Equal(t, "www.youtube.com", parsed.Host)
			assert.Equal(t, "/embed/"+tt.id, parsed.Path)
			assert.Equal(t, []string{"embed", tt.id}, strings.Split(strings.Trim(parsed.Path, "/"), "/"))
			assert.Equal(t, "1", parsed.Query().Get("enablejsapi"))
			assert.Equal(t, "0", parsed.Query().Get("rel"))
			assert.Equal(t, "1", parsed.Query().Get("modestbranding"))
			assert.Equal(t, testOrigin, parsed.Query().Get("origin"))
		})
	}
}

func TestYouTubeEmbedURL_Rejected(t *testing.T) {
	inputs := []string{
		"",
		"not a url",
		"https://example.com/abc123",
		"https://youtube.com/",
		"https://youtube.com/watch",
		"https://youtube.com/watch?v=",
		"https://youtube.com/channel/abc123",
		"https://youtu.be/",
		"https://youtu.be/abc/def",
		"https://youtube.com/embed/",
		"https://youtube.com/embed//abc123",
		"https://youtube.com/v/",
		"ftp://youtu.be/abc123",
		"youtu.be/abc123",
		"https://notyoutube.com/watch?v=abc",
		"https://m.youtube.com.evil.io/watch?v=abc",
		"http://[::1",
	}

	for _, raw := range inputs {
		t.Run(raw, func(t *testing.T) {
			embed, ok := YouTubeEmbedURL(raw, testOrigin)
			assert.False(t, ok)
			assert.Empty(t, embed)
		})
	}
}

func TestYouTubeEmbedURL_EncodesOrigin(t *testing.T) {
	embed, ok := YouTubeEmbedURL("https://youtu.be/abc123", "http://localhost:5173")
	require.True(t, ok)
	assert.Contains(t, embed, "origin=http%3A%2F%2Flocalhost%3A5173")
}
