package media

import (
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"dojoreader/internal/ui"
)

func TestIsValidURL(t *testing.T) {
	t.Parallel()

	require.True(t, IsValidURL("https://example.com/a.png"))
	require.True(t, IsValidURL("http://example.com"))
	require.False(t, IsValidURL("ftp://example.com/a.png"))
	require.False(t, IsValidURL("example.com/a.png"))
	require.False(t, IsValidURL(""))
	require.False(t, IsValidURL("://kapot"))
}

func TestClassifyURL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url  string
		want Kind
	}{
		{"https://cdn.example.com/kata.png", KindImage},
		{"https://cdn.example.com/kata.JPG", KindImage},
		{"https://cdn.example.com/demo.mp4", KindVideo},
		{"https://cdn.example.com/uitleg.mp3", KindAudio},
		{"https://www.youtube.com/watch?v=abc123", KindYouTube},
		{"https://youtu.be/abc123", KindYouTube},
		{"https://vimeo.com/12345", KindVimeo},
		{"https://example.com/pagina.html", KindUnknown},
		{"not a url", KindUnknown},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyURL(tc.url), "url %q", tc.url)
	}
}

func TestDescribeKnownKinds(t *testing.T) {
	t.Parallel()

	require.Equal(t, "PNG afbeelding, Karate illustratie",
		Describe("https://cdn.example.com/kata.png"))
	require.Equal(t, "MP4 video, Karate demonstratie",
		Describe("https://cdn.example.com/demo.mp4"))
	require.Equal(t, "YouTube video, Karate demonstratie video",
		Describe("https://www.youtube.com/watch?v=wx2PLNFOhKs"))
	require.Equal(t, "Vimeo video, Karate demonstratie video",
		Describe("https://vimeo.com/12345"))
}

func TestDescribeFallsBackWithoutVideoID(t *testing.T) {
	t.Parallel()

	// No parseable id: generic platform description, not an error.
	require.Equal(t, "YouTube video", Describe("https://www.youtube.com/feed/trending"))
	require.Equal(t, "Vimeo video", Describe("https://vimeo.com/about"))
}

func TestYouTubeIDParsing(t *testing.T) {
	t.Parallel()

	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=wx2PLNFOhKs", "wx2PLNFOhKs"},
		{"https://youtu.be/wx2PLNFOhKs", "wx2PLNFOhKs"},
		{"https://www.youtube.com/embed/wx2PLNFOhKs", "wx2PLNFOhKs"},
		{"https://www.youtube.com/shorts/abc/extra", "abc"},
		{"https://www.youtube.com/feed/trending", ""},
	}

	for _, tc := range cases {
		u := mustParse(t, tc.url)
		require.Equal(t, tc.want, youTubeID(u), "url %q", tc.url)
	}
}

func TestGalleryTruncation(t *testing.T) {
	t.Parallel()

	urls := make([]string, 7)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://cdn.example.com/kata%d.png", i)
	}

	lines := DescribeGallery(urls)
	require.Len(t, lines, 4)
	for _, line := range lines[:3] {
		require.Equal(t, "PNG afbeelding, Karate illustratie", line)
	}
	require.Equal(t, "en 4 meer", lines[3])
}

func TestGalleryTruncationWithCustomCap(t *testing.T) {
	t.Parallel()

	urls := make([]string, 5)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://cdn.example.com/kata%d.png", i)
	}

	lines := DescribeGalleryMax(urls, 2)
	require.Len(t, lines, 3)
	require.Equal(t, "en 3 meer", lines[2])
}

func TestGalleryNonPositiveCapKeepsDefault(t *testing.T) {
	t.Parallel()

	urls := make([]string, 5)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://cdn.example.com/kata%d.png", i)
	}

	require.Equal(t, DescribeGallery(urls), DescribeGalleryMax(urls, 0))
}

func TestGalleryBelowCapIsNotSummarized(t *testing.T) {
	t.Parallel()

	lines := DescribeGallery([]string{
		"https://cdn.example.com/a.png",
		"https://cdn.example.com/b.png",
		"https://cdn.example.com/c.png",
	})
	require.Len(t, lines, 3)
}

func TestGallerySkipsNonMediaURLs(t *testing.T) {
	t.Parallel()

	lines := DescribeGallery([]string{
		"https://example.com/pagina.html",
		"niet eens een url",
		"https://cdn.example.com/a.png",
	})
	require.Equal(t, []string{"PNG afbeelding, Karate illustratie"}, lines)
}

func TestDescribeTreeCollectsImagesVideosAndGalleries(t *testing.T) {
	t.Parallel()

	root := &ui.Container{Kind: ui.ContainerColumn, Children: []ui.Node{
		&ui.Image{URL: "https://cdn.example.com/kata.png", Alt: "Heian Shodan stand"},
		&ui.Video{URL: "https://youtu.be/wx2PLNFOhKs"},
	}}

	got := DescribeTree(root)
	require.Contains(t, got, "PNG afbeelding, Karate illustratie")
	require.Contains(t, got, "YouTube video")
	require.Contains(t, got, "Heian Shodan stand")
}

func TestDescribeTreeEmptyScreen(t *testing.T) {
	t.Parallel()

	require.Empty(t, DescribeTree(&ui.Container{Kind: ui.ContainerColumn}))
	require.Empty(t, DescribeTree(nil))
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
