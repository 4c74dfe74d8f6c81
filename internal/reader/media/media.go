// Package media recognizes image, video and audio URLs in a screen tree and
// turns them into short Dutch descriptions. Classification is a static table
// of extensions and hosts; content is never fetched.
package media

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"dojoreader/internal/reader/walk"
	"dojoreader/internal/ui"
)

// Kind is the coarse media category of a URL.
type Kind string

const (
	KindImage   Kind = "image"
	KindVideo   Kind = "video"
	KindAudio   Kind = "audio"
	KindYouTube Kind = "youtube"
	KindVimeo   Kind = "vimeo"
	KindUnknown Kind = "unknown"
)

// MaxDescribed caps how many gallery items are described individually; the
// remainder collapses into one "en N meer" line so spoken output stays
// bounded regardless of gallery size.
const MaxDescribed = 3

var imageExtensions = map[string]string{
	".png":  "PNG afbeelding",
	".jpg":  "JPEG afbeelding",
	".jpeg": "JPEG afbeelding",
	".gif":  "GIF afbeelding",
	".webp": "WebP afbeelding",
	".bmp":  "bitmap afbeelding",
	".svg":  "vectorafbeelding",
}

var videoExtensions = map[string]string{
	".mp4":  "MP4 video",
	".mov":  "video",
	".webm": "video",
	".avi":  "video",
	".mkv":  "video",
}

var audioExtensions = map[string]string{
	".mp3": "audiofragment",
	".wav": "audiofragment",
	".ogg": "audiofragment",
	".m4a": "audiofragment",
}

var streamingHosts = map[string]Kind{
	"youtube.com":      KindYouTube,
	"www.youtube.com":  KindYouTube,
	"m.youtube.com":    KindYouTube,
	"youtu.be":         KindYouTube,
	"vimeo.com":        KindVimeo,
	"www.vimeo.com":    KindVimeo,
	"player.vimeo.com": KindVimeo,
}

// IsValidURL reports whether raw parses with an http or https scheme.
func IsValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsMediaURL reports whether raw points at a known media extension or
// streaming host.
func IsMediaURL(raw string) bool {
	return ClassifyURL(raw) != KindUnknown
}

// ClassifyURL assigns a media kind by extension or hosting domain.
func ClassifyURL(raw string) Kind {
	if !IsValidURL(raw) {
		return KindUnknown
	}
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return KindUnknown
	}

	if kind, ok := streamingHosts[strings.ToLower(u.Host)]; ok {
		return kind
	}

	ext := strings.ToLower(path.Ext(u.Path))
	if _, ok := imageExtensions[ext]; ok {
		return KindImage
	}
	if _, ok := videoExtensions[ext]; ok {
		return KindVideo
	}
	if _, ok := audioExtensions[ext]; ok {
		return KindAudio
	}
	return KindUnknown
}

// Describe renders one URL as a Dutch description fragment. Unknown URLs get
// a generic line rather than an error; the pipeline never fails on media.
func Describe(raw string) string {
	u, _ := url.Parse(strings.TrimSpace(raw))

	switch ClassifyURL(raw) {
	case KindYouTube:
		if id := youTubeID(u); id != "" {
			return "YouTube video, Karate demonstratie video"
		}
		return "YouTube video"
	case KindVimeo:
		if id := vimeoID(u); id != "" {
			return "Vimeo video, Karate demonstratie video"
		}
		return "Vimeo video"
	case KindImage:
		ext := strings.ToLower(path.Ext(u.Path))
		return imageExtensions[ext] + ", Karate illustratie"
	case KindVideo:
		ext := strings.ToLower(path.Ext(u.Path))
		return videoExtensions[ext] + ", Karate demonstratie"
	case KindAudio:
		ext := strings.ToLower(path.Ext(u.Path))
		return audioExtensions[ext]
	default:
		return "media item"
	}
}

// youTubeID extracts the video id from watch URLs, short links and embeds.
// A missing id is not an error; callers fall back to the platform name.
func youTubeID(u *url.URL) string {
	if u == nil {
		return ""
	}

	if strings.EqualFold(u.Host, "youtu.be") {
		return strings.Trim(u.Path, "/")
	}
	if id := u.Query().Get("v"); id != "" {
		return id
	}
	for _, prefix := range []string{"/embed/", "/shorts/", "/v/"} {
		if rest, ok := strings.CutPrefix(u.Path, prefix); ok {
			if idx := strings.IndexByte(rest, '/'); idx >= 0 {
				rest = rest[:idx]
			}
			return rest
		}
	}
	return ""
}

// vimeoID extracts the numeric id from the first path segment.
func vimeoID(u *url.URL) string {
	if u == nil {
		return ""
	}
	for _, segment := range strings.Split(u.Path, "/") {
		if segment == "" {
			continue
		}
		if isDigits(segment) {
			return segment
		}
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// DescribeGallery describes up to MaxDescribed urls individually and
// summarizes the remainder.
func DescribeGallery(urls []string) []string {
	return DescribeGalleryMax(urls, MaxDescribed)
}

// DescribeGalleryMax is DescribeGallery with a configurable cap. A max below
// one falls back to MaxDescribed.
func DescribeGalleryMax(urls []string, max int) []string {
	if max < 1 {
		max = MaxDescribed
	}

	var described []string
	for _, raw := range urls {
		if !IsMediaURL(raw) {
			continue
		}
		described = append(described, Describe(raw))
	}

	if len(described) <= max {
		return described
	}

	rest := len(described) - max
	out := append([]string{}, described[:max]...)
	return append(out, fmt.Sprintf("en %d meer", rest))
}

type mediaCollector struct {
	ui.NopVisitor
	urls     []string
	captions []string
}

func (c *mediaCollector) addCaption(caption string) {
	caption = strings.TrimSpace(caption)
	if caption != "" {
		c.captions = append(c.captions, caption)
	}
}

func (c *mediaCollector) VisitImage(n *ui.Image) {
	c.urls = append(c.urls, n.URL)
	c.addCaption(n.Alt)
}

func (c *mediaCollector) VisitVideo(n *ui.Video) {
	c.urls = append(c.urls, n.URL)
	c.addCaption(n.Caption)
}

func (c *mediaCollector) VisitMediaGallery(n *ui.MediaGallery) {
	c.urls = append(c.urls, n.URLs...)
}

// DescribeTree walks root and returns one speech fragment covering all media
// found, or "" when the screen shows none.
func DescribeTree(root ui.Node) string {
	return DescribeTreeMax(root, MaxDescribed)
}

// DescribeTreeMax is DescribeTree with a configurable description cap.
func DescribeTreeMax(root ui.Node, max int) string {
	collector := &mediaCollector{}
	walk.Walk(root, collector)

	lines := DescribeGalleryMax(collector.urls, max)
	lines = append(lines, collector.captions...)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, ". ")
}
