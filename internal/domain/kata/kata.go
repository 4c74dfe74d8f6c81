package kata

// Item represents one kata as loaded into UI state.
type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Style       string   `json:"style"`
	BeltLevel   string   `json:"belt_level"`
	Description string   `json:"description"`
	VideoURL    string   `json:"video_url"`
	ImageURLs   []string `json:"image_urls"`
}
