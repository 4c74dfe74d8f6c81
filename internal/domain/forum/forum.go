package forum

// Post represents a forum post as loaded into UI state.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	MediaURLs []string  `json:"media_urls"`
	Comments  []Comment `json:"comments"`
}

// Comment is a reply on a post.
type Comment struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
