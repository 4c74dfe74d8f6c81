// Package community exposes the already-loaded application state the reader
// summarizes: who is signed in and which posts and katas are on screen. The
// backend itself is never touched from here; data arrives pre-loaded.
package community

import (
	"fmt"

	"dojoreader/internal/domain/forum"
	"dojoreader/internal/domain/kata"
)

// Session describes the signed-in user, if any.
type Session struct {
	UserID      string
	DisplayName string
}

// SignedIn reports whether a user is authenticated.
func (s Session) SignedIn() bool {
	return s.UserID != ""
}

// Store holds the in-memory lists backing the current screens.
type Store struct {
	Session   Session
	Posts     []forum.Post
	Katas     []kata.Item
	Favorites []string
}

// NewStore returns an empty store; callers load data into it.
func NewStore() *Store {
	return &Store{}
}

// KataSummary phrases the kata count for speech.
func (s *Store) KataSummary() string {
	switch len(s.Katas) {
	case 0:
		return "Geen katas gevonden"
	case 1:
		return "1 kata gevonden"
	default:
		return fmt.Sprintf("%d katas gevonden", len(s.Katas))
	}
}

// PostSummary phrases the forum post count for speech.
func (s *Store) PostSummary() string {
	switch len(s.Posts) {
	case 0:
		return "Geen berichten gevonden"
	case 1:
		return "1 bericht gevonden"
	default:
		return fmt.Sprintf("%d berichten gevonden", len(s.Posts))
	}
}

// FavoriteSummary phrases the favorites count for speech.
func (s *Store) FavoriteSummary() string {
	switch count := len(s.Favorites); count {
	case 0:
		return "Geen favorieten opgeslagen"
	case 1:
		return "1 favoriet opgeslagen"
	default:
		return fmt.Sprintf("%d favorieten opgeslagen", count)
	}
}

// Greeting phrases the session state for the profile and home screens.
func (s *Store) Greeting() string {
	if !s.Session.SignedIn() {
		return "Je bent niet ingelogd"
	}
	if s.Session.DisplayName == "" {
		return "Je bent ingelogd"
	}
	return "Ingelogd als " + s.Session.DisplayName
}

// LoadSampleData fills the store with demo content for the CLI.
func (s *Store) LoadSampleData() {
	s.Session = Session{UserID: "demo", DisplayName: "Jan"}
	s.Favorites = []string{"heian-shodan"}
	s.Katas = []kata.Item{
		{
			ID:          "heian-shodan",
			Name:        "Heian Shodan",
			Style:       "Shotokan",
			BeltLevel:   "Gele band",
			Description: "De eerste kata van de Heian serie",
			VideoURL:    "https://www.youtube.com/watch?v=wx2PLNFOhKs",
		},
		{
			ID:          "heian-nidan",
			Name:        "Heian Nidan",
			Style:       "Shotokan",
			BeltLevel:   "Oranje band",
			Description: "De tweede kata van de Heian serie",
			VideoURL:    "https://www.youtube.com/watch?v=G1t7jOlOTtI",
		},
		{
			ID:          "tekki-shodan",
			Name:        "Tekki Shodan",
			Style:       "Shotokan",
			BeltLevel:   "Bruine band",
			Description: "Kata in rijstand, geschikt voor gevorderden",
			ImageURLs:   []string{"https://example.com/tekki.png"},
		},
	}
	s.Posts = []forum.Post{
		{
			ID:      "post-1",
			Title:   "Training van zaterdag",
			Author:  "Sensei Mark",
			Content: "Zaterdag extra kata training om tien uur.",
			Likes:   4,
		},
		{
			ID:      "post-2",
			Title:   "Examen uitslagen",
			Author:  "Jan",
			Content: "Gefeliciteerd aan iedereen die geslaagd is!",
			Likes:   12,
			Comments: []forum.Comment{
				{ID: "c1", Author: "Lisa", Content: "Gefeliciteerd allemaal!"},
			},
		},
	}
}
