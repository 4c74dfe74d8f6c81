package community

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dojoreader/internal/domain/forum"
	"dojoreader/internal/domain/kata"
)

func TestKataSummary(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.Equal(t, "Geen katas gevonden", store.KataSummary())

	store.Katas = []kata.Item{{ID: "a"}}
	assert.Equal(t, "1 kata gevonden", store.KataSummary())

	store.Katas = append(store.Katas, kata.Item{ID: "b"}, kata.Item{ID: "c"})
	assert.Equal(t, "3 katas gevonden", store.KataSummary())
}

func TestPostSummary(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.Equal(t, "Geen berichten gevonden", store.PostSummary())

	store.Posts = []forum.Post{{ID: "p1"}}
	assert.Equal(t, "1 bericht gevonden", store.PostSummary())

	store.Posts = append(store.Posts, forum.Post{ID: "p2"})
	assert.Equal(t, "2 berichten gevonden", store.PostSummary())
}

func TestFavoriteSummary(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.Equal(t, "Geen favorieten opgeslagen", store.FavoriteSummary())

	store.Favorites = []string{"heian-shodan"}
	assert.Equal(t, "1 favoriet opgeslagen", store.FavoriteSummary())

	store.Favorites = append(store.Favorites, "tekki-shodan")
	assert.Equal(t, "2 favorieten opgeslagen", store.FavoriteSummary())
}

func TestGreeting(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.Equal(t, "Je bent niet ingelogd", store.Greeting())

	store.Session = Session{UserID: "u1"}
	assert.Equal(t, "Je bent ingelogd", store.Greeting())

	store.Session = Session{UserID: "u1", DisplayName: "Jan"}
	assert.Equal(t, "Ingelogd als Jan", store.Greeting())
}

func TestLoadSampleDataPopulatesEveryList(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.LoadSampleData()

	assert.True(t, store.Session.SignedIn())
	assert.NotEmpty(t, store.Katas)
	assert.NotEmpty(t, store.Posts)
	assert.NotEmpty(t, store.Favorites)
}
