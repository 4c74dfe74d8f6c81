// Package reader drives the read-aloud pipeline: classify the screen, pull a
// description from cache or assemble a fresh one, post-process it for Dutch
// speech, and hand it to the TTS engine.
package reader

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"dojoreader/internal/community"
	"dojoreader/internal/reader/assemble"
	"dojoreader/internal/reader/cache"
	"dojoreader/internal/reader/dutch"
	"dojoreader/internal/reader/fallback"
	"dojoreader/internal/reader/screen"
	"dojoreader/internal/speech/tts"
	"dojoreader/internal/ui"
)

// Reader owns one speech engine and one content cache. It is driven from a
// single goroutine; a new Read interrupts whatever is still being spoken.
type Reader struct {
	engine   tts.Engine
	cache    *cache.Content
	store    *community.Store
	maxMedia int
}

// Option adjusts Reader construction.
type Option func(*Reader)

// WithStore attaches the loaded community data used for count summaries.
func WithStore(store *community.Store) Option {
	return func(r *Reader) {
		r.store = store
	}
}

// WithCache substitutes the content cache, used to apply the configured TTL
// and by tests to control time.
func WithCache(c *cache.Content) Option {
	return func(r *Reader) {
		r.cache = c
	}
}

// WithMaxMedia caps how many media items are described individually before
// the remainder is summarized. Values below one keep the default cap.
func WithMaxMedia(max int) Option {
	return func(r *Reader) {
		r.maxMedia = max
	}
}

// New builds a Reader around engine.
func New(engine tts.Engine, opts ...Option) *Reader {
	r := &Reader{
		engine: engine,
		cache:  cache.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Describe returns the spoken description for snap. It is total: extraction
// failures degrade to partial content and an empty pipeline degrades to the
// canned fallback, so the result is never empty.
func (r *Reader) Describe(snap *ui.Snapshot) string {
	if snap == nil {
		return fallback.Sentence(screen.TypeGeneric)
	}

	screenType := screen.Classify(snap.Route, snap.Overlay)
	key := cache.Key(screenType.String(), snap.Route)

	if content, ok := r.cache.Get(key); ok {
		logrus.WithField("key", key).Debug("serving description from cache")
		return content
	}

	raw := assemble.Describe(assemble.Context{
		Screen:   screenType,
		Route:    snap.Route,
		Tree:     snap.Tree,
		Store:    r.store,
		MaxMedia: r.maxMedia,
	})

	content := dutch.PostProcess(raw)
	if content == "" {
		content = dutch.PostProcess(fallback.Sentence(screenType))
	}

	r.cache.Put(key, content)
	return content
}

// Read speaks the description for snap, interrupting any utterance still in
// flight. Only the speech engine can fail here; extraction cannot.
func (r *Reader) Read(ctx context.Context, snap *ui.Snapshot) error {
	content := r.Describe(snap)

	if err := r.engine.Stop(); err != nil {
		logrus.WithError(err).Warn("failed to stop previous utterance")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.engine.Speak(content); err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	return nil
}

// Stop cancels the current utterance, if any.
func (r *Reader) Stop() error {
	return r.engine.Stop()
}

// ClearCache drops all cached descriptions, for navigation changes and
// memory pressure.
func (r *Reader) ClearCache() {
	r.cache.Clear()
}

// CachedScreens reports how many descriptions are currently cached.
func (r *Reader) CachedScreens() int {
	return r.cache.Len()
}
