// Package tts provides the speech-synthesis engines the screen reader hands
// its assembled descriptions to.
package tts

// Config selects and tunes an engine.
type Config struct {
	Type   string
	Voice  string
	Speed  float64
	Volume float64
}

// Engine converts text to spoken audio. Speak returns once playback has been
// started or completed, depending on the backend; Stop cancels an in-flight
// utterance.
type Engine interface {
	Speak(text string) error
	Stop() error
	Pause() error
	Resume() error
	IsPlaying() bool
	SetVoice(voice string) error
	SetSpeed(speed float64) error
	SetVolume(volume float64) error
	GetAvailableVoices() ([]string, error)
}

// CacheableEngine is implemented by engines that keep synthesized audio on
// disk and can report and clear that store.
type CacheableEngine interface {
	Engine
	GetCacheStats() (map[string]interface{}, error)
	ClearCache() error
}
