package tts

import "sync"

// MockEngine records every utterance instead of producing audio. Tests and
// the --dry-run CLI path use it to observe what would have been spoken.
type MockEngine struct {
	mu      sync.Mutex
	spoken  []string
	playing bool
	paused  bool
	voice   string
	speed   float64
	volume  float64
}

func NewMockEngine(c Config) *MockEngine {
	voice := c.Voice
	if voice == "" {
		voice = "mock-nl"
	}
	return &MockEngine{
		voice:  voice,
		speed:  c.Speed,
		volume: c.Volume,
	}
}

func (m *MockEngine) Speak(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.spoken = append(m.spoken, text)
	m.playing = false
	m.paused = false
	return nil
}

// Spoken returns every utterance passed to Speak, in order.
func (m *MockEngine) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.spoken))
	copy(out, m.spoken)
	return out
}

// LastSpoken returns the most recent utterance, or "".
func (m *MockEngine) LastSpoken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.spoken) == 0 {
		return ""
	}
	return m.spoken[len(m.spoken)-1]
}

func (m *MockEngine) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = false
	m.paused = false
	return nil
}

func (m *MockEngine) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.playing {
		m.paused = true
	}
	return nil
}

func (m *MockEngine) Resume() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = false
	return nil
}

func (m *MockEngine) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing && !m.paused
}

func (m *MockEngine) SetVoice(voice string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voice = voice
	return nil
}

func (m *MockEngine) SetSpeed(speed float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = speed
	return nil
}

func (m *MockEngine) SetVolume(volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = volume
	return nil
}

func (m *MockEngine) GetAvailableVoices() ([]string, error) {
	return []string{"mock-nl"}, nil
}
