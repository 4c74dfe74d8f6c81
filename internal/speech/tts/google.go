package tts

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/sirupsen/logrus"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"
)

// The synthesis API rejects inputs over 5000 bytes; stay under it.
const chunkLimit = 4800

// GoogleEngine synthesizes Dutch speech through Google Cloud Text-to-Speech
// and plays the MP3 result with beep. Synthesized audio is cached on disk
// keyed by a hash of the utterance and voice, so re-reading a screen does
// not re-bill the API.
type GoogleEngine struct {
	client   *texttospeech.Client
	ctx      context.Context
	voice    string
	speed    float64
	volume   float64
	cacheDir string

	mu      sync.Mutex
	ctrl    *beep.Ctrl
	playing bool
	paused  bool
	stop    chan struct{}
}

func newGoogleEngine(config Config, cacheDir string) (*GoogleEngine, error) {
	ctx := context.Background()
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}

	if cacheDir == "" {
		cacheDir = filepath.Join(os.TempDir(), "dojoreader-tts")
	}
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	voice := config.Voice
	if voice == "" || voice == "default" {
		voice = "nl-NL-Wavenet-B"
	}

	return &GoogleEngine{
		client:   client,
		ctx:      ctx,
		voice:    voice,
		speed:    config.Speed,
		volume:   config.Volume,
		cacheDir: cacheDir,
	}, nil
}

func (g *GoogleEngine) Speak(text string) error {
	g.mu.Lock()
	if g.playing {
		g.mu.Unlock()
		return fmt.Errorf("already playing")
	}
	g.playing = true
	g.paused = false
	g.stop = make(chan struct{})
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.playing = false
		g.paused = false
		g.mu.Unlock()
	}()

	paths, err := g.ensureSynthesized(text)
	if err != nil {
		return err
	}

	for _, path := range paths {
		select {
		case <-g.stop:
			return nil
		default:
		}
		if err := g.playFile(path); err != nil {
			return err
		}
	}
	return nil
}

// ensureSynthesized returns the cached MP3 chunk paths for text, calling the
// API only for chunks missing from the cache.
func (g *GoogleEngine) ensureSynthesized(text string) ([]string, error) {
	contentHash := md5Sum(text + g.voice)[:8]
	chunks := splitIntoChunks(text, chunkLimit)

	paths := make([]string, len(chunks))
	for i := range chunks {
		paths[i] = filepath.Join(g.cacheDir, fmt.Sprintf("utterance_%s_%d.mp3", contentHash, i))
	}

	for i, chunk := range chunks {
		if _, err := os.Stat(paths[i]); err == nil {
			continue
		}

		logrus.WithField("chunk", i).Debug("synthesizing speech chunk")
		req := &texttospeechpb.SynthesizeSpeechRequest{
			Input: &texttospeechpb.SynthesisInput{
				InputSource: &texttospeechpb.SynthesisInput_Text{Text: chunk},
			},
			Voice: &texttospeechpb.VoiceSelectionParams{
				LanguageCode: "nl-NL",
				Name:         g.voice,
			},
			AudioConfig: &texttospeechpb.AudioConfig{
				AudioEncoding: texttospeechpb.AudioEncoding_MP3,
				SpeakingRate:  g.speed,
				VolumeGainDb:  gainDb(g.volume),
			},
		}

		resp, err := g.client.SynthesizeSpeech(g.ctx, req)
		if err != nil {
			return nil, fmt.Errorf("failed to synthesize chunk %d: %w", i, err)
		}
		if err := os.WriteFile(paths[i], resp.AudioContent, 0644); err != nil {
			return nil, fmt.Errorf("failed to write MP3 chunk %d: %w", i, err)
		}
	}

	return paths, nil
}

func (g *GoogleEngine) playFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open cached MP3 %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode MP3 %s: %w", path, err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}

	ctrl := &beep.Ctrl{Streamer: streamer}
	done := make(chan struct{})

	g.mu.Lock()
	g.ctrl = ctrl
	g.mu.Unlock()

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-g.stop:
		speaker.Clear()
	}
	return nil
}

func (g *GoogleEngine) Stop() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stop != nil {
		select {
		case <-g.stop:
		default:
			close(g.stop)
		}
	}
	speaker.Clear()
	g.paused = false
	return nil
}

func (g *GoogleEngine) Pause() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctrl != nil {
		speaker.Lock()
		g.ctrl.Paused = true
		speaker.Unlock()
		g.paused = true
	}
	return nil
}

func (g *GoogleEngine) Resume() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.ctrl != nil {
		speaker.Lock()
		g.ctrl.Paused = false
		speaker.Unlock()
		g.paused = false
	}
	return nil
}

func (g *GoogleEngine) IsPlaying() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playing && !g.paused
}

func (g *GoogleEngine) SetVoice(voice string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.voice = voice
	return nil
}

func (g *GoogleEngine) SetSpeed(speed float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if speed <= 0 || speed > 3.0 {
		return fmt.Errorf("speed must be between 0.1 and 3.0")
	}
	g.speed = speed
	return nil
}

func (g *GoogleEngine) SetVolume(volume float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if volume < 0 || volume > 2.0 {
		return fmt.Errorf("volume must be between 0 and 2.0")
	}
	g.volume = volume
	return nil
}

func (g *GoogleEngine) GetAvailableVoices() ([]string, error) {
	resp, err := g.client.ListVoices(g.ctx, &texttospeechpb.ListVoicesRequest{
		LanguageCode: "nl-NL",
	})
	if err != nil {
		return nil, err
	}

	voices := make([]string, 0, len(resp.Voices))
	for _, v := range resp.Voices {
		voices = append(voices, v.Name)
	}
	return voices, nil
}

// GetCacheStats reports the on-disk audio cache size.
func (g *GoogleEngine) GetCacheStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var totalFiles int64
	var totalSize int64

	err := filepath.Walk(g.cacheDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // keep walking
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".mp3") {
			totalFiles++
			totalSize += info.Size()
		}
		return nil
	})
	if err != nil {
		return stats, err
	}

	stats["cache_directory"] = g.cacheDir
	stats["cached_files"] = totalFiles
	stats["total_size_mb"] = float64(totalSize) / (1024 * 1024)
	return stats, nil
}

// ClearCache removes all cached audio files and recreates the empty cache
// directory so the next synthesis can write into it.
func (g *GoogleEngine) ClearCache() error {
	if err := os.RemoveAll(g.cacheDir); err != nil {
		return err
	}
	return os.MkdirAll(g.cacheDir, 0755)
}

// gainDb maps a 0..2 volume factor onto the API's dB gain field, with 1.0 as
// unity gain.
func gainDb(volume float64) float64 {
	return (volume - 1.0) * 6.0
}

func md5Sum(s string) string {
	h := md5.New()
	io.WriteString(h, s)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// splitIntoChunks cuts text into pieces of at most limit bytes, breaking only
// at rune boundaries. The API cap is on encoded bytes, not characters.
func splitIntoChunks(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := limit
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = limit
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
