package tts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEngineRecordsUtterances(t *testing.T) {
	t.Parallel()

	engine := NewMockEngine(Config{})
	require.Empty(t, engine.Spoken())
	require.Equal(t, "", engine.LastSpoken())

	require.NoError(t, engine.Speak("eerste zin"))
	require.NoError(t, engine.Speak("tweede zin"))

	assert.Equal(t, []string{"eerste zin", "tweede zin"}, engine.Spoken())
	assert.Equal(t, "tweede zin", engine.LastSpoken())
}

func TestMockEngineSpokenReturnsCopy(t *testing.T) {
	t.Parallel()

	engine := NewMockEngine(Config{})
	require.NoError(t, engine.Speak("zin"))

	spoken := engine.Spoken()
	spoken[0] = "gemuteerd"
	assert.Equal(t, "zin", engine.LastSpoken())
}

func TestNewEngineMock(t *testing.T) {
	t.Parallel()

	engine, err := NewEngine(Config{Type: "mock"})
	require.NoError(t, err)
	_, ok := engine.(*MockEngine)
	assert.True(t, ok)
}

func TestNewEngineUnsupportedType(t *testing.T) {
	t.Parallel()

	_, err := NewEngine(Config{Type: "gramophone"})
	require.ErrorContains(t, err, "unsupported TTS engine type")
}

func TestAvailableEnginesAlwaysIncludesMock(t *testing.T) {
	t.Parallel()

	engines := AvailableEngines()
	assert.Contains(t, engines, EngineTypeMock)
	assert.Contains(t, engines, EngineTypeESpeak)
}

func TestParseESpeakVoices(t *testing.T) {
	t.Parallel()

	output := `Pty Language Age/Gender VoiceName          File          Other Languages
 5  af             M  afrikaans            other/af
 5  nl             M  dutch                europe/nl
 2  en-gb          M  english              en

`
	voices := parseESpeakVoices(output)
	assert.Equal(t, []string{"afrikaans", "dutch", "english"}, voices)
}

func TestParseESpeakVoicesEmptyOutput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, parseESpeakVoices(""))
}

func TestSplitIntoChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{"short text single chunk", "hallo", 10, []string{"hallo"}},
		{"exact limit", "abcde", 5, []string{"abcde"}},
		{"two chunks", "abcdefgh", 5, []string{"abcde", "fgh"}},
		{"empty text", "", 5, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, splitIntoChunks(tt.text, tt.limit))
		})
	}
}

func TestSplitIntoChunksCapsBytesAtRuneBoundaries(t *testing.T) {
	t.Parallel()

	// Accented Dutch takes two bytes per character; the byte cap must hold
	// without ever splitting a character down the middle.
	text := strings.Repeat("ë", 7)
	chunks := splitIntoChunks(text, 5)

	require.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 5)
		assert.True(t, utf8.ValidString(chunk))
	}
}

func TestGoogleClearCacheRecreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "audio")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "utterance_abc_0.mp3"), []byte("mp3"), 0644))

	engine := &GoogleEngine{cacheDir: dir}
	require.NoError(t, engine.ClearCache())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// The empty directory must accept new audio right away.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "utterance_def_0.mp3"), []byte("mp3"), 0644))
}

func TestGainDb(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.0, gainDb(1.0), 1e-9)
	assert.InDelta(t, -6.0, gainDb(0.0), 1e-9)
	assert.InDelta(t, -1.2, gainDb(0.8), 1e-9)
	assert.InDelta(t, 3.0, gainDb(1.5), 1e-9)
}

func TestMd5SumIsStableHex(t *testing.T) {
	t.Parallel()

	first := md5Sum("kata tekst" + "nl-NL-Wavenet-B")
	second := md5Sum("kata tekst" + "nl-NL-Wavenet-B")
	assert.Equal(t, first, second)
	assert.Len(t, first, 32)

	assert.NotEqual(t, first, md5Sum("andere tekst"+"nl-NL-Wavenet-B"))
}

func TestMockEnginePlaybackStateTransitions(t *testing.T) {
	t.Parallel()

	engine := NewMockEngine(Config{})
	assert.False(t, engine.IsPlaying())

	require.NoError(t, engine.Speak("zin"))
	require.NoError(t, engine.Pause())
	require.NoError(t, engine.Resume())
	require.NoError(t, engine.Stop())
	assert.False(t, engine.IsPlaying())
}
