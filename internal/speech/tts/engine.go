package tts

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/viper"
)

type EngineType string

const (
	EngineTypeMock   EngineType = "mock"
	EngineTypeESpeak EngineType = "espeak"
	EngineTypeSay    EngineType = "say" // macOS only
	EngineTypeGoogle EngineType = "google"
	EngineTypeAuto   EngineType = "auto"
)

func (e EngineType) String() string {
	return string(e)
}

// NewEngine creates a TTS engine from config. Type "auto" picks the best
// engine available on this platform.
func NewEngine(config Config) (Engine, error) {
	if config.Type == EngineTypeAuto.String() {
		config.Type = bestEngineForPlatform().String()
	}

	switch config.Type {
	case EngineTypeMock.String():
		return NewMockEngine(config), nil

	case EngineTypeESpeak.String():
		return newESpeakEngine(config)

	case EngineTypeSay.String():
		if runtime.GOOS != "darwin" {
			return nil, fmt.Errorf("say engine only supports macOS")
		}
		return newSayEngine(config)

	case EngineTypeGoogle.String():
		cachePath := viper.GetString("tts.cache_path")
		return newGoogleEngine(config, cachePath)

	default:
		return nil, fmt.Errorf("unsupported TTS engine type: %s", config.Type)
	}
}

func bestEngineForPlatform() EngineType {
	if hasGoogleCredentials() {
		return EngineTypeGoogle
	}

	switch runtime.GOOS {
	case "darwin":
		return EngineTypeSay
	default:
		return EngineTypeESpeak
	}
}

// AvailableEngines returns the engine types usable on the current platform.
func AvailableEngines() []EngineType {
	engines := []EngineType{EngineTypeMock, EngineTypeESpeak}

	if hasGoogleCredentials() {
		engines = append(engines, EngineTypeGoogle)
	}
	if runtime.GOOS == "darwin" {
		engines = append(engines, EngineTypeSay)
	}

	return engines
}

func hasGoogleCredentials() bool {
	_, ok := os.LookupEnv("GOOGLE_APPLICATION_CREDENTIALS")
	return ok
}
