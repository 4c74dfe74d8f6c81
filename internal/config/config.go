package config

import (
	"time"

	"github.com/spf13/viper"
)

// SetDefaults registers every configurable knob with its default value.
func SetDefaults() {
	viper.SetDefault("tts.type", "auto") // auto-select best engine
	viper.SetDefault("tts.voice", "default")
	viper.SetDefault("tts.speed", 1.0)
	viper.SetDefault("tts.volume", 0.8)
	viper.SetDefault("tts.cache_path", "")

	viper.SetDefault("reader.language", "nl")
	viper.SetDefault("reader.cache_ttl", 2*time.Minute)
	viper.SetDefault("reader.max_media_items", 3)
}
