// Package app wires the reader pipeline to the CLI commands.
package app

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dojoreader/internal/cli/scheme/colours"
	"dojoreader/internal/community"
	"dojoreader/internal/reader"
	"dojoreader/internal/reader/cache"
	"dojoreader/internal/reader/fallback"
	"dojoreader/internal/reader/screen"
	"dojoreader/internal/speech/tts"
	"dojoreader/internal/ui"
)

// App holds the long-lived pieces of a CLI session.
type App struct {
	Reader *reader.Reader
	Engine tts.Engine
	Store  *community.Store
	ctx    context.Context
	Cancel context.CancelFunc
}

// New builds the application from viper config. With dryRun the mock engine
// is used regardless of configuration, so nothing is actually spoken.
func New(dryRun bool) *App {
	engineType := viper.GetString("tts.type")
	if dryRun {
		engineType = tts.EngineTypeMock.String()
	}

	engine, err := tts.NewEngine(tts.Config{
		Type:   engineType,
		Voice:  viper.GetString("tts.voice"),
		Speed:  viper.GetFloat64("tts.speed"),
		Volume: viper.GetFloat64("tts.volume"),
	})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create tts engine")
	}

	store := community.NewStore()
	store.LoadSampleData()

	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		Reader: reader.New(engine,
			reader.WithStore(store),
			reader.WithCache(cache.New(cache.WithTTL(viper.GetDuration("reader.cache_ttl")))),
			reader.WithMaxMedia(viper.GetInt("reader.max_media_items")),
		),
		Engine: engine,
		Store:  store,
		ctx:    ctx,
		Cancel: cancel,
	}
}

func (a *App) ShowWelcome() {
	fmt.Println()
	colours.Title.Println("DojoReader, voorleeshulp voor de karate app")
	fmt.Println()
	colours.Info.Println("Beschikbare commando's:")
	fmt.Println("  dojoreader describe <snapshot.json>  - toon de voorleestekst")
	fmt.Println("  dojoreader read <snapshot.json>      - lees een scherm voor")
	fmt.Println("  dojoreader screens                   - toon alle schermtypes")
	fmt.Println("  dojoreader voices                    - toon beschikbare stemmen")
	fmt.Println("  dojoreader cache                     - beheer de caches")
	fmt.Println("  dojoreader settings                  - toon de instellingen")
}

// DescribeSnapshot prints the assembled description without speaking it.
func (a *App) DescribeSnapshot(cmd *cobra.Command, args []string) {
	snap, ok := a.loadSnapshot(args)
	if !ok {
		return
	}

	screenType := screen.Classify(snap.Route, snap.Overlay)
	colours.Screen.Printf("Scherm: %s (%s)\n", screenType, snap.Route)
	fmt.Println()
	fmt.Println(a.Reader.Describe(snap))
}

// ReadSnapshot speaks a screen snapshot aloud.
func (a *App) ReadSnapshot(cmd *cobra.Command, args []string) {
	snap, ok := a.loadSnapshot(args)
	if !ok {
		return
	}

	if err := a.Reader.Read(a.ctx, snap); err != nil {
		colours.Error.Printf("Voorlezen mislukt: %v\n", err)
		return
	}

	if mock, isMock := a.Engine.(*tts.MockEngine); isMock {
		colours.Info.Println("(droog gelezen, niets uitgesproken)")
		fmt.Println(mock.LastSpoken())
		return
	}
	colours.Success.Println("Voorlezen gestart")
}

func (a *App) loadSnapshot(args []string) (*ui.Snapshot, bool) {
	if len(args) == 0 {
		colours.Error.Println("Geef een snapshot bestand op, bijvoorbeeld: dojoreader read scherm.json")
		return nil, false
	}

	snap, err := ui.LoadSnapshot(args[0])
	if err != nil {
		colours.Error.Printf("Snapshot laden mislukt: %v\n", err)
		return nil, false
	}
	return snap, true
}

// ListScreens prints every screen type with its fallback sentence.
func (a *App) ListScreens(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("Schermtypes")
	fmt.Println()
	for _, t := range screen.All() {
		colours.Screen.Printf("%-16s", t)
		fmt.Printf(" %s\n", fallback.Sentence(t))
	}
}

// ListVoices prints the voices the configured engine offers.
func (a *App) ListVoices(cmd *cobra.Command, args []string) {
	voices, err := a.Engine.GetAvailableVoices()
	if err != nil {
		colours.Error.Printf("Stemmen ophalen mislukt: %v\n", err)
		return
	}

	colours.Title.Println("Beschikbare stemmen")
	for _, voice := range voices {
		fmt.Println("  " + voice)
	}
	colours.Success.Printf("%d stemmen gevonden\n", len(voices))
}

// CacheStatus reports the content cache and, when the engine keeps one, the
// audio cache.
func (a *App) CacheStatus(cmd *cobra.Command, args []string) {
	colours.Title.Println("Cache status")
	colours.Info.Printf("Beschrijvingen in geheugen: %d\n", a.Reader.CachedScreens())

	cacheable, ok := a.Engine.(tts.CacheableEngine)
	if !ok {
		return
	}

	stats, err := cacheable.GetCacheStats()
	if err != nil {
		colours.Error.Printf("Audio cache status mislukt: %v\n", err)
		return
	}
	colours.Info.Printf("Audio cache: %v bestanden, %.1f MB in %v\n",
		stats["cached_files"], stats["total_size_mb"], stats["cache_directory"])
}

// ClearCaches drops the content cache and any engine audio cache.
func (a *App) ClearCaches(cmd *cobra.Command, args []string) {
	a.Reader.ClearCache()

	if cacheable, ok := a.Engine.(tts.CacheableEngine); ok {
		if err := cacheable.ClearCache(); err != nil {
			colours.Error.Printf("Audio cache wissen mislukt: %v\n", err)
			return
		}
	}
	colours.Success.Println("Caches gewist")
}

// ShowSettings prints the active configuration.
func (a *App) ShowSettings(cmd *cobra.Command, args []string) {
	fmt.Println()
	colours.Title.Println("Instellingen")
	fmt.Println()
	colours.Info.Printf("Engine:  %s\n", viper.GetString("tts.type"))
	colours.Info.Printf("Stem:    %s\n", viper.GetString("tts.voice"))
	colours.Info.Printf("Snelheid: %.1fx\n", viper.GetFloat64("tts.speed"))
	colours.Info.Printf("Volume:  %.0f%%\n", viper.GetFloat64("tts.volume")*100)
	colours.Info.Printf("Taal:    %s\n", viper.GetString("reader.language"))
	colours.Info.Printf("Cache TTL: %s\n", viper.GetDuration("reader.cache_ttl"))
}
