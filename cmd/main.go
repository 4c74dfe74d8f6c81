package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dojoreader/internal/app"
	"dojoreader/internal/cli/scheme/colours"
	"dojoreader/internal/config"
)

func main() {
	config.SetDefaults()

	var dryRun bool

	rootCmd := &cobra.Command{
		Use:   "dojoreader",
		Short: "Voorleeshulp voor de karate community app",
		Long: `DojoReader reads karate community screens aloud in Dutch.

It loads a recorded screen snapshot, extracts the visible text, form fields
and media, cleans the result up for speech, and hands it to a text-to-speech
engine. See 'dojoreader screens' for the screen types it understands.`,
	}
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Use the mock engine and print instead of speak")

	// The engine is created lazily so --dry-run is known by then.
	var application *app.App
	getApp := func() *app.App {
		if application == nil {
			application = app.New(dryRun)
		}
		return application
	}

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		getApp().ShowWelcome()
	}

	describeCmd := &cobra.Command{
		Use:   "describe [snapshot.json]",
		Short: "Toon de voorleestekst van een scherm snapshot",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().DescribeSnapshot(cmd, args)
		},
	}

	readCmd := &cobra.Command{
		Use:   "read [snapshot.json]",
		Short: "Lees een scherm snapshot voor",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().ReadSnapshot(cmd, args)
		},
	}

	screensCmd := &cobra.Command{
		Use:   "screens",
		Short: "Toon alle schermtypes en hun terugval zinnen",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().ListScreens(cmd, args)
		},
	}

	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "Toon de beschikbare stemmen",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().ListVoices(cmd, args)
		},
	}

	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Beheer de beschrijving- en audio-caches",
	}
	cacheStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Toon de cache status",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().CacheStatus(cmd, args)
		},
	}
	cacheClearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Wis alle caches",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().ClearCaches(cmd, args)
		},
	}
	cacheCmd.AddCommand(cacheStatusCmd, cacheClearCmd)

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Toon de TTS instellingen",
		Run: func(cmd *cobra.Command, args []string) {
			getApp().ShowSettings(cmd, args)
		},
	}

	rootCmd.AddCommand(describeCmd, readCmd, screensCmd, voicesCmd, cacheCmd, settingsCmd)

	// Stop speech cleanly on Ctrl+C.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		if application != nil {
			application.Cancel()
			application.Engine.Stop()
		}
		fmt.Println("\n" + colours.Warning.Sprint("Gestopt"))
		os.Exit(0)
	}()

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("Fout: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	viper.SetConfigName("dojoreader")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.dojoreader")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}
