package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rabduction/internal/audio"
	"github.com/vovakirdan/rabduction/internal/config"
	"github.com/vovakirdan/rabduction/internal/games/rabduction"
	"github.com/vovakirdan/rabduction/internal/platform/tui"
	"github.com/vovakirdan/rabduction/internal/registry"
	"github.com/vovakirdan/rabduction/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away, skipping the menu.

Controls:
  Space/Up/W   - Drop in
  Left/A/H     - Steer left
  Right/D/L    - Steer right
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Leave (when paused or over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Platforms spawn more often and scroll slower
  normal - The configured pace
  hard   - Sparse platforms that scroll faster

Examples:
  rabduction play
  rabduction play --difficulty hard
  rabduction play --seed 42
  rabduction play --config ./my-rabduction.yaml --sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Set config path and difficulty before creation
	rabduction.SetConfigPath(flagConfig)
	rabduction.SetDifficultyPreset(preset)
	stopAudio := setupAudio(logger)
	defer stopAudio()

	game, err := registry.Create(rabduction.GameID)
	if err != nil {
		stopAudio()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, logger.With("difficulty", string(preset)), terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		stopAudio()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// setupAudio starts the speaker when sound is enabled by flag or config and
// hands the sound manager to new games. The returned func stops playback.
func setupAudio(logger *log.Logger) func() {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("config not loaded, audio uses defaults", "error", err)
	}

	audioCfg := cfg.Audio
	if flagSound {
		audioCfg.Enabled = true
	}
	if !audioCfg.Enabled {
		return func() {}
	}

	sm := audio.NewSoundManager(audioCfg)
	if err := sm.Initialize(); err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return func() {}
	}
	logger.Debug("audio initialized", "rate", int(sm.SampleRate()), "clips", len(audioCfg.BounceClips))

	rabduction.SetAudioSink(sm)
	return sm.Cleanup
}
