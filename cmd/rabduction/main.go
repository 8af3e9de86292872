// rabduction is a vertical endless runner for the terminal.
//
// Usage:
//
//	rabduction                   - Start the menu (pick difficulty, play, view scores)
//	rabduction play              - Play a run straight away
//	rabduction scores            - Show high scores
//	rabduction serve             - Start SSH server for remote play
//	rabduction config            - Print the effective configuration
//	rabduction list              - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: $XDG_DATA_HOME/rabduction/scores.db)
//	--config <path>      - Load a custom YAML config
//	--sound              - Enable bounce sounds
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rabduction/internal/core"
	"github.com/vovakirdan/rabduction/internal/games/rabduction"
	"github.com/vovakirdan/rabduction/internal/platform/tui"
	"github.com/vovakirdan/rabduction/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSound    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rabduction",
	Short: "Rabduction - fall, bounce, survive",
	Long: `Rabduction is a vertical endless runner for your terminal.

You drop into a field of rising platforms. Land on one to bounce back up,
steer left and right to catch the next, and do not fall out of the bottom.
The score counts how long you last.

Available commands:
  play     - Start a run directly
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  list     - Show registered games

Examples:
  rabduction
  rabduction play --difficulty hard
  rabduction play --sound
  rabduction serve --ssh :2222
  rabduction scores`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default under $XDG_DATA_HOME)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play bounce sounds (overrides audio.enabled)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// runMenu runs the menu session: difficulty picker, game and scoreboard.
func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	rabduction.SetConfigPath(flagConfig)
	stopAudio := setupAudio(logger)
	defer stopAudio()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.RunSession(rabduction.GameID, store, logger, terminalConfig())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		stopAudio()
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// newFileLogger opens the log file under the XDG state dir. The TUI owns the
// terminal, so local runs never log to stderr.
func newFileLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	path, err := xdg.StateFile("rabduction/rabduction.log")
	if err != nil {
		return nil, nil, fmt.Errorf("cannot resolve log path: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "rabduction",
	})

	closed := false
	return logger, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
