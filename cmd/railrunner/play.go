package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/railrunner/internal/audio"
	"github.com/vovakirdan/railrunner/internal/config"
	"github.com/vovakirdan/railrunner/internal/core"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/platform/tui"
	"github.com/vovakirdan/railrunner/internal/runner"
)

var (
	flagMute   bool
	flagNoMenu bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  S/Enter      - Start
  A/D, arrows  - Move left/right
  Space/W/Up   - Jump
  C/Down       - Crawl
  P/Esc        - Pause
  R            - Restart (retry after game over)
  L            - Toggle leaderboard
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Without --difficulty a menu asks for one.

Difficulty options:
  easy   - Slow trains, sparse spawns
  normal - Default speed and spawn rate
  hard   - Fast trains, dense spawns
  fixed  - No progression

Logs are written to ~/.railrunner/railrunner.log.

Examples:
  railrunner play
  railrunner play --difficulty hard
  railrunner play --config ./my-runner.toml --mute`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the difficulty menu")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader, err := newLoader(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Without --difficulty the player picks one
	if flagDifficulty == "" && !flagNoMenu {
		initial, _ := config.ParsePreset(cfg.Difficulty.Preset)
		preset, menuErr := tui.RunDifficultySelector(initial, rt)
		if menuErr != nil {
			return fmt.Errorf("error running menu: %w", menuErr)
		}
		if preset == nil {
			return nil
		}
		config.ApplyPreset(&cfg, *preset)
	}

	var player runner.Audio = audio.Nop{}
	if cfg.Audio.Enabled && !flagMute {
		music, audioErr := audio.Open(cfg.Audio, logger)
		if audioErr != nil {
			logger.Warn("audio disabled", "error", audioErr)
		} else {
			player = music
		}
	}

	st := openStores(logger)
	defer st.Close()

	opts := tui.Options{
		Runner:  cfg,
		Runtime: rt,
		Loader:  loader,
		Audio:   player,
		Board:   leaderboard.New(st.kv, logger),
		Player:  currentUser(),
		Logger:  logger,
	}
	if st.history != nil {
		opts.History = st.history
	}

	logger.Info("starting game", "difficulty", cfg.Difficulty.Preset, "seed", flagSeed)
	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// currentUser returns the login name recorded with local runs.
func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return "local"
}
