package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/railrunner/internal/config"
	"github.com/vovakirdan/railrunner/internal/core"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/runner"
	"github.com/vovakirdan/railrunner/internal/session"
	"github.com/vovakirdan/railrunner/internal/storage"
)

// RunRecorder stores finished runs. *storage.Store implements it.
type RunRecorder interface {
	RecordRun(r storage.Run) (int64, error)
}

// Options configures a terminal game.
type Options struct {
	Runner  config.RunnerConfig
	Runtime core.RuntimeConfig
	Loader  runner.AssetLoader
	Audio   runner.Audio
	Board   *leaderboard.Board
	History RunRecorder // Optional
	Player  string      // Name recorded with every run
	Logger  *log.Logger
}

// Model is the Bubble Tea model running one rail runner game.
type Model struct {
	game       *runner.Game
	scene      *Scene
	scoreboard *Scoreboard
	held       *HeldKeys
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	logger     *log.Logger
	last       time.Time
	boardShown bool
	quitting   bool
}

// NewModel creates the game, its scene and the input source.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewScene(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	game := runner.New(runner.Options{
		Config: opts.Runner,
		Seed:   cfg.Seed,
		Loader: opts.Loader,
		Audio:  opts.Audio,
		Scene:  scene,
		Board:  opts.Board,
		Logger: logger,
	})

	if opts.History != nil {
		history := opts.History
		difficulty := opts.Runner.Difficulty.Preset
		game.OnGameOver(func(score uint64) {
			run := storage.Run{
				Player:     opts.Player,
				Score:      score,
				Duration:   time.Duration(game.Elapsed() * float64(time.Second)),
				Seed:       game.RunSeed(),
				Difficulty: difficulty,
			}
			if _, err := history.RecordRun(run); err != nil {
				logger.Warn("cannot record run", "error", err)
			}
		})
	}

	h := help.New()
	h.Width = cfg.ScreenW
	board := NewScoreboard(cfg.ScreenW, max(cfg.ScreenH-1, 1))

	return Model{
		game:       game,
		scene:      scene,
		scoreboard: &board,
		held:       NewHeldKeys(DefaultHoldTicks),
		keys:       DefaultKeyMap(),
		help:       h,
		config:     cfg,
		logger:     logger,
	}
}

// Game returns the underlying game.
func (m Model) Game() *runner.Game {
	return m.game
}

// Init draws the idle screen and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.scene.RenderFrame(m.game.Frame())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, ctl := m.keys.Map(msg)

	switch cmd {
	case CommandQuit:
		m.quitting = true
		m.game.Close()
		return m, tea.Quit
	case CommandScreenshot:
		m.saveScreenshot()
	case CommandStart:
		m.game.Start()
	case CommandPause:
		m.game.TogglePause()
	case CommandRestart:
		if !m.game.Retry() {
			m.game.Restart()
		}
		m.held.Reset()
	case CommandLeaderboard:
		visible, entries := m.game.ToggleLeaderboard()
		m.boardShown = visible
		m.scoreboard.SetEntries(entries)
	}

	if m.boardShown {
		m.scoreboard.Scroll(msg)
		return m, nil
	}
	if ctl != ControlNone {
		m.held.Press(ctl)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.game.Resize(msg.Width, max(msg.Height-1, 1))
	m.scoreboard.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
// The game clamps long gaps.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FixedDelta()
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now

	in := m.held.Poll()
	if m.game.State() != session.Running {
		m.held.Reset()
	}
	res := m.game.Step(dt, in)
	if res.Collided {
		m.logger.Debug("collision", "obstacle", res.HitID, "score", res.Score)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".railrunner", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("railrunner_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.scene.Screen().String()), 0o600)
}

// View renders the scene, or the leaderboard when shown, above the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	body := m.scene.View()
	if m.boardShown {
		body = m.scoreboard.View()
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
