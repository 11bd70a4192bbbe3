package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/railrunner/internal/assets"
	"github.com/vovakirdan/railrunner/internal/config"
	"github.com/vovakirdan/railrunner/internal/leaderboard"
	"github.com/vovakirdan/railrunner/internal/storage"
)

// Leaderboard backends.
const (
	storeSQLite = "sqlite"
	storeGdata  = "gdata"
)

// gdataAppName is the application directory used by the gdata backend.
const gdataAppName = "railrunner"

// newLogger creates the shared logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "railrunner",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.railrunner/railrunner.log for appending so logs do
// not tear the game screen.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".railrunner")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "railrunner.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the runner config and applies the --difficulty preset.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// newLoader returns the model loader for --assets.
func newLoader(logger *log.Logger) (*assets.FSLoader, error) {
	if flagAssets == "" {
		return assets.NewFSLoader(assets.Embedded(), logger), nil
	}
	return assets.NewDirLoader(flagAssets, logger)
}

// stores bundles the leaderboard backend and the run history.
// History is nil unless SQLite is available.
type stores struct {
	kv      leaderboard.KV
	history *storage.Store
}

func (s stores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}

// openStores opens the backend chosen by --store. The run history always
// lives in SQLite. Failures degrade to fewer features, never to an error.
func openStores(logger *log.Logger) stores {
	var s stores

	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		s.history = db
	}

	switch flagStore {
	case storeGdata:
		kv, err := storage.OpenGdata(gdataAppName)
		if err != nil {
			logger.Warn("could not open gdata store", "error", err)
			break
		}
		s.kv = kv
	default:
		if flagStore != storeSQLite {
			logger.Warn("unknown store, using sqlite", "store", flagStore)
		}
		if s.history != nil {
			s.kv = s.history
		}
	}
	return s
}
