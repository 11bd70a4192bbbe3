package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

//go:embed models/*.yaml
var embedded embed.FS

// Embedded returns the built-in model descriptors, rooted so that paths look
// like "models/player.yaml".
func Embedded() fs.FS {
	return embedded
}

// FSLoader loads model descriptors from a filesystem on background
// goroutines.
type FSLoader struct {
	fsys   fs.FS
	logger *log.Logger
	wg     sync.WaitGroup
}

// NewFSLoader creates a loader reading from fsys. logger may be nil.
func NewFSLoader(fsys fs.FS, logger *log.Logger) *FSLoader {
	return &FSLoader{fsys: fsys, logger: logger}
}

// NewDirLoader creates a loader reading from a directory on disk.
func NewDirLoader(dir string, logger *log.Logger) (*FSLoader, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot open %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	return NewFSLoader(os.DirFS(dir), logger), nil
}

// Load reads path in the background and calls done exactly once with the
// result. If ctx is cancelled first, done receives ctx.Err().
func (l *FSLoader) Load(ctx context.Context, path string, done func(*Model, error)) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		m, err := l.load(ctx, path)
		if err != nil && l.logger != nil {
			l.logger.Warn("asset load failed", "path", path, "error", err)
		}
		done(m, err)
	}()
}

// LoadSync reads path on the calling goroutine.
func (l *FSLoader) LoadSync(path string) (*Model, error) {
	return l.load(context.Background(), path)
}

// Wait blocks until every pending load has called back.
func (l *FSLoader) Wait() {
	l.wg.Wait()
}

func (l *FSLoader) load(ctx context.Context, path string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("assets: cannot read %s: %w", path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse(data)
}
