package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/vovakirdan/railrunner/internal/leaderboard"
)

// gdataObject groups every key the game stores through gdata.
const gdataObject = "railrunner"

// GdataKV stores leaderboard data in the per-user application data
// directory managed by gdata.
type GdataKV struct {
	m *gdata.Manager
}

// OpenGdata opens the gdata storage of appName.
func OpenGdata(appName string) (*GdataKV, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return &GdataKV{m: m}, nil
}

// Get returns the value stored under key, or leaderboard.ErrNotFound.
func (k *GdataKV) Get(key string) ([]byte, error) {
	if !k.m.ObjectPropExists(gdataObject, key) {
		return nil, leaderboard.ErrNotFound
	}
	data, err := k.m.LoadObjectProp(gdataObject, key)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read key %s: %w", key, err)
	}
	return data, nil
}

// Set stores value under key.
func (k *GdataKV) Set(key string, value []byte) error {
	if err := k.m.SaveObjectProp(gdataObject, key, value); err != nil {
		return fmt.Errorf("storage: cannot write key %s: %w", key, err)
	}
	return nil
}

var _ leaderboard.KV = (*GdataKV)(nil)
