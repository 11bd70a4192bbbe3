// Package leaderboard keeps the top scores under a single key of a
// key-value store.
package leaderboard

import (
	"encoding/json"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Key is the store key the leaderboard is persisted under.
const Key = "railRunnerLeaderboard"

// MaxEntries is the number of scores kept.
const MaxEntries = 10

// DateLayout is the format of Entry.Date.
const DateLayout = "2006-01-02"

// ErrNotFound is returned by KV.Get for missing keys.
var ErrNotFound = errors.New("leaderboard: key not found")

// Entry is one leaderboard row.
type Entry struct {
	Score uint64 `json:"score"`
	Date  string `json:"date"`
}

// KV is the storage backend of a Board.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Board reads and writes the leaderboard. A Board with a nil KV is
// always empty and drops writes. Boards are safe for concurrent use; games
// served over SSH share one.
type Board struct {
	mu     sync.Mutex
	kv     KV
	logger *log.Logger
	now    func() time.Time
}

// New creates a board over kv. logger may be nil.
func New(kv KV, logger *log.Logger) *Board {
	return &Board{kv: kv, logger: logger, now: time.Now}
}

// SetClock replaces the time source used to date new entries.
func (b *Board) SetClock(now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.now = now
}

// Load returns the stored entries sorted by score, highest first.
// Missing, unreadable or malformed data yields an empty list.
func (b *Board) Load() []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.load()
}

func (b *Board) load() []Entry {
	if b.kv == nil {
		return []Entry{}
	}

	data, err := b.kv.Get(Key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			b.warn("cannot read leaderboard", "error", err)
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		b.warn("malformed leaderboard data", "error", err)
		return []Entry{}
	}
	return normalize(entries)
}

// Save inserts score, keeps the best MaxEntries and persists the result.
// The updated list is returned even when the write fails.
func (b *Board) Save(score uint64) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := append(b.load(), Entry{Score: score, Date: b.now().Format(DateLayout)})
	entries = normalize(entries)

	if b.kv == nil {
		return entries
	}

	data, err := json.Marshal(entries)
	if err != nil {
		b.warn("cannot encode leaderboard", "error", err)
		return entries
	}
	if err := b.kv.Set(Key, data); err != nil {
		b.warn("cannot save leaderboard", "score", score, "error", err)
	}
	return entries
}

// Best returns the top score, or 0 for an empty board.
func (b *Board) Best() uint64 {
	entries := b.Load()
	if len(entries) == 0 {
		return 0
	}
	return entries[0].Score
}

// normalize sorts descending and truncates. Equal scores keep their
// insertion order.
func normalize(entries []Entry) []Entry {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	return entries
}

func (b *Board) warn(msg string, keyvals ...interface{}) {
	if b.logger != nil {
		b.logger.Warn(msg, keyvals...)
	}
}
