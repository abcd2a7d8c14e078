package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	KeyPrefix  = "skeleton-"
	KeySuffix  = ".json"
	currentTag = "current"
)

type (
	// History keeps the current version plus a bounded number of timestamped
	// backups per skeleton name.
	History struct {
		l       *zap.Logger
		storage Storage
		baseDir string // directory used for default filesystem storage
		limit   int
		mu      sync.RWMutex
	}
	HistoryOption func(*History)
)

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func HistoryWithLimit(v int) HistoryOption {
	return func(o *History) {
		o.limit = v
	}
}

func HistoryWithBaseDir(v string) HistoryOption {
	return func(o *History) {
		o.baseDir = v
	}
}

func HistoryWithStorage(s Storage) HistoryOption {
	return func(o *History) {
		o.storage = s
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewHistory(l *zap.Logger, opts ...HistoryOption) (*History, error) {
	inst := &History{
		l:       l,
		baseDir: "/var/lib/skeletonio",
		limit:   2,
	}

	for _, opt := range opts {
		opt(inst)
	}

	// If no storage provided, create a default filesystem storage
	if inst.storage == nil {
		storage, err := NewFilesystemStorage(inst.baseDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create default filesystem storage: %w", err)
		}
		inst.storage = storage
	}

	return inst, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Add writes the JSON bytes to storage as both a timestamped backup and the
// current version for the given name, then drops backups beyond the limit.
func (h *History) Add(ctx context.Context, name string, jsonBytes []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	backupKey := versionKey(name, time.Now().Format(time.RFC3339Nano))

	if err := h.storage.Write(ctx, backupKey, jsonBytes); err != nil {
		return errors.Wrap(err, "failed to write backup version")
	}

	h.l.Debug("writing versions",
		zap.String("backup", backupKey),
		zap.String("current", currentKey(name)),
	)

	if err := h.storage.Write(ctx, currentKey(name), jsonBytes); err != nil {
		return errors.Wrap(err, "failed to write current version")
	}

	if err := h.cleanup(ctx, name); err != nil {
		return errors.Wrap(err, "failed to clean up history")
	}

	return nil
}

// GetCurrent reads the current version stored under the given name.
func (h *History) GetCurrent(ctx context.Context, name string) ([]byte, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.storage.Read(ctx, currentKey(name))
}

// Versions lists the backup keys for a name, newest first.
func (h *History) Versions(ctx context.Context, name string) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.versions(ctx, name)
}

// Names lists all skeleton names that have a current version.
func (h *History) Names(ctx context.Context) ([]string, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	keys, err := h.storage.List(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, key := range keys {
		if name, ok := nameFromCurrentKey(key); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Close releases resources held by the history storage.
func (h *History) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.storage != nil {
		return h.storage.Close()
	}
	return nil
}

// ------------------------------------------------------------------------------------------------
// ~ Private methods
// ------------------------------------------------------------------------------------------------

func (h *History) versions(ctx context.Context, name string) (keys []string, err error) {
	all, err := h.storage.List(ctx, KeyPrefix+name+"-")
	if err != nil {
		return nil, err
	}

	// names may contain dashes themselves, so a prefix match is not enough -
	// only keys whose remainder is a timestamp belong to this name
	for _, key := range all {
		version, ok := strings.CutSuffix(strings.TrimPrefix(key, KeyPrefix+name+"-"), KeySuffix)
		if !ok || version == currentTag {
			continue
		}
		if _, err := time.Parse(time.RFC3339Nano, version); err != nil {
			continue
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (h *History) cleanup(ctx context.Context, name string) error {
	keys, err := h.versions(ctx, name)
	if err != nil {
		return errors.Wrap(err, "could not generate cleanup list")
	}

	if len(keys) <= h.limit {
		return nil
	}

	for _, key := range keys[h.limit:] {
		h.l.Debug("removing outdated backup", zap.String("key", key))
		if err := h.storage.Delete(ctx, key); err != nil {
			return fmt.Errorf("could not remove key %s: %w", key, err)
		}
	}

	return nil
}

func currentKey(name string) string {
	return versionKey(name, currentTag)
}

func versionKey(name, version string) string {
	return KeyPrefix + name + "-" + version + KeySuffix
}

func nameFromCurrentKey(key string) (string, bool) {
	if !strings.HasPrefix(key, KeyPrefix) {
		return "", false
	}
	name, ok := strings.CutSuffix(strings.TrimPrefix(key, KeyPrefix), "-"+currentTag+KeySuffix)
	return name, ok
}
