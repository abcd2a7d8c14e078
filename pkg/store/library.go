package store

import (
	"context"
	"strings"

	"github.com/foomo/skeletonio/pkg/metrics"
	"github.com/foomo/skeletonio/skeleton"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrInvalidName = errors.New("invalid skeleton name")

type (
	// Library a named collection of skeletons on top of a History
	Library struct {
		l       *zap.Logger
		history *History
	}
	LibraryOption func(*libraryOptions)

	libraryOptions struct {
		historyOptions []HistoryOption
	}
)

// ------------------------------------------------------------------------------------------------
// ~ Options
// ------------------------------------------------------------------------------------------------

func LibraryWithStorage(s Storage) LibraryOption {
	return func(o *libraryOptions) {
		o.historyOptions = append(o.historyOptions, HistoryWithStorage(s))
	}
}

func LibraryWithBaseDir(v string) LibraryOption {
	return func(o *libraryOptions) {
		o.historyOptions = append(o.historyOptions, HistoryWithBaseDir(v))
	}
}

func LibraryWithHistoryLimit(v int) LibraryOption {
	return func(o *libraryOptions) {
		o.historyOptions = append(o.historyOptions, HistoryWithLimit(v))
	}
}

// ------------------------------------------------------------------------------------------------
// ~ Constructor
// ------------------------------------------------------------------------------------------------

func NewLibrary(l *zap.Logger, opts ...LibraryOption) (*Library, error) {
	o := &libraryOptions{}
	for _, opt := range opts {
		opt(o)
	}

	history, err := NewHistory(l.Named("inst.history"), o.historyOptions...)
	if err != nil {
		return nil, err
	}

	return &Library{
		l:       l.Named("inst.library"),
		history: history,
	}, nil
}

// ------------------------------------------------------------------------------------------------
// ~ Public methods
// ------------------------------------------------------------------------------------------------

// Save stores the record tree under the given name, keeping earlier versions
// within the history limit.
func (lib *Library) Save(ctx context.Context, name string, record *skeleton.Record) error {
	if err := validateName(name); err != nil {
		return err
	}

	data, err := skeleton.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal skeleton %q", name)
	}

	if err := lib.history.Add(ctx, name, data); err != nil {
		metrics.LibrarySaveFailedCounter.WithLabelValues().Inc()
		return errors.Wrapf(err, "failed to store skeleton %q", name)
	}

	lib.l.Info("saved skeleton",
		zap.String("name", name),
		zap.Int("nodes", record.Count()),
	)
	return nil
}

// Load returns the current record tree stored under the given name.
// Returns os.ErrNotExist if the name is unknown.
func (lib *Library) Load(ctx context.Context, name string) (*skeleton.Record, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := lib.history.GetCurrent(ctx, name)
	if err != nil {
		return nil, err
	}
	return skeleton.Unmarshal(data)
}

// LoadBytes returns the current serialized form stored under the given name.
func (lib *Library) LoadBytes(ctx context.Context, name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return lib.history.GetCurrent(ctx, name)
}

// List the names of all stored skeletons.
func (lib *Library) List(ctx context.Context) ([]string, error) {
	return lib.history.Names(ctx)
}

// Versions the backup keys stored for a name, newest first.
func (lib *Library) Versions(ctx context.Context, name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	return lib.history.Versions(ctx, name)
}

// Close releases the underlying storage.
func (lib *Library) Close() error {
	return lib.history.Close()
}

// ------------------------------------------------------------------------------------------------
// ~ Private
// ------------------------------------------------------------------------------------------------

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return errors.Wrap(ErrInvalidName, name)
	}
	return nil
}
