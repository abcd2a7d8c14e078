package cmd

import (
	"bytes"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/pkg/scene"
	"github.com/foomo/skeletonio/skeleton"
)

func NewVerifyCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "verify <skeleton-file>...",
		Short: "Check that skeleton files survive a rebuild and re-capture round trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			var (
				g    errgroup.Group
				mu   sync.Mutex
				errs error
			)
			g.SetLimit(concurrencyFlag(v))
			for _, path := range args {
				g.Go(func() error {
					if err := verifyFile(l, path); err != nil {
						mu.Lock()
						errs = multierr.Append(errs, errors.Wrap(err, path))
						mu.Unlock()
					}
					return nil
				})
			}
			_ = g.Wait()
			return errs
		},
	}

	addConcurrencyFlag(cmd.Flags(), v)

	return cmd
}

// verifyFile rebuilds the skeleton in a fresh scene, captures it again and
// compares the canonical encodings byte for byte.
func verifyFile(l *zap.Logger, path string) error {
	l = l.With(
		zap.String("run_id", uuid.New().String()),
		zap.String("file", path),
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	record, err := skeleton.Unmarshal(data)
	if err != nil {
		return err
	}

	s := hierarchy.New(l, scene.New())
	root, err := s.Reconstruct(record, "")
	if err != nil {
		return err
	}
	recaptured, err := s.Capture(root)
	if err != nil {
		return err
	}

	want, err := skeleton.Marshal(record)
	if err != nil {
		return err
	}
	got, err := skeleton.Marshal(recaptured)
	if err != nil {
		return err
	}
	if !bytes.Equal(want, got) {
		return errors.New("round trip mismatch - file is not in canonical form")
	}

	l.Info("verified", zap.Int("nodes", record.Count()))
	return nil
}
