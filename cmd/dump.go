package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/pkg/scene"
	"github.com/foomo/skeletonio/skeleton"
)

func NewDumpCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "dump <scene-file> <root-node>",
		Short: "Capture a joint hierarchy from a scene document into a skeleton file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			sc, err := scene.ReadDocumentFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read scene document")
			}

			record, err := hierarchy.New(l, sc).Capture(args[1])
			if err != nil {
				return err
			}
			if record == nil {
				// not a joint or transform, or leaf geometry - nothing to dump
				l.Warn("root node yields no skeleton", zap.String("root", args[1]))
				return nil
			}

			if output := outputFlag(v); output != "" {
				if err := writeRecordFile(record, output); err != nil {
					return err
				}
				l.Info("dumped skeleton",
					zap.String("root", args[1]),
					zap.String("output", output),
					zap.Int("nodes", record.Count()),
				)
			} else {
				if err := skeleton.Encode(cmd.OutOrStdout(), record); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			if name := storeNameFlag(v); name != "" {
				library, err := newLibrary(cmd.Context(), v, l)
				if err != nil {
					return err
				}
				err = library.Save(cmd.Context(), name, record)
				return multierr.Append(err, library.Close())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addOutputFlag(flags, v)
	addStoreNameFlag(flags, v)
	addBaseDirFlag(flags, v)
	addHistoryLimitFlag(flags, v)
	addStorageTypeFlag(flags, v)
	addStorageBlobBucketFlag(flags, v)
	addStorageBlobPrefixFlag(flags, v)

	return cmd
}

func writeRecordFile(record *skeleton.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return multierr.Append(skeleton.Encode(f, record), f.Close())
}
