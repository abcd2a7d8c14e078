package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/foomo/skeletonio/pkg/hierarchy"
	"github.com/foomo/skeletonio/pkg/scene"
)

func NewLoadCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "load <skeleton-file>",
		Short: "Rebuild the hierarchy from a skeleton file into a scene document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l := zap.L()

			sc := scene.New()
			root, err := hierarchy.New(l, sc).LoadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to load skeleton")
			}
			l.Info("rebuilt hierarchy",
				zap.String("root", root),
				zap.Int("nodes", sc.Len()),
			)

			if output := outputFlag(v); output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				return multierr.Append(scene.WriteDocument(f, sc), f.Close())
			}
			return scene.WriteDocument(cmd.OutOrStdout(), sc)
		},
	}

	addOutputFlag(cmd.Flags(), v)

	return cmd
}
