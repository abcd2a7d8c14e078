package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/foomo/skeletonio/skeleton"
)

func NewDataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data <skeleton-file>",
		Short: "Print the record tree of a skeleton file without creating any nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			record, err := skeleton.Decode(f)
			if err := multierr.Append(err, f.Close()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			record.PrintRecord(out, 0)
			fmt.Fprintf(out, "\nnodes: %d\njoints: %d\ndepth: %d\n",
				record.Count(), record.Joints(), record.Depth())
			return nil
		},
	}
	return cmd
}
