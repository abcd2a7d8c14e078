package cmd

import (
	"context"

	"github.com/foomo/keel"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/foomo/skeletonio/pkg/handler"
)

func NewServeCommand() *cobra.Command {
	v := newViper()
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a skeleton library over http",
		RunE: func(cmd *cobra.Command, args []string) error {
			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
			)

			l := svr.Logger()

			library, err := newLibrary(cmd.Context(), v, l)
			if err != nil {
				return errors.Wrap(err, "failed to create library")
			}

			svr.AddClosers(func(ctx context.Context) error {
				return library.Close()
			})

			svr.AddServices(
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					handler.NewHTTP(l.Named("inst.handler"), library, handler.WithBasePath(basePathFlag(v))),
					middleware.Logger(),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addAddressFlag(flags, v)
	addBasePathFlag(flags, v)
	addBaseDirFlag(flags, v)
	addHistoryLimitFlag(flags, v)
	addStorageTypeFlag(flags, v)
	addStorageBlobBucketFlag(flags, v)
	addStorageBlobPrefixFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)

	return cmd
}
