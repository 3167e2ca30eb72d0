// internal/app/serve.go
package app

import (
	"context"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"kmap/internal/clibase"
	"kmap/internal/cli"
	"kmap/internal/cmdutil"
	"kmap/internal/runutil"
	"kmap/internal/server"
)

func newServeCmd(stdout, stderr io.Writer) *cobra.Command {
	var o cli.ServeOptions
	cmd := &cobra.Command{
		Use:     "serve [flags]",
		Short:   "serve index lookups and mapping over HTTP",
		Example: clibase.ServeExamples,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Resolve(args); err != nil {
				return usageError{err}
			}
			if o.Examples {
				clibase.PrintExamples(stdout, "kmap serve", clibase.ServeExamples)
				return nil
			}
			ctx := cmd.Context()
			log := cmdutil.NewLogger(stderr, o.Quiet, o.Verbose)
			m, refName, err := loadMapper(ctx, o.Common, log)
			if err != nil {
				return err
			}
			gin.SetMode(gin.ReleaseMode)
			log.WithField("port", o.Port).Info("listening")
			err = server.ListenAndServe(ctx, m, server.Config{
				Port:    o.Port,
				Threads: runutil.EffectiveThreads(o.Threads),
				RefName: refName,
				Log:     log,
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			if err != nil {
				return ioError{err}
			}
			return nil
		},
	}
	cli.BindServe(cmd, &o)
	return cmd
}
