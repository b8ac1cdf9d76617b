package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/keylock/internal/client"
	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/config"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/models"
)

const logRole = "keylock"

// Option customises the command tree.
type Option func(*options)

type options struct {
	clipboard clipboard.Writer
	logger    *logger.Logger
}

// WithClipboard replaces the system clipboard used by --copy.
func WithClipboard(w clipboard.Writer) Option {
	return func(o *options) { o.clipboard = w }
}

// WithLogger replaces the file logger built from the configuration.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.logger = l }
}

// NewRootCommand builds the keylock command tree.
func NewRootCommand(buildInfo models.AppBuildInfo, opts ...Option) *cobra.Command {
	o := options{clipboard: clipboard.SystemWriter{}}
	for _, opt := range opts {
		opt(&o)
	}

	root := &cobra.Command{
		Use:   "keylock",
		Short: "Share secrets through one-time links",
		Long: `keylock sends a secret to the keylock service and returns a link that can
be opened a limited number of times before it expires.

Run without a command to open the interactive interface.

Examples:
  # Share a secret for 30 minutes and 1 view
  keylock share --expiry 30 --views 1 "db password: hunter2"

  # Share the contents of a file
  keylock share < credentials.txt

  # Read a secret
  keylock redeem https://keylock.onrender.com/secret/abc123`,
		Version:       buildInfo.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, buildInfo, o, func(ctx context.Context, app *client.App) error {
				return app.Run(ctx)
			})
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newShareCommand(buildInfo, o),
		newRedeemCommand(buildInfo, o),
		newHistoryCommand(buildInfo, o),
		newVersionCommand(buildInfo),
	)

	return root
}

// withApp loads the configuration from cmd's flags, wires the application
// and runs fn with it.
func withApp(cmd *cobra.Command, buildInfo models.AppBuildInfo, o options, fn func(ctx context.Context, app *client.App) error) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := o.logger
	if log == nil {
		log = logger.NewClientLogger(logRole, cfg.App.LogFile, cfg.App.LogLevel)
		defer log.Close()
	}

	ctx := log.WithContext(cmd.Context())
	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Error().Err(err).Str("func", "cli.withApp").Msg("failed to create application")
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("func", "cli.withApp").Msg("failed to close application")
		}
	}()

	return fn(ctx, app)
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) int {
	root := NewRootCommand(buildInfo)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, errorText.Sprint("✗")+" "+err.Error())
		return 1
	}
	return 0
}
