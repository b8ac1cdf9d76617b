package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/keylock/internal/client"
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/service"
	"github.com/MKhiriev/keylock/models"
)

func newRedeemCommand(buildInfo models.AppBuildInfo, o options) *cobra.Command {
	var copyTo bool

	cmd := &cobra.Command{
		Use:   "redeem <link|reference>",
		Short: "Read a secret from a one-time link",
		Long: `Fetches the secret behind a link and prints it on stdout.

Every successful read uses one of the secret's views.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reference := service.ParseReference(args[0])

			return withApp(cmd, buildInfo, o, func(ctx context.Context, a *client.App) error {
				return runRedeem(ctx, cmd, a, reference, copyTo, o)
			})
		},
	}

	cmd.Flags().BoolVar(&copyTo, "copy", false, "copy the secret to the clipboard instead of printing it")

	return cmd
}

func runRedeem(ctx context.Context, cmd *cobra.Command, a *client.App, reference string, copyTo bool, o options) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	ctrl := controller.NewRedemptionController(a.Services().RedeemService, reference)
	defer ctrl.Close()

	stop := startSpinner(errOut, "Fetching secret...")
	state := ctrl.Run(ctx)
	stop()

	switch state := state.(type) {
	case controller.NotFound:
		return errors.New(state.Message)
	case controller.Found:
		if copyTo {
			copyText(errOut, o.clipboard, state.Secret.Content, logger.FromContext(ctx))
		} else {
			fmt.Fprintln(out, state.Secret.Content)
		}

		if remaining := state.Secret.RemainingViews; remaining != nil {
			fmt.Fprintf(errOut, "%s %d view(s) left\n", infoText.Sprint("→"), *remaining)
		}
	}

	return nil
}
