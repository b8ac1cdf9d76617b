package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/keylock/internal/app"
	"github.com/MKhiriev/keylock/internal/client"
	"github.com/MKhiriev/keylock/internal/clipboard"
	"github.com/MKhiriev/keylock/internal/controller"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/models"
)

func newShareCommand(buildInfo models.AppBuildInfo, o options) *cobra.Command {
	var (
		expiry string
		views  string
		copyTo bool
	)

	cmd := &cobra.Command{
		Use:   "share [secret]",
		Short: "Create a one-time link for a secret",
		Long: `Sends the secret to the keylock service and prints the link on stdout.

The secret is taken from the arguments, or read from stdin when no argument
is given. Blank or invalid --expiry and --views fall back to the configured
defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := readSecret(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			return withApp(cmd, buildInfo, o, func(ctx context.Context, a *client.App) error {
				input := models.ShareInput{Secret: secret, ExpiryRaw: expiry, ViewsRaw: views}
				return runShare(ctx, cmd, a, input, copyTo, o)
			})
		},
	}

	cmd.Flags().StringVarP(&expiry, "expiry", "e", "", "minutes until the link expires")
	cmd.Flags().StringVarP(&views, "views", "n", "", "how many times the secret can be viewed")
	cmd.Flags().BoolVar(&copyTo, "copy", false, "copy the link to the clipboard")

	return cmd
}

func readSecret(in io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read secret from stdin: %w", err)
	}
	return string(b), nil
}

func runShare(ctx context.Context, cmd *cobra.Command, a *client.App, input models.ShareInput, copyTo bool, o options) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	ctrl := controller.NewSubmissionController(a.Services().ShareService)
	defer ctrl.Close()

	stop := startSpinner(errOut, "Creating link...")
	state, err := ctrl.Run(ctx, input)
	stop()
	if err != nil {
		if idle, ok := state.(controller.Idle); ok && idle.Notice != "" {
			return errors.New(idle.Notice)
		}
		return err
	}

	switch state := state.(type) {
	case controller.Failed:
		return errors.New(state.Message)
	case controller.Success:
		result := state.Result
		fmt.Fprintln(out, result.URL)
		fmt.Fprintf(errOut, "%s Link created %s\n",
			successText.Sprint("✓"),
			mutedText.Sprintf("expires %s, %d view(s)", result.ExpiresAt.Local().Format("2006-01-02 15:04"), result.MaxViews))

		if copyTo {
			copyText(errOut, o.clipboard, result.URL, logger.FromContext(ctx))
		}
	}

	return nil
}

// copyText copies text and reports the outcome on w. A clipboard failure is
// a warning, never an error of the command.
func copyText(w io.Writer, writer clipboard.Writer, text string, log *logger.Logger) {
	helper := clipboard.NewHelper(writer, clipboard.SystemClock(), log)
	defer helper.Close()

	if err := helper.Copy(text); err != nil {
		fmt.Fprintf(w, "%s %s: %v\n", warningText.Sprint("!"), app.MsgCopyFailed, err)
		return
	}
	fmt.Fprintln(w, successText.Sprint("✓")+" "+app.MsgCopied)
}
