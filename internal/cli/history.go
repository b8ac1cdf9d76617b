package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/keylock/internal/client"
	"github.com/MKhiriev/keylock/models"
)

func newHistoryCommand(buildInfo models.AppBuildInfo, o options) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List links created from this machine",
		Long: `Lists the links created by this client, newest first. Expired links are
removed before listing. Only each link's lifetime is stored locally: the
secrets and the links themselves are not kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, buildInfo, o, func(ctx context.Context, a *client.App) error {
				return runHistory(ctx, cmd, a, time.Now().UTC())
			})
		},
	}
}

func runHistory(ctx context.Context, cmd *cobra.Command, a *client.App, now time.Time) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	history := a.Services().HistoryService

	if _, err := history.Prune(ctx, now); err != nil {
		return fmt.Errorf("prune history: %w", err)
	}

	entries, err := history.List(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(errOut, infoText.Sprint("→")+" No links yet. Create one with "+highlightText.Sprint("keylock share"))
		return nil
	}

	fmt.Fprintf(out, "%-16s  %-16s  %8s  %5s\n", "CREATED", "EXPIRES", "LIFETIME", "VIEWS")
	for _, e := range entries {
		fmt.Fprintf(out, "%-16s  %-16s  %8s  %5d\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			e.ExpiresAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%dm", e.ExpireMinutes),
			e.MaxViews)
	}

	return nil
}
