package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/cobra"
)

func newReactivateCmd(app *app) *cobra.Command {
	var channel, at string

	cmd := &cobra.Command{
		Use:   "reactivate",
		Short: "Reactivate members whose pause has run out",
		RunE: func(cmd *cobra.Command, _ []string) error {
			when, err := parseAt(at, app.now())
			if err != nil {
				return err
			}

			ids, err := app.store.ReactivateDue(cmd.Context(), domain.ChannelID(channel), when)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "reactivated %s in %s\n", id, channel); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	cmd.Flags().StringVar(&at, "at", "", "Instant to reactivate for (RFC 3339, default now)")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

// parseAt accepts RFC 3339 or the state file's timestamp layout. Empty means now.
func parseAt(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	parsed, err := domain.ParseTimestamp(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --at %q: %w", value, domain.ErrInvalidArgument)
	}
	return parsed, nil
}
