package cmd

import (
	"fmt"

	"github.com/bnema/matchy/internal/application"
	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Manage recurring channel matches",
	}

	cmd.AddCommand(
		newScheduleSetCmd(app),
		newScheduleListCmd(app),
		newScheduleCancelCmd(app),
		newScheduleDueCmd(app),
		newScheduleRunCmd(app),
	)

	return cmd
}

func newScheduleSetCmd(app *app) *cobra.Command {
	var (
		actor, channel            string
		membersMin, weekday, hour int
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Schedule a weekly match in a channel (requires the matcher scope)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := app.service.Schedule(cmd.Context(), application.ScheduleCommand{
				Actor:      domain.MemberID(actor),
				Channel:    domain.ChannelID(channel),
				MembersMin: membersMin,
				Weekday:    weekday,
				Hour:       hour,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "scheduled %s: groups of %d, next run %s\n",
				channel, membersMin, domain.FormatTimestamp(run.Next))
			return err
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "User id performing the change")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	cmd.Flags().IntVar(&membersMin, "members-min", application.DefaultMembersMin, "Minimum members per group")
	cmd.Flags().IntVar(&weekday, "weekday", 0, "Weekday, 0 (Monday) to 6 (Sunday)")
	cmd.Flags().IntVar(&hour, "hour", application.DefaultTaskHour, "Hour of the day in UTC")
	_ = cmd.MarkFlagRequired("actor")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

func newScheduleListCmd(app *app) *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled matches for a channel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := app.now()
			runs := app.service.ChannelSchedule(domain.ChannelID(channel), now)

			rendered, err := app.render.schedule(domain.ChannelID(channel), runs, now)
			if err != nil {
				return fmt.Errorf("render schedule: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

func newScheduleCancelCmd(app *app) *cobra.Command {
	var actor, channel string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel all scheduled matches in a channel (requires the matcher scope)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Cancel(cmd.Context(), domain.MemberID(actor), domain.ChannelID(channel)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cancelled scheduled matches in %s\n", channel)
			return err
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "User id performing the change")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	_ = cmd.MarkFlagRequired("actor")
	_ = cmd.MarkFlagRequired("channel")
	return cmd
}

func newScheduleDueCmd(app *app) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List matches due at an hour and those due a day later",
		RunE: func(cmd *cobra.Command, _ []string) error {
			when, err := parseAt(at, app.now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, task := range app.store.ListDueTasks(when) {
				if _, err := fmt.Fprintf(out, "due\t%s\t%d\n", task.Channel, task.MembersMin); err != nil {
					return err
				}
			}
			for _, task := range app.matcher.UpcomingTasks(when) {
				if _, err := fmt.Fprintf(out, "upcoming\t%s\t%d\n", task.Channel, task.MembersMin); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to check (RFC 3339, default now)")
	return cmd
}

func newScheduleRunCmd(app *app) *cobra.Command {
	var at, membersPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Match every channel with a task due at an hour",
		RunE: func(cmd *cobra.Command, _ []string) error {
			when, err := parseAt(at, app.now())
			if err != nil {
				return err
			}
			candidates, err := loadMembers(membersPath)
			if err != nil {
				return err
			}

			roster := func(domain.ChannelID) ([]domain.Member, error) { return candidates, nil }
			results, runErr := app.matcher.RunDueTasks(cmd.Context(), when, roster)
			for _, result := range results {
				if result.Err != nil {
					continue
				}
				rendered, err := app.render.groups(result.Groups, groupOptions(result.Channel, false, false))
				if err != nil {
					return fmt.Errorf("render groups: %w", err)
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
					return err
				}
			}
			return runErr
		},
	}

	cmd.Flags().StringVar(&at, "at", "", "Instant to run for (RFC 3339, default now)")
	cmd.Flags().StringVar(&membersPath, "members", "", "Members file used as every channel's roster")
	_ = cmd.MarkFlagRequired("members")
	return cmd
}
