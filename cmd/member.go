package cmd

import (
	"fmt"

	"github.com/bnema/matchy/internal/application"
	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage channel membership",
	}

	cmd.AddCommand(
		newMemberJoinCmd(app),
		newMemberLeaveCmd(app),
		newMemberPauseCmd(app),
		newMemberListCmd(app),
	)

	return cmd
}

func newMemberJoinCmd(app *app) *cobra.Command {
	var user, channel string

	cmd := &cobra.Command{
		Use:   "join",
		Short: "Join matching in a channel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Join(cmd.Context(), domain.MemberID(user), domain.ChannelID(channel)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s joined matching in %s\n", user, channel)
			return err
		},
	}

	addMembershipFlags(cmd, &user, &channel)
	return cmd
}

func newMemberLeaveCmd(app *app) *cobra.Command {
	var user, channel string

	cmd := &cobra.Command{
		Use:   "leave",
		Short: "Leave matching in a channel",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Leave(cmd.Context(), domain.MemberID(user), domain.ChannelID(channel)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s left matching in %s\n", user, channel)
			return err
		},
	}

	addMembershipFlags(cmd, &user, &channel)
	return cmd
}

func newMemberPauseCmd(app *app) *cobra.Command {
	var (
		user, channel string
		days          int
	)

	cmd := &cobra.Command{
		Use:   "pause",
		Short: "Pause matching in a channel for a number of days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			until, err := app.service.Pause(cmd.Context(), domain.MemberID(user), domain.ChannelID(channel), days)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s paused in %s until %s\n", user, channel, domain.FormatTimestamp(until))
			return err
		},
	}

	addMembershipFlags(cmd, &user, &channel)
	cmd.Flags().IntVar(&days, "days", application.DefaultPauseDays, "Days to pause for")
	return cmd
}

func newMemberListCmd(app *app) *cobra.Command {
	var channel, membersPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List active and paused members of a channel and its scheduled matches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidates, err := loadMembers(membersPath)
			if err != nil {
				return err
			}
			roster, err := app.service.ChannelRoster(domain.ChannelID(channel), candidates)
			if err != nil {
				return err
			}

			rendered, err := app.render.roster(roster, app.now())
			if err != nil {
				return fmt.Errorf("render roster: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	cmd.Flags().StringVar(&membersPath, "members", "", "Members file listing the channel's candidates")
	_ = cmd.MarkFlagRequired("channel")
	_ = cmd.MarkFlagRequired("members")
	return cmd
}

func addMembershipFlags(cmd *cobra.Command, user, channel *string) {
	cmd.Flags().StringVar(user, "user", "", "User id")
	cmd.Flags().StringVar(channel, "channel", "", "Channel id")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("channel")
}
