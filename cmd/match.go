package cmd

import (
	"fmt"

	memberstoml "github.com/bnema/matchy/internal/adapters/members/toml"
	groupsrender "github.com/bnema/matchy/internal/adapters/render/groups"
	"github.com/bnema/matchy/internal/application"
	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/cobra"
)

func newMatchCmd(app *app) *cobra.Command {
	var (
		actor, channel     string
		membersPath        string
		perGroup           int
		dryRun, noFallback bool
		showRoles          bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match the active members of a channel into groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			candidates, err := loadMembers(membersPath)
			if err != nil {
				return err
			}

			matchCmd := application.MatchCommand{
				Actor:      domain.MemberID(actor),
				Channel:    domain.ChannelID(channel),
				Candidates: candidates,
				PerGroup:   perGroup,
				NoFallback: noFallback,
			}

			var groups []domain.Group
			if dryRun {
				groups, err = app.matcher.Preview(cmd.Context(), matchCmd)
			} else {
				groups, err = app.matcher.MatchChannel(cmd.Context(), matchCmd)
			}
			if err != nil {
				return err
			}

			opts := groupOptions(matchCmd.Channel, dryRun, showRoles)
			rendered, err := app.render.groups(groups, opts)
			if err != nil {
				return fmt.Errorf("render groups: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&actor, "actor", "", "User id recording the match (requires the matcher scope unless --dry-run)")
	cmd.Flags().StringVar(&channel, "channel", "", "Channel id")
	cmd.Flags().StringVar(&membersPath, "members", "", "Members file listing the channel's candidates")
	cmd.Flags().IntVar(&perGroup, "per-group", application.DefaultMembersMin, "Minimum members per group")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the groups without recording them")
	cmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Fail instead of dealing members round-robin when no grouping fits")
	cmd.Flags().BoolVar(&showRoles, "roles", false, "Show member roles")
	_ = cmd.MarkFlagRequired("channel")
	_ = cmd.MarkFlagRequired("members")

	cmd.AddCommand(newMatchHistoryCmd(app))
	return cmd
}

func newMatchHistoryCmd(app *app) *cobra.Command {
	var user string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show who a user was last matched with",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := domain.MemberID(user)
			rendered, err := app.render.history(id, app.store.UserMatches(id), app.now())
			if err != nil {
				return fmt.Errorf("render history: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func loadMembers(path string) ([]domain.Member, error) {
	members, err := memberstoml.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load members: %w", err)
	}
	return members, nil
}

func groupOptions(channel domain.ChannelID, dryRun, showRoles bool) groupsrender.GroupOptions {
	return groupsrender.GroupOptions{Channel: channel, DryRun: dryRun, ShowRoles: showRoles}
}
