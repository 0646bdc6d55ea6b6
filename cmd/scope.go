package cmd

import (
	"fmt"

	"github.com/bnema/matchy/internal/domain"
	"github.com/spf13/cobra"
)

func newScopeCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Manage user authorization scopes",
	}

	cmd.AddCommand(
		newScopeGrantCmd(app),
		newScopeRevokeCmd(app),
		newScopeCheckCmd(app),
	)

	return cmd
}

func newScopeGrantCmd(app *app) *cobra.Command {
	var user, scope string

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a scope to a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Grant(cmd.Context(), domain.MemberID(user), domain.Scope(scope)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "granted %s to %s\n", scope, user)
			return err
		},
	}

	addScopeFlags(cmd, &user, &scope)
	return cmd
}

func newScopeRevokeCmd(app *app) *cobra.Command {
	var user, scope string

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a scope from a user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.Revoke(cmd.Context(), domain.MemberID(user), domain.Scope(scope)); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "revoked %s from %s\n", scope, user)
			return err
		},
	}

	addScopeFlags(cmd, &user, &scope)
	return cmd
}

func newScopeCheckCmd(app *app) *cobra.Command {
	var user, scope string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a user holds a scope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			verb := "lacks"
			if app.service.HasScope(domain.MemberID(user), domain.Scope(scope)) {
				verb = "has"
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", user, verb, scope)
			return err
		},
	}

	addScopeFlags(cmd, &user, &scope)
	return cmd
}

func addScopeFlags(cmd *cobra.Command, user, scope *string) {
	cmd.Flags().StringVar(user, "user", "", "User id")
	cmd.Flags().StringVar(scope, "scope", string(domain.ScopeMatcher), "Scope name")
	_ = cmd.MarkFlagRequired("user")
}
