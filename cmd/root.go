package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app := &app{cfg: viper.New()}

	rootCmd := &cobra.Command{
		Use:           "matchy",
		Short:         "matchy: history-aware group matching",
		Long:          "matchy splits channel members into groups while avoiding recent pairings and shared roles, and keeps match history, pauses and recurring match schedules in a versioned state file.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.wire(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.flushMetrics()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("state", "", "State file path (default ~/.matchy/state.toml)")
	flags.String("config", "", "Config file path (default ~/.matchy/config.toml)")
	flags.String("metrics-file", "", "Write engine metrics in Prometheus text format to this file")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	_ = app.cfg.BindPFlag(statePathKey, flags.Lookup("state"))
	_ = app.cfg.BindPFlag(metricsFileKey, flags.Lookup("metrics-file"))

	rootCmd.AddCommand(
		newVersionCmd(),
		newMemberCmd(app),
		newScopeCmd(app),
		newScheduleCmd(app),
		newMatchCmd(app),
		newReactivateCmd(app),
	)

	return rootCmd
}
