package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	groupsrender "github.com/bnema/matchy/internal/adapters/render/groups"
	tomlrepo "github.com/bnema/matchy/internal/adapters/repo/toml"
	"github.com/bnema/matchy/internal/application"
	"github.com/bnema/matchy/internal/domain"
	"github.com/bnema/matchy/internal/logging"
	"github.com/bnema/matchy/internal/matching"
	"github.com/bnema/matchy/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	statePathKey   = tomlrepo.StatePathKey
	metricsFileKey = "metrics.textfile"
	logLevelKey    = "log.level"
	parallelismKey = "matching.parallelism"
	weightRoleKey  = "matching.weights.role"
	weightMatchKey = "matching.weights.match"
	weightExtraKey = "matching.weights.extra"
	weightUpperKey = "matching.weights.upper"
	envPrefix      = "MATCHY"
	configDirName  = ".matchy"
	configFileName = "config.toml"
)

type app struct {
	cfg      *viper.Viper
	logger   ports.Logger
	store    ports.StateStore
	service  *application.Service
	matcher  *application.MatchService
	registry *prometheus.Registry
	render   renderers
	now      func() time.Time
}

type renderers struct {
	groups   func([]domain.Group, groupsrender.GroupOptions) (string, error)
	schedule func(domain.ChannelID, []application.ScheduledRun, time.Time) (string, error)
	history  func(domain.MemberID, map[domain.MemberID]time.Time, time.Time) (string, error)
	roster   func(application.ChannelRoster, time.Time) (string, error)
}

func (a *app) wire(cmd *cobra.Command) error {
	if err := loadConfig(cmd, a.cfg); err != nil {
		return err
	}

	level := a.cfg.GetString(logLevelKey)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger, err := logging.NewText(cmd.ErrOrStderr(), level)
	if err != nil {
		return fmt.Errorf("configure logging: %w", err)
	}

	store, err := tomlrepo.NewStore(cmd.Context(), a.cfg, tomlrepo.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("wire state store: %w", err)
	}

	registry := prometheus.NewRegistry()
	engine, err := matching.NewEngine(
		matching.WithWeights(matching.Weights{
			Role:  a.cfg.GetInt(weightRoleKey),
			Match: a.cfg.GetInt(weightMatchKey),
			Extra: a.cfg.GetInt(weightExtraKey),
			Upper: a.cfg.GetInt(weightUpperKey),
		}),
		matching.WithParallelism(a.cfg.GetInt(parallelismKey)),
		matching.WithLogger(logger),
		matching.WithMetrics(registry),
	)
	if err != nil {
		return fmt.Errorf("wire matching engine: %w", err)
	}

	clock := ports.SystemClock{}
	a.logger = logger
	a.store = store
	a.registry = registry
	a.service = application.NewService(store, clock, logger)
	a.matcher = application.NewMatchService(store, engine, clock, logger)
	a.render = renderers{
		groups:   groupsrender.RenderGroups,
		schedule: groupsrender.RenderSchedule,
		history:  groupsrender.RenderHistory,
		roster:   groupsrender.RenderRoster,
	}
	a.now = clock.Now
	return nil
}

// loadConfig layers defaults, the optional config file and MATCHY_* env vars.
func loadConfig(cmd *cobra.Command, cfg *viper.Viper) error {
	defaults := matching.DefaultWeights()
	cfg.SetDefault(logLevelKey, "info")
	cfg.SetDefault(parallelismKey, 1)
	cfg.SetDefault(weightRoleKey, defaults.Role)
	cfg.SetDefault(weightMatchKey, defaults.Match)
	cfg.SetDefault(weightExtraKey, defaults.Extra)
	cfg.SetDefault(weightUpperKey, defaults.Upper)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(homeDir, configDirName, configFileName)
	}

	cfg.SetConfigFile(path)
	cfg.SetConfigType("toml")
	if err := cfg.ReadInConfig(); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	return nil
}

// flushMetrics writes the engine metrics when a textfile path is configured.
func (a *app) flushMetrics() error {
	path := a.cfg.GetString(metricsFileKey)
	if path == "" || a.registry == nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, a.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
