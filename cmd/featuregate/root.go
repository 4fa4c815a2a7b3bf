package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nerrad567/featuregate/internal/access"
	"github.com/nerrad567/featuregate/internal/access/source"
	"github.com/nerrad567/featuregate/internal/infrastructure/config"
	"github.com/nerrad567/featuregate/internal/infrastructure/database"
	"github.com/nerrad567/featuregate/internal/infrastructure/logging"
)

// configEnv names the config file when --config is not given.
const configEnv = "FEATUREGATE_CONFIG"

// skipSetup marks commands that run without loading the configuration.
const skipSetup = "featuregate/skip-setup"

// errFixtureIssues is returned by validate when the fixture has defects.
var errFixtureIssues = errors.New("fixture has issues")

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	cfg        *config.Config
	log        *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "featuregate",
		Short:         "Inspect the role -> feature permission table",
		Long:          `featuregate loads the configured permission table and answers which features a role has.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (also set via "+configEnv+")")

	root.AddCommand(
		newRolesCmd(a),
		newFeaturesCmd(),
		newShowCmd(a),
		newCheckCmd(a),
		newValidateCmd(a),
	)
	return root
}

// setup loads the configuration and sets up the logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(configEnv)
	}

	var err error
	if path == "" {
		a.cfg, err = config.Default()
	} else {
		a.cfg, err = config.Load(path)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var out io.Writer = cmd.ErrOrStderr()
	if strings.EqualFold(a.cfg.Logging.Output, "stdout") && !jsonOutput(cmd) {
		out = cmd.OutOrStdout()
	}
	a.log = logging.NewWithWriter(out, a.cfg.Logging, version)
	a.log.Debug("configuration loaded", "path", path, "source", a.cfg.Permissions.Source)

	return nil
}

// jsonOutput reports whether cmd writes JSON to stdout, which log lines
// must not share.
func jsonOutput(cmd *cobra.Command) bool {
	f := cmd.Flags().Lookup("output")
	return f != nil && f.Value.String() == outputJSON
}

// openSource returns the configured source and a function releasing it.
func (a *app) openSource(ctx context.Context) (source.Source, func(), error) {
	noop := func() {}

	switch a.cfg.Permissions.Source {
	case config.SourceFile:
		return source.NewFile(a.cfg.Permissions.File), noop, nil

	case config.SourceDatabase:
		db, err := database.Open(ctx, database.Config{
			Path:        a.cfg.Database.Path,
			WALMode:     a.cfg.Database.WALMode,
			BusyTimeout: a.cfg.Database.BusyTimeout,
			ReadOnly:    !a.cfg.Database.Migrate,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("opening database: %w", err)
		}
		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				a.log.Error("error closing database", "error", closeErr)
			}
		}

		if a.cfg.Database.Migrate {
			if err := db.Migrate(ctx); err != nil {
				closeDB()
				return nil, nil, fmt.Errorf("running migrations: %w", err)
			}
			a.log.Debug("database migrations complete", "path", db.Path())
		}
		return source.NewSQLite(db.DB), closeDB, nil

	default:
		return source.Builtin{}, noop, nil
	}
}

// registry builds the permission registry honouring permissions.strict.
func (a *app) registry(ctx context.Context) (*access.Registry, error) {
	reg, _, _, err := a.build(ctx, a.cfg.Permissions.Strict)
	return reg, err
}

// build loads the configured source once and returns the registry with
// every issue found in it.
func (a *app) build(ctx context.Context, strict bool) (*access.Registry, []source.Issue, string, error) {
	src, release, err := a.openSource(ctx)
	if err != nil {
		return nil, nil, "", err
	}
	defer release()

	reg, issues, err := source.Build(ctx, src, source.Options{
		Strict: strict,
		Logger: a.log,
	})
	if err != nil {
		return nil, issues, src.Name(), fmt.Errorf("building registry: %w", err)
	}
	return reg, issues, src.Name(), nil
}
