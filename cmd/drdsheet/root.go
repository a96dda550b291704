package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/cory-johannsen/drdsheet/internal/config"
	"github.com/cory-johannsen/drdsheet/internal/game/ruleset"
	"github.com/cory-johannsen/drdsheet/internal/game/tables"
	"github.com/cory-johannsen/drdsheet/internal/observability"
)

// app is the loaded state shared by every subcommand.
type app struct {
	cfg         config.Config
	logger      *zap.Logger
	tables      *tables.Tables
	professions *ruleset.ProfessionRegistry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	v := config.NewViper()
	var configPath string

	root := &cobra.Command{
		Use:          "drdsheet",
		Short:        "Derive DrD+ character property sheets",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.load(v, configPath)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "optional YAML configuration file")
	flags.String("races-dir", "", "directory of race definitions")
	flags.String("professions-dir", "", "directory of profession definitions")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	_ = v.BindPFlag("content.races_dir", flags.Lookup("races-dir"))
	_ = v.BindPFlag("content.professions_dir", flags.Lookup("professions-dir"))
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))

	root.AddCommand(newSheetCmd(a), newRacesCmd(a), newProfessionsCmd(a))
	return root
}

// load reads the configuration, builds the logger and loads the content.
func (a *app) load(v *viper.Viper, configPath string) error {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	cfg, err := config.LoadFromViper(v)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger

	a.tables, err = tables.Load(cfg.Content.RacesDir)
	if err != nil {
		return err
	}
	defs, err := ruleset.LoadProfessions(cfg.Content.ProfessionsDir)
	if err != nil {
		return fmt.Errorf("loading professions: %w", err)
	}
	a.professions = ruleset.NewProfessionRegistry()
	for _, d := range defs {
		a.professions.Register(d)
	}
	logger.Debug("content loaded",
		zap.String("races_dir", cfg.Content.RacesDir),
		zap.String("professions_dir", cfg.Content.ProfessionsDir),
		zap.Int("race_rows", len(a.tables.RacesTable().Rows())),
		zap.Int("professions", len(defs)),
	)
	return nil
}
