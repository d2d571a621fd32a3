package main

import (
	"io"

	"github.com/goliatone/go-gym-records/internal/config"
	"github.com/goliatone/go-gym-records/pkg/di"
	"github.com/spf13/cobra"
)

type app struct {
	out        io.Writer
	configPath string
	dbPath     string
	logLevel   string
	container  *di.Container
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "gymrecords",
		Short:         "Search and manage gym administrators, trainers and members",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch cmd.Name() {
			case "help", "completion", cobra.ShellCompRequestCmd:
				return nil
			}
			return a.open(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.container == nil {
				return nil
			}
			return a.container.Close()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "sqlite database path (overrides config)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		a.newSearchCmd(),
		a.newAddCmd(),
		a.newDeleteCmd(),
		a.newSeedCmd(),
	)

	return root
}

func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	c, err := di.NewContainer(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	a.container = c
	return nil
}
