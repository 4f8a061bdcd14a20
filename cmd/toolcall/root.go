package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skosovsky/toolcall"
	"github.com/skosovsky/toolcall/internal/demotools"
	"github.com/skosovsky/toolcall/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries what every subcommand needs once config is loaded.
type app struct {
	v      *viper.Viper
	cfg    *Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper()}
	var configPath string

	root := &cobra.Command{
		Use:           "toolcall",
		Short:         "Dispatch JSON tool calls to the built-in demo tools",
		Version:       version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, configPath)
			if err != nil {
				return err
			}
			level, err := logging.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./toolcall.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().Duration("timeout", 0, "default tool execution timeout (0 disables)")
	root.PersistentFlags().Bool("offload", false, "run synchronous tools on their own goroutine")
	for key, flag := range map[string]string{
		"log.level":        "log-level",
		"executor.timeout": "timeout",
		"executor.offload": "offload",
	} {
		if err := a.v.BindPFlag(key, root.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newSchemaCmd(a),
		newCallCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
	)
	return root
}

// handler builds the dispatch facade over the demo tools.
func (a *app) handler(extra ...toolcall.Middleware) (*toolcall.Handler, error) {
	mws := append([]toolcall.Middleware{toolcall.WithLogging(a.logger)}, extra...)
	h, err := toolcall.NewHandler(toolcall.NewRegistry(demotools.Factories()...),
		toolcall.WithLogger(a.logger),
		toolcall.WithDefaultTimeout(a.cfg.Executor.Timeout),
		toolcall.WithOffload(a.cfg.Executor.Offload),
		toolcall.WithMiddleware(mws...),
	)
	if err != nil {
		return nil, fmt.Errorf("build tools: %w", err)
	}
	return h, nil
}
