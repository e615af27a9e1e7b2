package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/bookmgr/internal/catalog"
	"github.com/Veraticus/bookmgr/internal/cli"
	"github.com/Veraticus/bookmgr/internal/common"
	"github.com/Veraticus/bookmgr/internal/config"
	"github.com/Veraticus/bookmgr/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "bookmgr",
		Short: "📚 Book catalog manager",
		Long: `bookmgr keeps a small catalog of books filed under a fixed set of categories.

Run without a subcommand for the interactive menu, or use 'bookmgr tui'
for the full-screen interface.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runMenu,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/bookmgr/config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = a.v.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.AddCommand(a.tuiCmd())
	cmd.AddCommand(categoriesCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(config.ExpandPath(a.cfgFile))
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		a.v.AddConfigPath(dir)
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(config.EnvKeyReplacer)
	a.v.AutomaticEnv()
	config.SetDefaults(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	if err := common.SetupLogger(level, cfg.Logging.Format, cmd.ErrOrStderr()); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	a.cfg = cfg
	slog.Debug("configuration loaded", "config", a.v.ConfigFileUsed(), "backend", cfg.Storage.Backend)
	return nil
}

// openCatalog opens the configured store. The returned func closes it.
func (a *app) openCatalog(ctx context.Context) (*catalog.Catalog, func(), error) {
	store, err := storage.Open(ctx, a.cfg.Storage.Backend)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open book store: %w", err)
	}

	closeStore := func() {
		if err := store.Close(); err != nil {
			slog.Warn("failed to close book store", "error", err)
		}
	}
	return catalog.New(store), closeStore, nil
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	cat, closeStore, err := a.openCatalog(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	handler := cli.NewInterruptHandler(cmd.OutOrStdout())
	ctx = handler.HandleInterrupts(ctx)

	term := cli.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.UI.Color)
	err = cli.NewMenu(term, cat).Run(ctx)
	if handler.WasInterrupted() {
		// The handler has already said goodbye.
		return nil
	}
	return err
}
