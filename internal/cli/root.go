// Package cli wires the command tree. Every subcommand goes through
// the same engine dispatcher the interactive list uses, so CLI and TUI
// share one state machine and one persistence policy.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/selin-ak/tickdo/internal/config"
	"github.com/selin-ak/tickdo/internal/engine"
	"github.com/selin-ak/tickdo/internal/nav"
	"github.com/selin-ak/tickdo/internal/storage"
	"github.com/selin-ak/tickdo/internal/tui"
	"github.com/selin-ak/tickdo/internal/ui"
)

// ErrUsage marks user errors (bad arguments, unknown ids) so main can
// exit 2 instead of 1, matching conventional CLI exit codes.
var ErrUsage = errors.New("usage error")

type rootFlags struct {
	dataDir string
	backend string
	theme   string
	debug   bool
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "tickdo",
		Short: "A small todo list with a persistent, filterable view",
		Long: "tickdo keeps a single todo list. Run it bare for the interactive\n" +
			"view, or use the subcommands for scripting. State lives under one\n" +
			"key in a file or sqlite store and survives restarts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(flags)
			store, err := openStore(cfg)
			if err != nil {
				return err
			}
			d, loc, err := boot(store, "#/")
			if err != nil {
				return err
			}
			return tui.Run(tui.New(d, store, loc, cfg.Debug))
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.dataDir, "data-dir", "", "override the data directory")
	pf.StringVar(&flags.backend, "store", "", "storage backend: file or sqlite")
	pf.StringVar(&flags.theme, "theme", "", "color theme: classic, neon, mono")
	pf.BoolVar(&flags.debug, "debug", false, "log effect dispatch failures")

	cmd.AddCommand(
		newAddCmd(flags),
		newListCmd(flags),
		newDoneCmd(flags),
		newRemoveCmd(flags),
		newClearCmd(flags),
		newDocsCmd(),
	)
	return cmd
}

// loadConfig layers: defaults, then the config file if present, then
// any flags the user set.
func loadConfig(flags *rootFlags) config.Config {
	cfg := config.Default()
	if err := config.Load(config.Path(), &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		ui.Fail("config: " + err.Error())
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}
	if flags.backend != "" {
		cfg.Store = flags.backend
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.debug {
		cfg.Debug = true
	}
	ui.SetTheme(cfg.Theme)
	return cfg
}

func openStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Store {
	case "", "file":
		return storage.NewFileStore(cfg.DataDir), nil
	case "sqlite":
		return storage.NewSQLiteStore(cfg.DataDir), nil
	}
	return nil, fmt.Errorf("unknown store backend %q (want file or sqlite)", cfg.Store)
}

// boot reads the blob once and builds the dispatcher from it plus the
// starting fragment. A corrupt or missing blob starts empty.
func boot(store storage.Store, fragment string) (*engine.Dispatcher, *nav.Location, error) {
	raw, ok, err := store.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("load: %w", err)
	}
	return engine.NewDispatcher(engine.Boot(raw, ok, fragment)), nav.NewLocation(fragment), nil
}

// applyEffects performs the storage side of a CLI dispatch. Focus and
// navigation effects have no meaning outside the interactive view and
// are dropped.
func applyEffects(store storage.Store, effects []engine.Effect) error {
	for _, eff := range effects {
		if p, ok := eff.(engine.Persist); ok {
			if err := store.Write(p.Data); err != nil {
				return fmt.Errorf("save: %w", err)
			}
		}
	}
	return nil
}
