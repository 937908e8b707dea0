package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/selin-ak/tickdo/internal/engine"
	"github.com/selin-ak/tickdo/internal/storage"
	"github.com/selin-ak/tickdo/internal/ui"
)

func newAddCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new item (words are joined)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if strings.TrimSpace(text) == "" {
				// Same validation the engine applies: silently no work,
				// but the CLI tells the user why nothing happened.
				ui.Fail("add: empty text")
				return ErrUsage
			}
			return withDispatcher(flags, func(c *cliContext) error {
				c.dispatch(engine.TextChanged{Text: text})
				c.dispatch(engine.Submit{})
				if err := c.flush(); err != nil {
					return err
				}
				ui.OK("added")
				return nil
			})
		},
	}
}

func newDoneCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle done for the item with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDispatcher(flags, func(c *cliContext) error {
				if c.d.State().Todos.Find(id) < 0 {
					return unknownID(id)
				}
				c.dispatch(engine.Toggle{ID: id})
				if err := c.flush(); err != nil {
					return err
				}
				ui.OK("toggled")
				return nil
			})
		},
	}
}

func newRemoveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove the item with the given id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDispatcher(flags, func(c *cliContext) error {
				if c.d.State().Todos.Find(id) < 0 {
					return unknownID(id)
				}
				c.dispatch(engine.Delete{ID: id})
				if err := c.flush(); err != nil {
					return err
				}
				ui.OK("removed")
				return nil
			})
		},
	}
}

func newClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every done item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDispatcher(flags, func(c *cliContext) error {
				before := len(c.d.State().Todos)
				c.dispatch(engine.ClearCompleted{})
				if err := c.flush(); err != nil {
					return err
				}
				ui.OK(fmt.Sprintf("cleared %d", before-len(c.d.State().Todos)))
				return nil
			})
		},
	}
}

// cliContext bundles a booted dispatcher with its store and collects
// effects until flush.
type cliContext struct {
	d       *engine.Dispatcher
	store   storage.Store
	pending []engine.Effect
}

func (c *cliContext) dispatch(ev engine.Event) {
	_, effects := c.d.Dispatch(ev)
	c.pending = append(c.pending, effects...)
}

func (c *cliContext) flush() error {
	err := applyEffects(c.store, c.pending)
	c.pending = nil
	return err
}

func withDispatcher(flags *rootFlags, fn func(*cliContext) error) error {
	cfg := loadConfig(flags)
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	d, _, err := boot(store, "#/")
	if err != nil {
		return err
	}
	return fn(&cliContext{d: d, store: store})
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		ui.Fail("not an id: " + arg)
		return 0, ErrUsage
	}
	return id, nil
}

func unknownID(id int) error {
	ui.Fail(fmt.Sprintf("no item with id %d (run `tickdo ls` to see ids)", id))
	return ErrUsage
}
