// Package cli holds the cobra commands of the purchasing console.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/console/internal/app"
	"github.com/odyssey-erp/console/internal/console"
)

var version = "0.1.0"

// state is filled by the root command before any subcommand runs.
type state struct {
	envFile string
	session *console.Session
}

// NewRootCommand builds the console command tree.
func NewRootCommand() *cobra.Command {
	rt := &state{}
	root := &cobra.Command{
		Use:   "console",
		Short: "Purchase orders and bills from the terminal",
		Long: `console keeps purchase orders and purchase bills in memory for one session.

Use the orders and bills commands for a quick listing, or shell to create,
edit and convert documents interactively. Nothing is written to disk.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.setup()
		},
	}
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", app.DefaultEnvFile, "dotenv file loaded before the environment")

	root.AddCommand(newOrdersCommand(rt), newBillsCommand(rt), newShellCommand(rt))
	return root
}

func (rt *state) setup() error {
	cfg, err := app.LoadConfig(rt.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	session, err := console.NewSession(cfg, app.NewLogger(cfg))
	if err != nil {
		return err
	}
	rt.session = session
	return nil
}

func listFlags(cmd *cobra.Command, filters *console.ListFilters) {
	cmd.Flags().StringVarP(&filters.Search, "search", "s", "", "case-insensitive search")
	cmd.Flags().IntVarP(&filters.Page, "page", "p", 1, "page number")
	cmd.Flags().IntVar(&filters.Limit, "limit", 0, "rows per page (default from CONSOLE_PAGE_SIZE)")
}
