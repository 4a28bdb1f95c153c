package cli

import (
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/console/internal/console"
)

func newOrdersCommand(rt *state) *cobra.Command {
	var filters console.ListFilters
	cmd := &cobra.Command{
		Use:     "orders",
		Short:   "List purchase orders",
		Example: "  console orders --search approved",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.OrderScreen.Render(cmd.OutOrStdout(), filters)
		},
	}
	listFlags(cmd, &filters)
	return cmd
}

func newBillsCommand(rt *state) *cobra.Command {
	var (
		filters console.ListFilters
		expand  bool
	)
	cmd := &cobra.Command{
		Use:     "bills",
		Short:   "List purchase bills",
		Example: "  console bills --search ref-001 --expand",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.session.BillScreen.Render(cmd.OutOrStdout(), filters, expand)
		},
	}
	listFlags(cmd, &filters)
	cmd.Flags().BoolVarP(&expand, "expand", "e", false, "show order details under converted bills")
	return cmd
}

func newShellCommand(rt *state) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive session: create, edit and convert documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return console.NewShell(rt.session).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
