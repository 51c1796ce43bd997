package app

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/menuwise/internal/output"
	"github.com/blackwell-systems/menuwise/internal/store"
)

var (
	catalogAll      bool
	catalogPrice    string
	catalogCategory string

	catalogCmd = &cobra.Command{
		Use:   "catalog",
		Short: "Manage the menu catalog",
		Long: `List, add, reprice or retire menu items.

Prices apply to sales recorded from now on; past records keep the price they
were sold at. Retired items stay in reports but can no longer be recorded.`,
	}

	catalogListCmd = &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		Args:  cobra.NoArgs,
		RunE:  withEnv(runCatalogList),
	}

	catalogSetCmd = &cobra.Command{
		Use:     "set NAME",
		Short:   "Add or update a menu item",
		Example: `  menuwise catalog set "Pilau" --price 180 --category lunch`,
		Args:    cobra.ExactArgs(1),
		RunE:    withEnv(runCatalogSet),
	}

	catalogRemoveCmd = &cobra.Command{
		Use:   "remove NAME",
		Short: "Retire a menu item",
		Args:  cobra.ExactArgs(1),
		RunE:  withEnv(runCatalogRemove),
	}
)

func init() {
	catalogListCmd.Flags().BoolVar(&catalogAll, "all", false, "include retired items")
	catalogSetCmd.Flags().StringVar(&catalogPrice, "price", "", "selling price")
	catalogSetCmd.Flags().StringVar(&catalogCategory, "category", "", "category (default: general)")
	catalogSetCmd.MarkFlagRequired("price")

	catalogCmd.AddCommand(catalogListCmd, catalogSetCmd, catalogRemoveCmd)
}

func runCatalogList(cmd *cobra.Command, e *env, args []string) error {
	items, err := e.store.ListMenuItems(cmd.Context(), catalogAll)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output.RenderCatalogTable(items))
	return nil
}

func runCatalogSet(cmd *cobra.Command, e *env, args []string) error {
	price, err := decimal.NewFromString(strings.TrimSpace(catalogPrice))
	if err != nil {
		return fmt.Errorf("invalid --price %q: %w", catalogPrice, err)
	}

	item := store.MenuItem{
		Name:     strings.TrimSpace(args[0]),
		Category: catalogCategory,
		Price:    price,
		Active:   true,
	}
	if err := e.store.UpsertMenuItem(cmd.Context(), item); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s at %s\n", item.Name, price.StringFixed(2))
	return nil
}

func runCatalogRemove(cmd *cobra.Command, e *env, args []string) error {
	name := strings.TrimSpace(args[0])
	if err := e.store.DeactivateMenuItem(cmd.Context(), name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Retired %s (past sales are kept)\n", name)
	return nil
}
