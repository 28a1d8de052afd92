package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forecourt/forecourt-cli/internal/cli"
	"github.com/forecourt/forecourt-cli/pkg/models"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

var (
	fuelsAddPrice   float64
	fuelsAddNozzles int
)

// NewFuelsCommand creates the fuels command group
func NewFuelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuels",
		Short: "Inspect and change the station's fuels",
		Long: `List fuels and perform single-item changes: adjust one price,
add a new fuel, or remove a nozzle. Each change shows the pending
change description and asks for confirmation before persisting,
the same way the interactive section editor does.

Examples:
  forecourt fuels list
  forecourt fuels set-price ms 105.37
  forecourt fuels add "Power Petrol" --price 112.50 --nozzles 2
  forecourt fuels remove-nozzle hsd`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List fuels with prices and nozzle counts",
		Args:  cobra.NoArgs,
		RunE:  runFuelsList,
	}

	setPriceCmd := &cobra.Command{
		Use:   "set-price <fuel-id> <price>",
		Short: "Change one fuel's price",
		Args:  cobra.ExactArgs(2),
		RunE:  runFuelsSetPrice,
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new fuel",
		Args:  cobra.ExactArgs(1),
		RunE:  runFuelsAdd,
	}
	addCmd.Flags().Float64Var(&fuelsAddPrice, "price", 0, "Price per litre (required)")
	addCmd.Flags().IntVar(&fuelsAddNozzles, "nozzles", 1, "Number of nozzles")
	addCmd.MarkFlagRequired("price")

	removeNozzleCmd := &cobra.Command{
		Use:   "remove-nozzle <fuel-id>",
		Short: "Remove one nozzle from a fuel (removing the last nozzle deletes the fuel)",
		Args:  cobra.ExactArgs(1),
		RunE:  runFuelsRemoveNozzle,
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(setPriceCmd)
	cmd.AddCommand(addCmd)
	cmd.AddCommand(removeNozzleCmd)

	return cmd
}

func runFuelsList(cmd *cobra.Command, args []string) error {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	doc, err := cmdCtx.Client.FetchSettingsDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("ID", "NAME", "PRICE", "NOZZLES")
	for _, f := range doc.Fuels {
		table.Row(f.ID, f.Name, settings.FormatCurrency(f.Price), fmt.Sprintf("%d", f.NozzleCount))
	}
	table.Flush()
	return nil
}

func runFuelsSetPrice(cmd *cobra.Command, args []string) error {
	fuelID := args[0]
	price, err := cli.ParsePrice(args[1])
	if err != nil {
		return err
	}

	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	doc, err := cmdCtx.Client.FetchSettingsDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}

	i := doc.FindFuel(fuelID)
	if i < 0 {
		return fmt.Errorf("fuel not found: %s", fuelID)
	}
	fuel := doc.Fuels[i]
	if fuel.Price == price {
		cli.PrintInfo("%s is already priced at %s", fuel.Name, settings.FormatCurrency(price))
		return nil
	}

	description := fmt.Sprintf("%s price will be changed from %s to %s.",
		fuel.Name, settings.FormatCurrency(fuel.Price), settings.FormatCurrency(price))
	ok, err := cli.ConfirmChanges([]string{description})
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("No changes made")
		return nil
	}

	if err := doc.SetFuelPrice(fuelID, price); err != nil {
		return err
	}
	if _, err := cmdCtx.Client.SaveSettingsSection(context.Background(), doc, settings.SectionRates); err != nil {
		return fmt.Errorf("could not save fuel rates: %w", err)
	}

	cli.PrintSuccess("%s price changed to %s", fuel.Name, settings.FormatCurrency(price))
	return nil
}

func runFuelsAdd(cmd *cobra.Command, args []string) error {
	name := args[0]

	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	doc, err := cmdCtx.Client.FetchSettingsDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}

	if doc.FindFuel(models.FuelID(name)) >= 0 {
		cli.PrintInfo("Fuel %q already exists", name)
		return nil
	}

	nozzles := fuelsAddNozzles
	if nozzles < 1 {
		nozzles = 1
	}
	noun := "nozzles"
	if nozzles == 1 {
		noun = "nozzle"
	}
	description := fmt.Sprintf("New fuel %q will be added with %d %s at %s.",
		name, nozzles, noun, settings.FormatCurrency(fuelsAddPrice))
	ok, err := cli.ConfirmChanges([]string{description})
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("No changes made")
		return nil
	}

	fuel, err := doc.AddFuel(name, fuelsAddPrice, nozzles)
	if err != nil {
		return err
	}
	if _, err := cmdCtx.Client.SaveSettingsSection(context.Background(), doc, settings.SectionNozzles); err != nil {
		return fmt.Errorf("could not save fuels: %w", err)
	}

	cli.PrintSuccess("Added fuel %s (%s)", fuel.Name, fuel.ID)
	return nil
}

func runFuelsRemoveNozzle(cmd *cobra.Command, args []string) error {
	fuelID := args[0]

	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}
	doc, err := cmdCtx.Client.FetchSettingsDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}

	i := doc.FindFuel(fuelID)
	if i < 0 {
		return fmt.Errorf("fuel not found: %s", fuelID)
	}
	fuel := doc.Fuels[i]

	var description string
	if fuel.NozzleCount <= 1 {
		// Last nozzle: the fuel itself goes away.
		cli.PrintWarning("%s has one nozzle left; removing it deletes the fuel", fuel.Name)
		description = fmt.Sprintf("Fuel %q will be removed.", fuel.Name)
	} else {
		description = fmt.Sprintf("%s nozzle count will be changed from %d to %d.",
			fuel.Name, fuel.NozzleCount, fuel.NozzleCount-1)
	}
	ok, err := cli.ConfirmChanges([]string{description})
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("No changes made")
		return nil
	}

	deleted, err := doc.DecrementNozzle(fuelID)
	if err != nil {
		return err
	}
	if _, err := cmdCtx.Client.SaveSettingsSection(context.Background(), doc, settings.SectionNozzles); err != nil {
		return fmt.Errorf("could not save fuels: %w", err)
	}

	if deleted {
		cli.PrintSuccess("Removed fuel %s", fuel.Name)
	} else {
		cli.PrintSuccess("%s now has %d nozzles", fuel.Name, fuel.NozzleCount-1)
	}
	return nil
}
