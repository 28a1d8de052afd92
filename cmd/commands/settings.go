package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forecourt/forecourt-cli/internal/cli"
	"github.com/forecourt/forecourt-cli/pkg/settings"
)

var settingsOutputFormat string

// NewSettingsCommand creates the settings command
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the station's settings document",
		Long: `Fetch and display the full settings document from the backend.

Examples:
  # Human-readable summary
  forecourt settings

  # Machine-readable output
  forecourt settings --output json
  forecourt settings --output yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runSettings,
	}

	cmd.Flags().StringVarP(&settingsOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runSettings(cmd *cobra.Command, args []string) error {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	doc, err := cmdCtx.Client.FetchSettingsDocument(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch settings: %w", err)
	}

	if settingsOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, settingsOutputFormat, doc)
	}

	fmt.Println("GENERAL")
	general := cli.NewTableFormatter(os.Stdout)
	general.Row("Pump Name", doc.General.PumpName)
	general.Row("Dealer Name", doc.General.DealerName)
	general.Row("Address", doc.General.Address)
	general.Row("Phone", doc.General.Phone)
	general.Row("Email", doc.General.Email)
	general.Row("GST Number", doc.General.GSTNumber)
	general.Row("Opening Date", doc.General.OpeningDate)
	general.Flush()

	fmt.Println("\nFUELS")
	fuels := cli.NewTableFormatter(os.Stdout)
	fuels.Header("ID", "NAME", "PRICE", "NOZZLES")
	for _, f := range doc.Fuels {
		fuels.Row(f.ID, f.Name, settings.FormatCurrency(f.Price), fmt.Sprintf("%d", f.NozzleCount))
	}
	fuels.Flush()

	fmt.Printf("\nCredit types:       %s\n", joinOrDash(doc.CreditTypes))
	fmt.Printf("Expense categories: %s\n", joinOrDash(doc.ExpenseCategories))
	fmt.Printf("Cash modes:         %s\n", joinOrDash(doc.CashModes))

	return nil
}

func joinOrDash(labels []string) string {
	if len(labels) == 0 {
		return "-"
	}
	return strings.Join(labels, ", ")
}
