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

var creditorsOutputFormat string

// NewCreditorsCommand creates the creditors command
func NewCreditorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creditors [query]",
		Short: "List creditors, optionally filtered",
		Long: `Fetch the creditor directory and list it, optionally filtered by a
case-insensitive substring of the name or phone number.

Examples:
  forecourt creditors
  forecourt creditors sharma
  forecourt creditors --output json`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runCreditors,
	}

	cmd.Flags().StringVarP(&creditorsOutputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runCreditors(cmd *cobra.Command, args []string) error {
	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	creditors, err := cmdCtx.Client.ListCreditors(context.Background())
	if err != nil {
		return fmt.Errorf("could not fetch creditors: %w", err)
	}

	if len(args) == 1 {
		creditors = models.FilterCreditors(creditors, args[0])
	}

	if creditorsOutputFormat != "text" {
		return cli.OutputResults(os.Stdout, creditorsOutputFormat, creditors)
	}

	if len(creditors) == 0 {
		cli.PrintInfo("No creditors found")
		return nil
	}

	table := cli.NewTableFormatter(os.Stdout)
	table.Header("NAME", "PHONE", "OUTSTANDING")
	var total float64
	for _, c := range creditors {
		table.Row(cli.TruncateString(c.Name, 40), c.Phone, settings.FormatCurrency(c.Outstanding))
		total += c.Outstanding
	}
	table.Flush()
	fmt.Printf("\n%d creditors, %s outstanding\n", len(creditors), settings.FormatCurrency(total))
	return nil
}
