package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forecourt/forecourt-cli/internal/cli"
	"github.com/forecourt/forecourt-cli/pkg/api"
)

// NewAddCommand creates the add command for the label-set sections
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <category> <label>",
		Short: "Add a credit type, expense category, or cash mode",
		Long: `Add a single label to one of the label-set sections without opening
the interactive editor. The call is best-effort: if the backend
already has the label, the command reports that and exits cleanly,
since the bulk section save remains the source of truth.

Examples:
  forecourt add credit-type "Cash Credit"
  forecourt add expense-category Electricity
  forecourt add cash-mode UPI`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateLabelCategory(args[0]); err != nil {
				return err
			}
			if err := cli.ValidateLabel(args[1]); err != nil {
				return err
			}
			ctx, err := cli.NewCommandContext()
			if err != nil {
				return err
			}
			return ctx.ValidateProject()
		},
		RunE: runAdd,
	}

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	category := strings.ToLower(args[0])
	label := strings.TrimSpace(args[1])
	noun := cli.LabelCategoryNoun(category)

	description := fmt.Sprintf("%s%s %q will be added.", strings.ToUpper(noun[:1]), noun[1:], label)
	ok, err := cli.ConfirmChanges([]string{description})
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("No changes made")
		return nil
	}

	cmdCtx, err := cli.NewCommandContext()
	if err != nil {
		return err
	}

	ctx := context.Background()
	switch category {
	case "credit-type":
		err = cmdCtx.Client.AddCreditType(ctx, label)
	case "expense-category":
		err = cmdCtx.Client.AddExpenseCategory(ctx, label)
	case "cash-mode":
		err = cmdCtx.Client.AddCashMode(ctx, label)
	}

	if api.IsDuplicate(err) {
		// Already present on the backend; nothing to do.
		cli.PrintInfo("%s %q already exists", noun, label)
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not add %s: %w", noun, err)
	}

	cli.PrintSuccess("Added %s %q", noun, label)
	return nil
}
