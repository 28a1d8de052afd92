package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/forecourt/forecourt-cli/cmd/commands"
	"github.com/forecourt/forecourt-cli/internal/cli"
	"github.com/forecourt/forecourt-cli/internal/logging"
	"github.com/forecourt/forecourt-cli/pkg/files"
	"github.com/forecourt/forecourt-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagQuiet       bool
	flagNoColor     bool
	flagSkipConfirm bool
)

var rootCmd = &cobra.Command{
	Use:   "forecourt",
	Short: "Terminal back-office client for petrol stations",
	Long:  `Forecourt is a terminal client for a petrol-station back-office service: a sales dashboard, settings management for fuels, rates, nozzles and payment categories, and a creditor directory, all backed by the station's REST backend.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagSkipConfirm)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(files.ForecourtDir); os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: No %s directory found in the current directory.\n", files.ForecourtDir)
			fmt.Fprintf(os.Stderr, "Please run 'forecourt init' first to configure the backend connection.\n")
			os.Exit(1)
		}

		// The TUI owns the terminal from here on; logs go to a file.
		logging.Init()

		app, err := tui.NewApp()
		if err != nil {
			cli.PrintError("%v", err)
			os.Exit(1)
		}
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to start the terminal user interface: %v\n", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a Forecourt working directory",
	Long:  `Creates the .forecourt folder with a default config.yaml pointing at the backend`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to determine current directory: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Forecourt in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to initialize project structure: %v\n", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .forecourt folder with default config")
		fmt.Println("✓ Edit .forecourt/config.yaml to point at your backend")
		fmt.Println("\nRun 'forecourt' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Forecourt",
	Long:  `Display the current version of the Forecourt CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Forecourt version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagSkipConfirm, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewFuelsCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewCreditorsCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
