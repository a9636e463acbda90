package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recera/reactgen/cmd/reactgen/internal/ui"
	"github.com/recera/reactgen/pkg/emitter"
)

func newInitCommand() *cobra.Command {
	var (
		interactive   bool
		noInteractive bool
		input         string
		out           string
		pages         string
		inlineStyles  bool
		strict        bool
	)

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter UI description and reactgen.yaml",
		Long: `Writes a starter description with one component per page, saves
reactgen.yaml next to it and runs the first generation.

Runs an interactive setup in a terminal unless --no-interactive is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			// Determine if we should use interactive mode
			isTerminal := false
			if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
				isTerminal = true
			}

			if !noInteractive && (interactive || isTerminal) {
				config, report, err := ui.RunInitTUI(dir)
				if err != nil {
					return err
				}
				printInitSuccess(cmd, config, report)
				return nil
			}

			// Non-interactive mode - build config from flags
			config := ui.InitConfig{
				Directory:    dir,
				Input:        input,
				OutputRoot:   out,
				Pages:        ui.ParsePages(pages),
				InlineStyles: inlineStyles,
				Strict:       strict,
			}

			report, err := ui.Scaffold(config)
			if err != nil {
				return fmt.Errorf("failed to initialize project: %w", err)
			}
			printInitSuccess(cmd, config, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, "Force interactive TUI")
	cmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "Force non-interactive mode")
	cmd.Flags().StringVarP(&input, "input", "i", "app.json", "UI description file to create (.json or .yaml)")
	cmd.Flags().StringVarP(&out, "out", "o", emitter.DefaultOutputRoot, "Output directory for the generated project")
	cmd.Flags().StringVar(&pages, "pages", "Home", "Comma separated page labels")
	cmd.Flags().BoolVar(&inlineStyles, "inline-styles", false, "Attach styles inline instead of writing stylesheets")
	cmd.Flags().BoolVar(&strict, "strict", false, "Enable strict validation")

	return cmd
}

func printInitSuccess(cmd *cobra.Command, config ui.InitConfig, report *emitter.Report) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n✨ Project initialized with %d pages!\n", len(config.Pages))
	if report != nil {
		fmt.Fprintln(w, ui.RenderReport(report, 0))
	}
	fmt.Fprintf(w, "\n📚 Next steps:\n")
	if config.Directory != "" && config.Directory != "." {
		fmt.Fprintf(w, "   cd %s\n", config.Directory)
	}
	fmt.Fprintf(w, "   edit %s\n", config.Input)
	fmt.Fprintf(w, "   reactgen watch\n")
}
