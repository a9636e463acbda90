package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/recera/reactgen/cmd/reactgen/internal/ui"
	"github.com/recera/reactgen/pkg/emitter"
)

func newGenCommand() *cobra.Command {
	var (
		flags      projectFlags
		dryRun     bool
		jsonOutput bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the React project from the UI description",
		Long: `Reads the UI description and writes:
  - components/{Name}.jsx (and {Name}.css with external styles)
  - pages/{Label}.jsx
  - App.jsx with one route per page
  - index.html

Flags override the values in reactgen.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()

			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			var fs emitter.FileSystem
			if dryRun {
				fs = emitter.NewMemoryFS()
			}

			if !quiet && !jsonOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "🔨 Generating from %s...\n", p.config.Input)
			}

			report, err := p.generate(fs)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}

			// Output JSON if requested
			if jsonOutput {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			if quiet {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderReport(report, time.Since(startTime)))
			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "📝 Dry run: nothing was written")
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate in memory and list the files without writing them")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output JSON report to stdout")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only report errors")

	return cmd
}
