package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recera/reactgen/pkg/emitter"
	"github.com/recera/reactgen/pkg/tree"
)

func newValidateCommand() *cobra.Command {
	var flags projectFlags

	cmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a UI description without writing anything",
		Long: `Decodes the description and checks required fields and nesting depth.
With --strict it is also checked against the schema and every style rule
must contain a colon.

The file defaults to the input named in reactgen.yaml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				p.config.Input = args[0]
			}

			doc, err := p.load()
			if err != nil {
				return err
			}

			// A dry generation catches per-node errors such as malformed
			// styles in strict mode
			opts := p.config.GeneratorOptions(p.dir)
			opts.FS = emitter.NewMemoryFS()
			report, err := emitter.New(opts).Generate(doc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ %s is valid: %d pages, %d components\n",
				p.config.Input, report.Pages, countComponents(doc))
			for _, route := range report.DuplicateRoutes {
				fmt.Fprintf(cmd.OutOrStdout(), "⚠️  Route %s is declared by more than one page\n", route)
			}
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

// countComponents counts every node in the document, children included
func countComponents(doc *tree.Document) int {
	var count func(nodes []tree.ComponentNode) int
	count = func(nodes []tree.ComponentNode) int {
		n := len(nodes)
		for i := range nodes {
			n += count(nodes[i].Children)
		}
		return n
	}

	total := 0
	for _, page := range doc.Pages {
		total += count(page.Contents)
	}
	return total
}
