package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openfacet/openfacet/pkg/config"
	"github.com/openfacet/openfacet/pkg/value"
)

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Load a document and print its value graph",
		Long: `Load a document, parse it into a value graph, and print it.

The default rendering uses the structural text form, which tags maps,
sets, timestamps, and regular expressions and marks re-entered cycle
nodes. With --json the graph is exported back to plain JSON instead.`,
		Example: `  # Show a YAML document
  facet show ./config.yaml

  # Show a Starlark document as plain JSON
  facet show --json ./config.star

  # Force the format for an unconventional extension
  facet show --format cue ./config.conf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			loader, err := newLoader()
			if err != nil {
				return err
			}

			log.Debug().
				Str("path", path).
				Str("format", formatName).
				Msg("Loading document")

			doc, err := loadDocument(cmd.Context(), loader, path)
			if err != nil {
				return fmt.Errorf("failed to load document: %w", err)
			}

			if jsonOutput {
				out, err := json.MarshalIndent(config.ToGo(doc.Root), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to export document: %w", err)
				}
				fmt.Println(string(out))
				return nil
			}

			fmt.Println(value.Stringify(doc.Root))
			return nil
		},
	}

	return cmd
}
