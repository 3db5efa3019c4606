package commands

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/openfacet/openfacet/pkg/value"
)

// errDocumentsDiffer signals structural divergence without printing a
// second error message; the report is the output.
var errDocumentsDiffer = fmt.Errorf("documents differ")

func newDiffCommand() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "diff <left> <right>",
		Short: "Compare two documents structurally",
		Long: `Load two documents and compare their value graphs.

Equality is structural: records compare field by field, lists element by
element, maps and sets by content regardless of order, and timestamps and
regular expressions by their underlying state. The exit code is 0 when the
documents are structurally equal and 1 when they differ.`,
		Example: `  # Compare a YAML document against its JSON export
  facet diff ./config.yaml ./config.json

  # Machine-readable change report
  facet diff --json ./left.cue ./right.cue

  # Exit code only
  facet diff --quiet ./a.star ./b.star`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			leftPath, rightPath := args[0], args[1]

			loader, err := newLoader()
			if err != nil {
				return err
			}

			left, err := loadDocument(cmd.Context(), loader, leftPath)
			if err != nil {
				return fmt.Errorf("failed to load left document: %w", err)
			}
			right, err := loadDocument(cmd.Context(), loader, rightPath)
			if err != nil {
				return fmt.Errorf("failed to load right document: %w", err)
			}

			equal := value.Equal(left.Root, right.Root)
			log.Debug().
				Str("left", leftPath).
				Str("right", rightPath).
				Bool("equal", equal).
				Msg("Compared documents")

			if equal {
				if !quiet {
					fmt.Println("documents are structurally equal")
				}
				return nil
			}

			if quiet {
				return errDocumentsDiffer
			}

			changes := value.Diff(left.Root, right.Root)
			if jsonOutput {
				out, err := json.MarshalIndent(changeReport(changes), "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode change report: %w", err)
				}
				fmt.Println(string(out))
			} else {
				for _, c := range changes {
					printChange(c)
				}
				fmt.Printf("%d changes\n", len(changes))
			}

			return errDocumentsDiffer
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report via exit code only")

	return cmd
}

// reportedChange is the JSON shape of one change in --json mode.
type reportedChange struct {
	Path   string `json:"path"`
	Action string `json:"action"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

func changeReport(changes []value.Change) []reportedChange {
	out := make([]reportedChange, 0, len(changes))
	for _, c := range changes {
		r := reportedChange{Path: c.Path, Action: string(c.Action)}
		if c.Before != nil {
			r.Before = value.Stringify(c.Before)
		}
		if c.After != nil {
			r.After = value.Stringify(c.After)
		}
		out = append(out, r)
	}
	return out
}

func printChange(c value.Change) {
	switch c.Action {
	case value.ChangeActionAdd:
		fmt.Printf("+ %s %s\n", c.Path, value.Stringify(c.After))
	case value.ChangeActionRemove:
		fmt.Printf("- %s %s\n", c.Path, value.Stringify(c.Before))
	default:
		fmt.Printf("~ %s %s -> %s\n", c.Path, value.Stringify(c.Before), value.Stringify(c.After))
	}
}
