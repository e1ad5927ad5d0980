package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/agreement-cli/internal/branch"
	"github.com/sells-group/agreement-cli/internal/model"
)

var (
	branchesState     string
	branchesCareState string
	branchesFormat    string
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "Look up branch reference data and resolved policy",
}

var branchesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List branch codes sorted by display name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := initResolver()
		if err != nil {
			return err
		}
		opts := r.Options()
		if branchesFormat == "table" {
			formatBranchList(cmd.OutOrStdout(), opts)
			return nil
		}
		return writeValue(cmd.OutOrStdout(), opts, branchesFormat)
	},
}

var branchesShowCmd = &cobra.Command{
	Use:   "show <branch-code>",
	Short: "Show the resolved policy for a branch and state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := initResolver()
		if err != nil {
			return err
		}

		state := branchesState
		if state == "" {
			if rec, ok := r.Branch(args[0]); ok {
				state = rec.State
			}
		}
		var opts []branch.Option
		if branchesCareState != "" {
			opts = append(opts, branch.WithCareRecipientState(branchesCareState))
		}
		return writeValue(cmd.OutOrStdout(), r.Resolve(args[0], state, opts...), branchesFormat)
	},
}

var branchesAddressCmd = &cobra.Command{
	Use:   "address <branch-code>",
	Short: "Show a branch's office address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := initResolver()
		if err != nil {
			return err
		}
		return writeValue(cmd.OutOrStdout(), r.Address(args[0]), branchesFormat)
	},
}

func init() {
	branchesCmd.PersistentFlags().StringVar(&branchesFormat, "format", "json", "output format: json, yaml or table (list only)")
	branchesShowCmd.Flags().StringVar(&branchesState, "state", "", "two-letter state code (defaults to the branch's state)")
	branchesShowCmd.Flags().StringVar(&branchesCareState, "care-state", "", "care recipient's state")

	branchesCmd.AddCommand(branchesListCmd, branchesShowCmd, branchesAddressCmd)
	rootCmd.AddCommand(branchesCmd)
}

// formatBranchList writes a tabular branch list to out.
func formatBranchList(out io.Writer, opts []model.BranchOption) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "CODE\tNAME")
	_, _ = fmt.Fprintln(w, "----\t----")
	for _, o := range opts {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", o.Code, o.Name)
	}
	_ = w.Flush()
}

// writeValue encodes v as indented JSON or YAML.
func writeValue(out io.Writer, v any, format string) error {
	switch format {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(v), "encode json")
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "encode yaml")
		}
		return eris.Wrap(enc.Close(), "encode yaml")
	default:
		return eris.Errorf("unknown format %q", format)
	}
}
