package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/agreement-cli/internal/model"
)

var (
	composeInput    string
	composeOutput   string
	composeDocument bool
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate one service agreement from a JSON agreement",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAgreementFile(cmd.InOrStdin(), composeInput)
		if err != nil {
			return err
		}

		env, err := initGenerator()
		if err != nil {
			return err
		}
		defer env.Close()

		res, err := env.Generator.Generate(cmd.Context(), a)
		if err != nil {
			return err
		}

		out := res.Output
		if composeDocument {
			out, err = json.MarshalIndent(res.Document, "", "  ")
			if err != nil {
				return eris.Wrap(err, "encode document")
			}
		}
		return writeOutput(cmd.OutOrStdout(), composeOutput, out)
	},
}

func init() {
	composeCmd.Flags().StringVarP(&composeInput, "input", "i", "-", "agreement JSON file, - for stdin")
	composeCmd.Flags().StringVarP(&composeOutput, "out", "o", "-", "output file, - for stdout")
	composeCmd.Flags().BoolVar(&composeDocument, "document", false, "write the composed document model as JSON instead of rendering")
	rootCmd.AddCommand(composeCmd)
}

// readAgreementFile decodes one agreement from path, or from stdin when path
// is "-".
func readAgreementFile(stdin io.Reader, path string) (model.Agreement, error) {
	var a model.Agreement
	data, err := readInput(stdin, path)
	if err != nil {
		return a, err
	}
	if err := json.Unmarshal(data, &a); err != nil {
		return a, eris.Wrapf(err, "decode agreement %s", path)
	}
	return a, nil
}

// readAgreements decodes a JSON array of agreements, or a single object.
func readAgreements(data []byte) ([]model.Agreement, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var a model.Agreement
		if err := json.Unmarshal(trimmed, &a); err != nil {
			return nil, eris.Wrap(err, "decode agreement")
		}
		return []model.Agreement{a}, nil
	}

	var list []model.Agreement
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, eris.Wrap(err, "decode agreements")
	}
	return list, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		return data, eris.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, eris.Wrapf(err, "read %s", path)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return eris.Wrap(err, "write stdout")
	}
	return eris.Wrapf(os.WriteFile(path, data, 0644), "write %s", path)
}
