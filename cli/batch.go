package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/compozy/capnames/internal/namelist"
	"github.com/compozy/capnames/pkg/config"
	"github.com/spf13/cobra"
)

func BatchCmd() *cobra.Command {
	var jsonOutput bool
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Capitalize every name list configured under lists",
		Long: `Process each input/output pair from the "lists" section of the config
file, in order. Processing stops at the first list that fails.

Example capnames.yaml:

  lists:
    - input: last-names.txt
      output: last_names.txt
    - input: male-first-names.txt
      output: male_names.txt
    - input: female-first-names.txt
      output: female_names.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			jobs := make([]namelist.Job, 0, len(cfg.Lists))
			for _, list := range cfg.Lists {
				jobs = append(jobs, namelist.Job{Input: list.Input, Output: list.Output})
			}
			results, err := newProcessor(cmd).ProcessAll(cmd.Context(), jobs)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			writeSummary(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the per-list results as JSON")
	return cmd
}

func writeSummary(w io.Writer, results []*namelist.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s -> %s: %d names, %d blank lines dropped\n",
			r.Input, r.Output, r.LinesWritten, r.BlankLines)
	}
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
