package cli

import (
	"github.com/compozy/capnames/pkg/config"
	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "capnames [input [output]]",
		Short: "Capitalize every name in a name list file",
		Long: `Read a newline-delimited list of names, drop blank lines and write each
remaining name trimmed and capitalized ("sMiTh" becomes "Smith").

Without arguments the list last-names.txt is rewritten into last_names.txt in
the current directory. Use "-" to read from stdin or write to stdout.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return SetupGlobalConfig(cmd)
		},
		RunE: runProcess,
	}

	root.PersistentFlags().String("config", config.DefaultConfigFile, "Path to the YAML config file")
	root.PersistentFlags().String("env-file", ".env", "Path to a dotenv file with CAPNAMES_* variables")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "Log in JSON format")
	root.PersistentFlags().Bool("log-source", false, "Include source file and line in logs")

	root.Flags().StringP("input", "i", config.DefaultInput, "Name list to read")
	root.Flags().StringP("output", "o", config.DefaultOutput, "File to write the capitalized names to")

	root.AddCommand(
		BatchCmd(),
		VersionCmd(),
	)

	return root
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg := config.FromContext(cmd.Context())
	input, output := cfg.Input, cfg.Output
	if len(args) > 0 {
		input = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	_, err := newProcessor(cmd).Process(cmd.Context(), input, output)
	return err
}
