package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/compozy/capnames/internal/namelist"
	"github.com/compozy/capnames/pkg/config"
	"github.com/compozy/capnames/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SetupGlobalConfig resolves the configuration for cmd and stores it, along
// with a logger built from it, in the command context.
func SetupGlobalConfig(cmd *cobra.Command) error {
	if err := loadEnvFile(cmd); err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(
		config.NewYAMLProvider(configPath, cmd.Flags().Changed("config")),
		config.NewEnvProvider(nil),
		config.NewCLIProvider(changedFlags(cmd.Flags())),
	)
	if err != nil {
		return err
	}

	log := logger.SetupLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.JSON, cfg.Log.Source)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = config.ContextWithConfig(ctx, cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)

	log.Debug("configuration loaded",
		"config_file", configPath,
		"input_source", string(loader.SourceOf("input")),
		"output_source", string(loader.SourceOf("output")),
		"log_level_source", string(loader.SourceOf("log.level")),
	)
	return nil
}

// loadEnvFile loads the dotenv file without overriding variables already set.
// A missing file is only an error when the flag was given explicitly.
func loadEnvFile(cmd *cobra.Command) error {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		return nil
	}
	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("env-file") {
			return nil
		}
		return fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}
	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}
	return nil
}

func changedFlags(flags *pflag.FlagSet) map[string]any {
	values := make(map[string]any)
	flags.Visit(func(f *pflag.Flag) {
		values[f.Name] = f.Value.String()
	})
	return values
}

func newProcessor(cmd *cobra.Command) *namelist.Processor {
	p := namelist.NewProcessor(afero.NewOsFs())
	p.Stdin = cmd.InOrStdin()
	p.Stdout = cmd.OutOrStdout()
	return p
}
