package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/wordcab-go/config"
	"github.com/kbukum/wordcab-go/logger"
	"github.com/kbukum/wordcab-go/version"
	"github.com/kbukum/wordcab-go/wordcab"
)

// rootFlags carries the connection settings shared by every subcommand.
// File and environment configuration fills the gaps flags leave open.
type rootFlags struct {
	apiKey     string
	baseURL    string
	timeout    time.Duration
	configFile string

	cfg *config.Config
}

// load resolves configuration from files, .env, and WORDCAB_* variables,
// once per invocation.
func (f *rootFlags) load() (*config.Config, error) {
	if f.cfg != nil {
		return f.cfg, nil
	}
	cfg, err := config.Load(config.LoaderOptions{ConfigFile: f.configFile})
	if err != nil {
		return nil, err
	}
	f.cfg = cfg
	return cfg, nil
}

// resolveBaseURL returns the flag value or the configured endpoint.
func (f *rootFlags) resolveBaseURL() (string, error) {
	if f.baseURL != "" {
		return f.baseURL, nil
	}
	cfg, err := f.load()
	if err != nil {
		return "", err
	}
	return cfg.BaseURL, nil
}

// resolveTimeout returns the flag value or the configured timeout.
func (f *rootFlags) resolveTimeout() (time.Duration, error) {
	if f.timeout > 0 {
		return f.timeout, nil
	}
	cfg, err := f.load()
	if err != nil {
		return 0, err
	}
	return cfg.Timeout, nil
}

// clientOptions builds SDK options from the loaded configuration, with
// flags taking precedence over configured values.
func (f *rootFlags) clientOptions() ([]wordcab.Option, error) {
	cfg, err := f.load()
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if f.baseURL != "" {
		baseURL = f.baseURL
	}
	timeout := cfg.Timeout
	if f.timeout > 0 {
		timeout = f.timeout
	}

	opts := []wordcab.Option{
		wordcab.WithBaseURL(baseURL),
		wordcab.WithTimeout(timeout),
		wordcab.WithLogger(logger.New(&cfg.Logging, "wordcab")),
	}
	if f.apiKey != "" {
		opts = append(opts, wordcab.WithAPIKey(f.apiKey))
	}
	if cfg.Retry {
		opts = append(opts, wordcab.WithRetry())
	}
	return opts, nil
}

func (f *rootFlags) newClient() (*wordcab.Client, error) {
	opts, err := f.clientOptions()
	if err != nil {
		return nil, err
	}
	return wordcab.NewClient(opts...)
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "wordcab",
		Short:         "Summarize and inspect transcripts from the command line",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.apiKey, "api-key", "", "API key (overrides WORDCAB_API_KEY and the stored login)")
	rootCmd.PersistentFlags().StringVar(&flags.baseURL, "base-url", "", "API endpoint override")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout")
	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newLoginCommand(flags))
	rootCmd.AddCommand(newLogoutCommand())
	rootCmd.AddCommand(newStatsCommand(flags))
	rootCmd.AddCommand(newJobsCommand(flags))
	rootCmd.AddCommand(newTranscriptsCommand(flags))

	return rootCmd
}
