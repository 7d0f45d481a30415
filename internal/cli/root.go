// Package cli wires configuration, logging, and the pipeline behind the
// scribe command.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mossline/scribe/internal/config"
	"github.com/mossline/scribe/internal/source"
)

// NewRootCmd creates the scribe root command. Running it with no subcommand
// performs an extraction.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "scribe",
		Short: "Extract chat history from Claude/Codex session logs",
		Long: `Scribe reads the JSONL session logs written by conversational agent
tools (Claude Code, Codex CLI), reconciles their divergent schemas into a
single chronological transcript, and renders it as markdown.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configPath)
			if err != nil {
				return err
			}
			return runExtract(cmd.Context(), cfg)
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().String("source", "", "source provider: "+strings.Join(source.Providers(), ", "))
	rootCmd.Flags().String("path", "", "path to a .jsonl file or directory (default: the provider's root)")
	rootCmd.Flags().String("pattern", "", "glob pattern under a directory path (default: **/*.jsonl)")
	rootCmd.Flags().String("output", "", "output destination: file, stdout")
	rootCmd.Flags().String("outdir", "", "directory for generated markdown (default: generatedMD)")
	rootCmd.Flags().String("prefix", "", "generated filename prefix (default: ChatHistory)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().String("log-format", "", "log format: console, json")

	rootCmd.AddCommand(newSourcesCmd())
	return rootCmd
}

// loadConfig layers flag values over file/env configuration. Only flags the
// user actually set override.
func loadConfig(cmd *cobra.Command, configPath string) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	set := map[string]*string{
		"source":     &cfg.Source.Provider,
		"path":       &cfg.Source.Path,
		"pattern":    &cfg.Source.Pattern,
		"output":     &cfg.Output.Mode,
		"outdir":     &cfg.Output.Dir,
		"prefix":     &cfg.Output.Prefix,
		"log-level":  &cfg.Log.Level,
		"log-format": &cfg.Log.Format,
	}
	for name, target := range set {
		if cmd.Flags().Changed(name) {
			*target, _ = cmd.Flags().GetString(name)
		}
	}
	return cfg, nil
}

func newSourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List registered source providers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range source.Providers() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
