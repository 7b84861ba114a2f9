package rrcm

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mizuki0629/rrcm/internal/version"
	"github.com/mizuki0629/rrcm/pkg/config"
	"github.com/mizuki0629/rrcm/pkg/core"
	"github.com/mizuki0629/rrcm/pkg/logging"
	"github.com/mizuki0629/rrcm/pkg/platform"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:     "rrcm",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand given; show help but signal incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newDeployCmd())
	rootCmd.AddCommand(newUndeployCmd())
	rootCmd.AddCommand(newUpdateCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// configFile returns the configuration path from the --config flag, or the
// default location.
func configFile(cmd *cobra.Command) string {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	if path == "" {
		return config.DefaultPath()
	}
	return path
}

// loadOptions loads the configuration and captures the environment for
// the commands that operate on deployment targets.
func loadOptions(cmd *cobra.Command) (core.Options, error) {
	cfg, err := config.Load(configFile(cmd))
	if err != nil {
		return core.Options{}, fmt.Errorf(MsgErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return core.Options{}, fmt.Errorf(MsgErrLoadConfig, err)
	}

	snap, err := platform.NewSnapshot()
	if err != nil {
		return core.Options{}, fmt.Errorf(MsgErrSnapshot, err)
	}

	repoFilter, _ := cmd.Flags().GetString("repo")
	return core.Options{
		Config:     cfg,
		Resolver:   platform.NewResolver(snap),
		RepoFilter: repoFilter,
	}, nil
}
