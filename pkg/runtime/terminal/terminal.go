package terminal

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/de-tools/growth-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/growth-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/growth-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env      *commands.Environment
	logger   zerolog.Logger
	rootCmd  *cobra.Command
	settings string
	profiles string
	logLevel string
}

// Options contain configuration for the CLI
type Options struct {
	Input  io.Reader
	Output io.Writer
	Logger *zerolog.Logger
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	cli := &CLI{
		logger: logger,
		env: &commands.Environment{
			Reporters: map[string]commands.Reporter{
				"table":   export.NewReporter(opts.Output),
				"summary": NewReporter(opts.Output),
				"json":    NewJSONReporter(opts.Output),
			},
			In:  opts.Input,
			Out: opts.Output,
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "growth",
		Short:             "Compound growth calculator",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cmd.PersistentFlags().StringVarP(&cli.settings, "config", "c", "", "Path to a settings file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&cli.profiles, "profiles", "", "Path to the profiles file (default is $HOME/.growthcfg)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(commands.NewProjectCmd(cli.env))
	cmd.AddCommand(commands.NewInteractiveCmd(cli.env))
	cmd.AddCommand(commands.NewProfilesCmd(cli.env))

	return cmd
}

func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	level, err := zerolog.ParseLevel(cli.logLevel)
	if err != nil {
		return err
	}
	logger := cli.logger.Level(level)
	cmd.SetContext(logger.WithContext(cmd.Context()))

	settings, err := config.LoadSettings(cli.settings)
	if err != nil {
		return err
	}
	cli.env.Settings = settings

	registry, err := cli.loadRegistry()
	if err != nil {
		return err
	}
	cli.env.Registry = registry
	return nil
}

// loadRegistry reads the profiles file. A missing file at the default
// location is not an error.
func (cli *CLI) loadRegistry() (config.Registry, error) {
	path := cli.profiles
	explicit := path != ""
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return config.NewEmptyRegistry(), nil
		}
		path = filepath.Join(home, ".growthcfg")
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		return config.NewEmptyRegistry(), nil
	}
	return config.NewRegistry(path)
}
