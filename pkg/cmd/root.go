package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/siyuan-infoblox/py-imports-check/pkg/config"
	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
	"github.com/siyuan-infoblox/py-imports-check/pkg/formatter"
	"github.com/siyuan-infoblox/py-imports-check/pkg/version"
)

const (
	UseDescription   = "pic [flags] PATH"
	ShortDescription = "Python imports checker - A tool to check and sort Python import groups"
	LongDescription  = `pic is a command-line tool that checks and sorts the import statements of Python files.

Imports are handled in groups: a group is a run of consecutive top-level
import lines, delimited by blank lines or any other statement.
Inside a group:
1. Each line imports a single name
2. 'import x' lines come before 'from x import y' lines, separated by a blank line
3. Lines are sorted alphabetically

By default pic splits and sorts the imports and writes the file back.
With --check it only reports issues. With --diff it prints the changes
without writing them.

PATH can be either a single Python file or a directory. When a directory is
specified, all Python files in the directory and subdirectories will be
processed recursively.

Settings are read from a .pic.yaml file found in PATH or one of its parents,
from PIC_* environment variables and from flags.`
)

var (
	configPath  string
	printConfig bool
	showVersion bool
	versionStr  string
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Bool("check", false, "Only report issues, do not modify files")
	flags.Bool("diff", false, "Print a unified diff of the changes instead of modifying files")
	flags.Bool("split-direct", true, "Split 'import a, b' lines into one line per module")
	flags.StringSlice("extensions", nil, "Comma-separated list of file extensions to process in directories (default .py)")
	flags.StringSlice("exclude", nil, "Comma-separated list of directory names to skip")
	flags.Bool("verbose", false, "Print debug information")
	flags.StringVar(&configPath, "config", "", "Path to a config file (default: .pic.yaml discovered from PATH)")
	flags.BoolVar(&printConfig, "print-config", false, "Print the effective configuration and exit")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	bindings := map[string]string{
		config.KeyCheck:       "check",
		config.KeyDiff:        "diff",
		config.KeySplitDirect: "split-direct",
		config.KeyExtensions:  "extensions",
		config.KeyExcludeDirs: "exclude",
		config.KeyVerbose:     "verbose",
	}
	for key, name := range bindings {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("%s: %v", errors.ErrMsgFailedToBindFlags, err))
		}
	}
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// Neither flag needs a path
	if showVersion || printConfig {
		return cobra.MaximumNArgs(1)(cmd, args)
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get(versionStr).String())
		return nil
	}

	target := ""
	if len(args) > 0 {
		target = args[0]
	}

	cfg, used, err := config.Load(v, configPath, target)
	if err != nil {
		return err
	}

	if printConfig {
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pic"})
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if used != "" {
		logger.Debugf(errors.InfoMsgUsingConfig, used)
	}

	g := formatter.New(formatter.FormatterConfig{
		FilePath:    target,
		Check:       cfg.Check,
		Diff:        cfg.Diff,
		Options:     cfg.CheckerOptions(),
		Extensions:  cfg.Extensions,
		ExcludeDirs: cfg.ExcludeDirs,
		Stdout:      cmd.OutOrStdout(),
		Logger:      logger,
	})
	return g.ProcessPath(target)
}

// Execute runs the root command. buildVersion is the main module version from the binary's build info.
func Execute(buildVersion string) error {
	versionStr = buildVersion
	return rootCmd.Execute()
}
