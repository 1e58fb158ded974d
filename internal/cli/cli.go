// Package cli implements the command-line interface for uncpath.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rjdinis/uncpath/internal/config"
	"github.com/rjdinis/uncpath/internal/logging"
	"github.com/rjdinis/uncpath/internal/mapping"
	"github.com/rjdinis/uncpath/internal/unc"
)

type options struct {
	mappings   []string
	file       string
	noDefaults bool
	list       bool
	output     outputFormat
	quiet      bool
	debug      bool
}

func NewRootCommand(version, commit, date string) *cobra.Command {
	opts := &options{output: outputPlain}

	rootCmd := &cobra.Command{
		Use:   "uncpath [OPTIONS] <PATH>",
		Short: "Convert UNC paths to POSIX paths",
		Long: `Convert UNC paths to POSIX paths.

uncpath resolves network share paths into local paths using a host/share
to mount point mapping table.

Accepted path formats:
  \\host\share\path
  //host/share/path
  smb://host/share/path

Mappings are merged from, lowest priority first: built-in defaults,
the UNCPATH_MAPPINGS environment variable, --file, and --mapping.`,
		Example: `  uncpath '\\server\shared\documents\file.txt'
  uncpath smb://nas/data/report.pdf
  uncpath --mapping myhost:myshare:/custom/mount //myhost/myshare/test.txt
  uncpath --no-defaults --file mappings.json '\\testhost\testshare\doc.txt'
  uncpath --list -o table x`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}
	rootCmd.SetVersionTemplate("uncpath version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringArrayVarP(&opts.mappings, "mapping", "m", nil, "Add mapping in format host:share:mount_point (repeatable)")
	flags.StringVarP(&opts.file, "file", "f", "", "Load mappings from a JSON (or YAML) file")
	flags.BoolVar(&opts.noDefaults, "no-defaults", false, "Skip built-in default mappings")
	flags.BoolVarP(&opts.list, "list", "l", false, "List configured mappings instead of converting")
	flags.VarP(&opts.output, "output", "o", "List output format: plain, table or json")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress warnings")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Print debug information")
	flags.BoolP("version", "V", false, "Print version information")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.MarkFlagFilename("file", "json", "yaml", "yml")

	rootCmd.AddCommand(
		newVersionCmd(version, commit, date),
		newCompletionCmd(),
	)

	return rootCmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SetQuiet(opts.quiet)
	cfg.SetDebug(opts.debug)

	log := logging.NewWithWriter(cmd.ErrOrStderr(), cfg.Quiet, cfg.Debug)

	table, err := mapping.NewBuilder(log).Build(mapping.Sources{
		NoDefaults: opts.noDefaults,
		EnvJSON:    cfg.EnvMappings,
		File:       opts.file,
		CLI:        opts.mappings,
	})
	if err != nil {
		return err
	}

	if opts.list {
		log.Debug("Listing mappings, ignoring path %q", path)
		return printMappings(cmd.OutOrStdout(), table.Mappings(), opts.output)
	}

	ref, err := unc.Parse(path)
	if err != nil {
		return err
	}
	log.Debug("Parsed %s path: host=%s share=%s path=%q", ref.Syntax, ref.Host, ref.Share, ref.Path)

	posix, err := unc.Resolve(ref, table)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), posix)
	return nil
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uncpath version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
