package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/Vansh-Raja/create-grid-selector/internal/config"
	"github.com/Vansh-Raja/create-grid-selector/internal/scaffold"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type cli struct {
	verbose bool
	cfg     config.Config
	logger  *zap.Logger

	// newCloner is swapped in tests.
	newCloner func() scaffold.Cloner

	opts scaffold.Options
	auth string
}

func newCLI() *cli {
	return &cli{
		cfg:       config.Default(),
		logger:    zap.NewNop(),
		newCloner: func() scaffold.Cloner { return scaffold.NewGitCloner() },
	}
}

func (c *cli) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-grid-selector",
		Short: "Generate a Grid Selector component with specified dimensions",
		Long: `Clones the Symbols starter kit and adds a GridSelector component to it.

Example:
  create-grid-selector --columns 16 --rows 8 --dir ./my-grid`,
		Version:           version,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: c.runScaffold,
	}
	cmd.SetVersionTemplate("create-grid-selector {{.Version}}\n")

	cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	f := cmd.Flags()
	f.IntVarP(&c.opts.Columns, "columns", "x", 0, "number of columns")
	f.IntVarP(&c.opts.Rows, "rows", "y", 0, "number of rows")
	f.StringVarP(&c.opts.Dir, "dir", "d", ".", "directory where the project should be created")
	f.StringVar(&c.opts.RepoURL, "repo", config.DefaultTemplateRepo, "starter kit repository to clone")
	f.StringVar(&c.opts.Ref, "ref", "", "branch to clone (default: the remote's default branch)")
	f.StringVar(&c.auth, "auth", string(config.AuthNone), "clone authentication: none, token or ssh_key")
	_ = cmd.MarkFlagRequired("columns")
	_ = cmd.MarkFlagRequired("rows")

	cmd.AddCommand(
		c.previewCmd(),
		c.authCmd(),
		c.configCmd(),
		c.versionCmd(),
	)
	return cmd
}

// setup loads the config and builds the logger before any command runs.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to load config, using defaults: %v\n", err)
	}
	c.cfg = cfg

	// The preview owns the terminal; logging would corrupt it.
	if cmd.Name() == "preview" {
		c.logger = zap.NewNop()
		return nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if c.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger.Named("create-grid-selector")
	return nil
}

func (c *cli) runScaffold(cmd *cobra.Command, args []string) error {
	opts := c.opts
	if err := opts.Validate(); err != nil {
		return err
	}

	// Flags win over the config file.
	flags := cmd.Flags()
	if !flags.Changed("repo") {
		opts.RepoURL = c.cfg.Template.RepoURL
	}
	if !flags.Changed("ref") {
		opts.Ref = c.cfg.Template.Ref
	}
	opts.Auth = c.cfg.Template.AuthMethod
	if flags.Changed("auth") {
		m, ok := config.ParseAuthMethod(c.auth)
		if !ok {
			return fmt.Errorf("unknown auth method %q (want none, token or ssh_key)", c.auth)
		}
		opts.Auth = m
	}
	opts.SSHKeyPath = c.cfg.Template.SSHKeyPath
	opts.KnownHostsPath = c.cfg.KnownHostsFile()

	out := cmd.OutOrStdout()
	res, err := scaffold.New(c.newCloner(), out, c.logger).Run(cmd.Context(), opts)
	if err != nil {
		return err
	}
	printSummary(out, opts, res)
	return nil
}

func printSummary(out io.Writer, opts scaffold.Options, res scaffold.Result) {
	projectDir := filepath.Join(opts.Dir, filepath.Base(res.ProjectDir))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Success! Grid Selector has been created with the following configuration:")
	fmt.Fprintf(out, "- Location: %s\n", res.TargetDir)
	fmt.Fprintf(out, "- Columns: %d\n", res.Columns)
	fmt.Fprintf(out, "- Rows: %d\n", res.Rows)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "To get started:")
	fmt.Fprintf(out, "  cd %s\n", projectDir)
	fmt.Fprintln(out, "  npm install")
	fmt.Fprintln(out, "  npm start")
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "create-grid-selector %s\n", version)
		},
	}
}
