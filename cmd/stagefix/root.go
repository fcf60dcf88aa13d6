package main

import (
	"io"

	"github.com/spf13/cobra"

	"stagefix/internal/migrate"
	"stagefix/internal/rules"
	"stagefix/internal/scan"
)

type rootOptions struct {
	rulesPath string
	pattern   string
	verbose   bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "stagefix <dir>",
		Short: "Move stage table empty states into the table body",
		Long: `stagefix rewrites the empty-state conditional of every stage component in
<dir> (non-recursive). A block of the form

  {pendingItems.length === 0 ? (<placeholder div>) : (<table container>)}

becomes the table container alone, with the empty state rendered as a single
row spanning every column inside its <tbody>.

Files are written back only when they change. One line per file is printed:
"Updated <file>" or "No changes match for <file>".

Examples:
  # Migrate the stage components with the built-in pending/history rules
  stagefix components/stages

  # Use a custom rule set
  stagefix --rules stagefix.yaml components/stages
`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, opts, args[0])
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVar(&opts.rulesPath, "rules", "", "Rules file (.yaml, .yml or .toml); built-in pending/history rules when empty")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.Flags().StringVar(&opts.pattern, "pattern", scan.DefaultPattern, "File name pattern selecting components inside <dir>")

	cmd.AddCommand(newRulesCmd(opts))

	return cmd
}

func runMigrate(cmd *cobra.Command, opts *rootOptions, dir string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	rs, err := loadRules(opts.rulesPath)
	if err != nil {
		return err
	}

	logRules(logger, rs)

	m, err := migrate.NewMigrator(rs, migrate.Config{
		Pattern: opts.pattern,
		Out:     cmd.OutOrStdout(),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	summary, err := m.Run(dir)
	if err != nil {
		return err
	}

	diags := summary.Diagnostics()
	if len(diags.Warnings) > 0 {
		logger.Warn("some blocks need manual review", "dir", dir, "warnings", len(diags.Warnings))
	}

	logger.Debug("migration finished",
		"dir", dir, "scanned", summary.Scanned, "updated", summary.Updated, "unchanged", summary.Unchanged,
		"rewrites", len(diags.Infos))

	return nil
}

// loadRules returns the rules file at path, or the built-in rules.
func loadRules(path string) (*rules.RuleSet, error) {
	if path == "" {
		return rules.Default(), nil
	}

	return rules.LoadFile(path)
}
