package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"stagefix/internal/rules"
)

func newRulesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective rule set as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rs, err := loadRules(opts.rulesPath)
			if err != nil {
				return err
			}

			if diags := rules.Validate(rs); diags.HasErrors() {
				return fmt.Errorf("invalid rules: %w", diags.Error())
			}

			data, err := rules.Marshal(rs)
			if err != nil {
				return fmt.Errorf("marshaling rules: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
