package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/datacritic/internal/profile"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List built-in weight profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := profile.List()
			if err != nil {
				return err
			}
			for _, name := range names {
				p, err := profile.LoadBuiltin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(violations: %s)\n", name, p.ViolationSeverity)
			}
			return nil
		},
	}
}
