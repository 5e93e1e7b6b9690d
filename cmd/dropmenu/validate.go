package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/dropmenu/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <menu-file>",
		Short: "Check a menu document without opening it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := config.ParseFile(args[0])
			if err != nil {
				return err
			}
			if _, err := doc.Options(); err != nil {
				return err
			}

			rows := 0
			for _, c := range doc.Components {
				rows += len(c.Rows)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d components, %d rows\n", doc.Name, len(doc.Components), rows)
			return nil
		},
	}

	return cmd
}
