package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newASTCmd() *cobra.Command {
	var leafType string

	cmd := &cobra.Command{
		Use:   "ast <pattern>",
		Short: "Parse a mini-notation pattern and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lk, err := resolveLeafKind(leafType)
			if err != nil {
				return err
			}
			description, perr := lk.describe(args[0])
			if perr != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderError(perr))
				return fmt.Errorf("parse failed")
			}
			fmt.Fprint(cmd.OutOrStdout(), description)
			return nil
		},
	}
	cmd.Flags().StringVarP(&leafType, "type", "t", "string", "leaf type to parse as (string, char, bool, double, note, int, integer, rational, colour)")

	return cmd
}
