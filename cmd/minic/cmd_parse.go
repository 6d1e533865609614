package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var leafType string

	cmd := &cobra.Command{
		Use:   "parse <pattern>",
		Short: "Parse a mini-notation pattern and report whether it is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lk, err := resolveLeafKind(leafType)
			if err != nil {
				return err
			}
			if _, perr := lk.describe(args[0]); perr != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderError(perr))
				return fmt.Errorf("parse failed")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
	cmd.Flags().StringVarP(&leafType, "type", "t", "string", "leaf type to parse as (string, char, bool, double, note, int, integer, rational, colour)")

	return cmd
}
