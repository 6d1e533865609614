package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var leafType string
	var cycles int

	cmd := &cobra.Command{
		Use:   "events <pattern>",
		Short: "Parse, compile, and sample a mini-notation pattern over N cycles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lk, err := resolveLeafKind(leafType)
			if err != nil {
				return err
			}
			events, perr := lk.events(args[0], cycles)
			if perr != nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderError(perr))
				return fmt.Errorf("parse failed")
			}
			for _, e := range events {
				fmt.Fprintln(cmd.OutOrStdout(), e)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&leafType, "type", "t", "string", "leaf type to parse as (string, char, bool, double, note, int, integer, rational, colour)")
	cmd.Flags().IntVarP(&cycles, "cycles", "c", 1, "number of cycles to sample, starting at cycle 0")

	return cmd
}
