package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minic",
		Short: "A mini-notation pattern parser and compiler",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newASTCmd())
	rootCmd.AddCommand(newEventsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveLeafKind(kind string) (leafKind, error) {
	lk, ok := leafKinds[kind]
	if !ok {
		names := supportedLeafKinds()
		sort.Strings(names)
		return leafKind{}, fmt.Errorf("unknown leaf type %q (supported: %v)", kind, names)
	}
	return lk, nil
}
