// Command gqlcore is the reference CLI over this module's compiler
// core: load GraphQL schema/executable files, build and print
// diagnostics for them, or dump a file's CST for debugging a grammar
// change (spec §6 "External interfaces" expansion).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gqlcore/gqlcore/gqllog"
)

func main() {
	logger := gqllog.Default()

	root := &cobra.Command{
		Use:   "gqlcore",
		Short: "GraphQL front-end compiler core CLI",
	}
	root.AddCommand(newCheckCommand(logger))
	root.AddCommand(newASTCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
