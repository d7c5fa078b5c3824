package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gqlcore/gqlcore/cst"
	"github.com/gqlcore/gqlcore/db"
	"github.com/gqlcore/gqlcore/gqltrace"
)

func newASTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print a file's CST textual rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			database := db.New(gqltrace.Noop())
			id := db.NewFileID()
			database.SetSourceCode(id, string(text))
			database.SetFileKind(id, db.KindExecutable)

			ctx := context.Background()
			root, err := database.CST(ctx, id)
			if err != nil {
				return err
			}
			diags, err := database.SyntaxErrors(ctx, id)
			if err != nil {
				return err
			}
			fmt.Print(cst.Render(root, diags))
			return nil
		},
	}
}
