package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/gqlcore/gqlcore/db"
	"github.com/gqlcore/gqlcore/diagnostic"
	"github.com/gqlcore/gqlcore/gqllog"
	"github.com/gqlcore/gqlcore/gqltrace"
)

func newCheckCommand(logger gqllog.Logger) *cobra.Command {
	var schemaFlags []string
	var configPath string

	cmd := &cobra.Command{
		Use:   "check <files...>",
		Short: "Build a schema and/or executable documents and print their diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			schemaNames := make(map[string]bool)
			for _, f := range schemaFlags {
				schemaNames[f] = true
			}
			for _, f := range cfg.SchemaFiles {
				schemaNames[f] = true
			}

			tracer := gqltrace.New(otel.Tracer("github.com/gqlcore/gqlcore/cmd/gqlcore"))
			database := db.New(tracer)
			if cfg.RecursionLimit > 0 {
				database.SetRecursionLimit(cfg.RecursionLimit)
			}
			if cfg.TokenLimit > 0 {
				database.SetTokenLimit(cfg.TokenLimit)
			}

			ctx := context.Background()
			ids := make(map[string]diagnostic.FileID, len(args))
			var schemaFiles []diagnostic.FileID

			for _, path := range args {
				text, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				id := db.NewFileID()
				ids[path] = id
				database.SetSourceCode(id, string(text))
				if schemaNames[path] {
					database.SetFileKind(id, db.KindSchema)
					schemaFiles = append(schemaFiles, id)
				} else {
					database.SetFileKind(id, db.KindExecutable)
				}
			}
			database.SetTypeDefinitionFiles(schemaFiles)

			exit := 0

			_, diags, err := database.Schema(ctx)
			if err != nil {
				return err
			}
			for _, diag := range diags {
				logger.Error("schema", "diagnostic", diag.String())
				exit = 1
			}

			for path, id := range ids {
				syntaxDiags, err := database.SyntaxErrors(ctx, id)
				if err != nil {
					return err
				}
				for _, diag := range syntaxDiags {
					fmt.Printf("%s: %s\n", path, diag)
					exit = 1
				}
				if schemaNames[path] {
					continue
				}
				if _, typeErr := database.ExecutableDocument(ctx, id); typeErr != nil {
					fmt.Printf("%s: %s\n", path, typeErr)
					exit = 1
				}
			}

			if exit != 0 {
				os.Exit(exit)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&schemaFlags, "schema", nil, "treat this file as a schema document (repeatable)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	return cmd
}
