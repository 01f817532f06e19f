package dli

import (
	"errors"
	"fmt"
	"os"

	"github.com/0xa1bed0/dli/internal/fsops"
	"github.com/0xa1bed0/dli/internal/schema"
	"github.com/0xa1bed0/dli/internal/ui"
	"github.com/spf13/cobra"
)

func newSchemaCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage label schemas",
	}
	cmd.AddCommand(newSchemaInitCmd(e))
	return cmd
}

func newSchemaInitCmd(e *env) *cobra.Command {
	var src sourceFlags
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter JSON schema from the current labels",
		Long: `Write a draft-07 JSON schema requiring every label currently declared.
Labels with integer values are typed "integer", all others "string".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.loadLabels(cmd.Context(), src)
			if err != nil {
				return err
			}

			path := e.cfg.Schema
			exists, err := fsops.FileExists(fsops.DefaultOps(), path)
			if err != nil {
				return err
			}
			if exists && !force {
				ok, err := e.confirm(fmt.Sprintf("%s already exists. Overwrite?", path))
				if errors.Is(err, ui.ErrNotInteractive) {
					return fmt.Errorf("%s already exists, use --force to overwrite", path)
				}
				if err != nil {
					return err
				}
				if !ok {
					e.log.Info("Keeping existing schema in '%s'", path)
					return nil
				}
			}

			data, err := schema.MarshalScaffold(set)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("write schema: %w", err)
			}

			e.log.Info("Wrote schema for %d labels to '%s'", set.Len(), path)
			return nil
		},
	}

	attachSourceFlags(cmd, e, &src)
	cmd.Flags().StringVar(&e.cfg.Schema, "schema", e.cfg.Schema, "path of the schema to write (env DLI_SCHEMA)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing schema without asking")

	return cmd
}
