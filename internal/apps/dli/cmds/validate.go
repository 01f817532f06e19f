package dli

import (
	"errors"

	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/runtime"
	"github.com/0xa1bed0/dli/internal/schema"
	"github.com/spf13/cobra"
)

func newValidateCmd(e *env) *cobra.Command {
	var src sourceFlags
	var summary bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate Dockerfile LABELs based on a JSON schema",
		Long: `Validate labels against a JSON schema document.

Values made only of digits are checked as integers, everything else as
strings. The formats "semver" and "semver-constraint" are available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.loadLabels(cmd.Context(), src)
			if err != nil {
				return err
			}

			c := findings.NewCollector(e.log)
			if err := schema.Validate(set, e.cfg.Schema, c); err != nil {
				if errors.Is(err, schema.ErrSchemaNotFound) {
					return runtime.WithExitCode(runtime.ExitNotFound, err)
				}
				return err
			}
			return e.finish(c, summary)
		},
	}

	attachSourceFlags(cmd, e, &src)
	cmd.Flags().StringVar(&e.cfg.Schema, "schema", e.cfg.Schema, "path to the JSON schema (env DLI_SCHEMA)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the number of errors and warnings at the end")

	return cmd
}
