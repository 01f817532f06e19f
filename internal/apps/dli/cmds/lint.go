package dli

import (
	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/lint"
	"github.com/spf13/cobra"
)

func newLintCmd(e *env) *cobra.Command {
	var src sourceFlags
	var summary bool

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Check for common issues with Dockerfile LABELs",
		Long: `Check label keys against Docker's naming conventions:

  - keys use a reverse DNS namespace (com.example.some-label)
  - com.docker.*, io.docker.* and org.dockerproject.* are reserved
  - keys consist of lower-cased alphanumerics, dots and dashes
  - keys start and end with an alphanumeric character
  - keys contain no consecutive dots or dashes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := e.loadLabels(cmd.Context(), src)
			if err != nil {
				return err
			}

			c := findings.NewCollector(e.log)
			lint.Run(set, c)
			return e.finish(c, summary)
		},
	}

	attachSourceFlags(cmd, e, &src)
	cmd.Flags().BoolVar(&summary, "summary", false, "print the number of errors and warnings at the end")

	return cmd
}
