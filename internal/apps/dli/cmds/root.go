package dli

import (
	"context"
	"os"

	appconfig "github.com/0xa1bed0/dli/internal/apps/dli/config"
	"github.com/0xa1bed0/dli/internal/dockerclient"
	"github.com/0xa1bed0/dli/internal/logs"
	"github.com/0xa1bed0/dli/internal/runtime"
	"github.com/0xa1bed0/dli/internal/ui"
	"github.com/spf13/cobra"
)

// env is what every subcommand shares for one invocation.
type env struct {
	cfg       appconfig.Config
	log       *ui.Logger
	newDocker func(ctx context.Context) (dockerclient.DockerClient, error)
	confirm   func(text string) (bool, error)
	verbosity int
}

func Execute(rt *runtime.Runtime) error {
	e := &env{
		cfg:       appconfig.FromEnv(os.LookupEnv),
		log:       logs.L(),
		newDocker: dockerclient.NewDockerClient,
	}
	e.confirm = e.log.Confirm

	rootCmd := newRootCmd(e)
	return rootCmd.ExecuteContext(rt.Ctx())
}

func newRootCmd(e *env) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dli",
		Short: "Utilities for ensuring LABELs in Dockerfiles are well maintained",
		Long: `dli checks the LABEL instructions of a Dockerfile (or the labels of a local
image) against Docker's key naming conventions or a JSON schema.

Exit codes: 0 checks passed, 2 an error was reported, 3 Dockerfile, image or
schema not found, 1 anything else.`,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := e.cfg.Validate(); err != nil {
				return err
			}
			mode, err := ui.ParseColorMode(e.cfg.Color)
			if err != nil {
				return err
			}
			e.log.SetColor(mode)
			e.log.SetVerbosity(e.verbosity)
			return nil
		},
		// we will handle that
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().CountVarP(&e.verbosity, "verbose", "v", "increase verbosity level")
	rootCmd.PersistentFlags().StringVar(&e.cfg.Color, "color", e.cfg.Color, "colorize output: auto, always or never (env "+appconfig.EnvColor+")")

	rootCmd.AddCommand(newLintCmd(e))
	rootCmd.AddCommand(newValidateCmd(e))
	rootCmd.AddCommand(newSchemaCmd(e))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
