package dli

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xa1bed0/dli/internal/dockerclient"
	"github.com/0xa1bed0/dli/internal/dockerfile"
	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/labels"
	"github.com/0xa1bed0/dli/internal/runtime"
	"github.com/spf13/cobra"
)

// ErrChecksFailed is returned when at least one Error violation was reported.
var ErrChecksFailed = errors.New("label checks failed")

// sourceFlags select where labels are read from.
type sourceFlags struct {
	image string
}

func attachSourceFlags(cmd *cobra.Command, e *env, src *sourceFlags) {
	cmd.Flags().StringVar(&e.cfg.Dockerfile, "dockerfile", e.cfg.Dockerfile, "path to the Dockerfile (env DLI_DOCKERFILE)")
	cmd.Flags().StringVar(&src.image, "image", "", "read labels from a local image instead of a Dockerfile")
	cmd.MarkFlagsMutuallyExclusive("dockerfile", "image")
}

// loadLabels reads the label set from the image when one is given, from the
// Dockerfile otherwise. Missing inputs carry the not-found exit code.
func (e *env) loadLabels(ctx context.Context, src sourceFlags) (*labels.Set, error) {
	if src.image != "" {
		dc, err := e.newDocker(ctx)
		if err != nil {
			return nil, err
		}
		set, err := dc.ImageLabels(ctx, src.image)
		if errors.Is(err, dockerclient.ErrImageNotFound) {
			return nil, runtime.WithExitCode(runtime.ExitNotFound, err)
		}
		return set, err
	}

	set, err := dockerfile.ExtractLabels(e.cfg.Dockerfile)
	if errors.Is(err, dockerfile.ErrDescriptorNotFound) {
		return nil, runtime.WithExitCode(runtime.ExitNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("read labels from %s: %w", e.cfg.Dockerfile, err)
	}
	return set, nil
}

// finish turns the collected violations into the command result.
func (e *env) finish(c *findings.Collector, summary bool) error {
	if summary {
		e.log.Plain("%s", c.Summary())
	}
	if c.HasErrors() {
		return runtime.WithQuietExitCode(runtime.ExitViolated, ErrChecksFailed)
	}
	return nil
}
