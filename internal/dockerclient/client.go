package dockerclient

//go:generate mockgen -destination=mocks/inspector.go -package=mocks github.com/0xa1bed0/dli/internal/dockerclient ImageInspector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/docker/docker/api/types/image"
	dockerapi "github.com/docker/docker/client"
	"github.com/docker/go-sdk/client"

	"github.com/0xa1bed0/dli/internal/labels"
	"github.com/0xa1bed0/dli/internal/logs"
)

// ErrImageNotFound is returned when the daemon has no image for the
// reference.
var ErrImageNotFound = errors.New("image not found")

// ImageInspector is the part of the Docker API the label source needs.
type ImageInspector interface {
	ImageInspect(ctx context.Context, imageID string, opts ...dockerapi.ImageInspectOption) (image.InspectResponse, error)
}

type dockerClient struct {
	inspector ImageInspector
}

// DockerClient reads metadata of local images.
type DockerClient interface {
	ImageLabels(ctx context.Context, imageRef string) (*labels.Set, error)
}

func NewDockerClient(ctx context.Context) (DockerClient, error) {
	sdk, err := client.New(
		ctx,
		client.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to docker: %w", err)
	}

	return NewDockerClientWithInspector(sdk), nil
}

func NewDockerClientWithInspector(inspector ImageInspector) DockerClient {
	return &dockerClient{inspector: inspector}
}

// ImageLabels returns the labels baked into a local image, ordered by key.
func (dc *dockerClient) ImageLabels(ctx context.Context, imageRef string) (*labels.Set, error) {
	inspect, err := dc.inspector.ImageInspect(ctx, imageRef)
	if err != nil {
		if dockerapi.IsErrNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, imageRef)
		}
		return nil, fmt.Errorf("inspect image %s: %w", imageRef, err)
	}

	if inspect.Config == nil {
		return labels.NewSet(), nil
	}

	set := labels.FromMap(inspect.Config.Labels)
	logs.Debugf("image %s carries %d labels", imageRef, set.Len())
	return set, nil
}
