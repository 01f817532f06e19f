package appconfig

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultDockerfile = "Dockerfile"
	DefaultSchema     = "schema.json"
	DefaultColor      = "auto"

	EnvDockerfile = "DLI_DOCKERFILE"
	EnvSchema     = "DLI_SCHEMA"
	EnvColor      = "DLI_COLOR"
)

// Config holds the input locations and output options shared by commands.
// Precedence: flags > environment (.env included) > defaults.
type Config struct {
	Dockerfile string `validate:"required"`
	Schema     string `validate:"required"`
	Color      string `validate:"oneof=auto always never"`
}

func Default() Config {
	return Config{
		Dockerfile: DefaultDockerfile,
		Schema:     DefaultSchema,
		Color:      DefaultColor,
	}
}

// FromEnv returns the defaults overridden by any non-empty variable lookup
// finds.
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()
	if v, ok := lookup(EnvDockerfile); ok && v != "" {
		cfg.Dockerfile = v
	}
	if v, ok := lookup(EnvSchema); ok && v != "" {
		cfg.Schema = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.Color = v
	}
	return cfg
}

// LoadDotEnv loads variables from path into the process environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

var validate = validator.New()

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: %s fails %q (got %q)", fe.Field(), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
