package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/preview"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        int      `yaml:"port" validate:"min=1,max=65535"`
	Sites       []string `yaml:"sites" validate:"required,min=1,dive,required"`
	PreviewSize int      `yaml:"preview_size" validate:"min=16,max=2048"`
	// OutputDir defaults to the working directory when empty.
	OutputDir string `yaml:"output_dir"`
}

func Default() Config {
	return Config{
		Port:        8080,
		Sites:       slices.Clone(content.DefaultSites),
		PreviewSize: preview.DefaultSize,
	}
}

// ReadConfig decodes the YAML file at filePath on top of the defaults.
func ReadConfig(filePath string) (Config, error) {
	cfg := Default()

	file, err := os.Open(filePath)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	err = decoder.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	validate := validator.New()
	return validate.Struct(cfg)
}
