package codegen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Gobd/formvalidation/transform"
)

const (
	// DefaultConfigFile is read when present and no --config is given.
	DefaultConfigFile = ".oagen.yaml"
	// DefaultGenerator is the executable invoked to generate clients.
	DefaultGenerator = "swagger-typescript-api"
)

// LoadConfig reads a YAML config file over the defaults. A missing file is
// only an error when it is not the default config file.
func LoadConfig(path string) (Config, error) {
	c := Defaults()
	if path == "" {
		path = DefaultConfigFile
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultConfigFile {
			return c, nil
		}
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.Config = path
	c.Normalize()
	return c, nil
}

// Normalize trims surrounding whitespace from every string option.
func (c *Config) Normalize() {
	transform.TrimSpace(c)
}
