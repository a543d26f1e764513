package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jhill1/circlekit/internal/domain"
	"github.com/jhill1/circlekit/internal/ports"
)

// Loader reads circlekit.yaml from a root directory.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.ConfigLoader = (*Loader)(nil)

func (Loader) LoadConfig(root string) (domain.Config, error) {
	return Load(root)
}

// Load loads circlekit.yaml from root and applies defaults.
// A missing file is not an error: the defaults are returned as-is.
func Load(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, FileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	return Parse(path, b)
}

// Parse decodes a circlekit.yaml document on top of the defaults.
func Parse(path string, b []byte) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if raw := strings.TrimSpace(y.Circlekit.Output.Format); raw != "" {
		f := strings.ToLower(raw)
		if !domain.ValidFormat(f) {
			return domain.DefaultConfig(), invalidField(path, "circlekit.output.format",
				fmt.Sprintf("unsupported format %q (expected pretty|json)", raw))
		}
		cfg.Output.Format = f
	}
	if y.Circlekit.Output.Precision != nil {
		cfg.Output.Precision = *y.Circlekit.Output.Precision
	}

	return cfg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Circlekit struct {
		Output struct {
			Format    string `yaml:"format"`
			Precision *int   `yaml:"precision"`
		} `yaml:"output"`
	} `yaml:"circlekit"`
}
