package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhill1/circlekit/internal/domain"
	"github.com/jhill1/circlekit/internal/infra/config"
)

// resolveConfigRoot returns the directory whose circlekit.yaml applies.
// An explicit flag wins; otherwise the file is searched upward and the working
// directory is used when none exists.
func resolveConfigRoot(configDirFlag string) (string, error) {
	d := strings.TrimSpace(configDirFlag)
	if d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return "", fmt.Errorf("invalid config directory: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := config.NewFinder().FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return wd, nil
		}
		return "", err
	}
	return root, nil
}

func loadSettings(configDirFlag string) (string, domain.Config, error) {
	root, err := resolveConfigRoot(configDirFlag)
	if err != nil {
		return "", domain.Config{}, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return "", domain.Config{}, err
	}
	return root, cfg, nil
}
