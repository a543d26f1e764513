package ports

import "github.com/jhill1/circlekit/internal/domain"

// ConfigLoader loads the circlekit configuration for a root directory.
type ConfigLoader interface {
	LoadConfig(root string) (domain.Config, error)
}
