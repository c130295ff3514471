package renderer

import (
	"fmt"

	"github.com/kellanmars/spheretracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout.
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a core.Logger that writes to stdout.
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
