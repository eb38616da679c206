package renderer

import (
	"fmt"

	"github.com/df07/go-path-tracer/pkg/core"
)

// DefaultLogger writes progress lines to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger returns a core.Logger backed by stdout
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}
