package core

// Logger receives progress output from long running operations.
// Both *log.Logger and the renderer's stdout logger satisfy it.
type Logger interface {
	Printf(format string, args ...interface{})
}
