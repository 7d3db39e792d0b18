package flow

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Unbounded is the capacity used for arcs that must never be part of a
// minimum cut. Arithmetic on it saturates instead of wrapping.
const Unbounded int64 = math.MaxInt64

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = errors.New("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = errors.New("sink vertex not found")

// ErrUnknownAlgorithm is returned for an algorithm name ParseAlgorithm does not know.
var ErrUnknownAlgorithm = errors.New("flow: unknown max-flow algorithm")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Logger: receives one debug event per augmentation (nil = silent).
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Logger               *zerolog.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a silent logger and no forced
// level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{}
}

// logger returns the configured logger or a no-op one.
func (o FlowOptions) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}

	return *o.Logger
}
