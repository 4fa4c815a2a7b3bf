package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nerrad567/featuregate/internal/access"
)

// Domain errors for the source package.
var (
	// ErrSourceUnavailable is returned when a fixture cannot be read.
	ErrSourceUnavailable = errors.New("source: unavailable")

	// ErrInvalidFixture is returned when a fixture cannot be parsed, or when
	// strict mode finds issues in it.
	ErrInvalidFixture = errors.New("source: invalid fixture")
)

// Source produces the raw role -> feature entries.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string

	// Load returns the entries in fixture order. Identifiers are not
	// validated; use Validate for that.
	Load(ctx context.Context) ([]access.Entry, error)
}

// Logger defines the logging interface used by Build.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Options controls Build.
type Options struct {
	// Strict fails the build when Validate reports any issue.
	Strict bool

	// Logger receives one warning per issue. Nil discards them.
	Logger Logger
}

// Build loads src, validates the entries and constructs the registry.
//
// Issues are always returned. Without Strict the registry is built anyway
// and the offending parts are ignored by access.NewRegistry; with Strict
// Build returns an error wrapping ErrInvalidFixture and a nil registry.
func Build(ctx context.Context, src Source, opts Options) (*access.Registry, []Issue, error) {
	log := opts.Logger
	if log == nil {
		log = noopLogger{}
	}

	entries, err := src.Load(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", src.Name(), err)
	}

	issues := Validate(entries)
	for _, issue := range issues {
		log.Warn("permission fixture issue",
			"source", src.Name(),
			"kind", string(issue.Kind),
			"entry", issue.Index,
			"role", string(issue.Role),
			"feature", string(issue.Feature),
		)
	}

	if opts.Strict && len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, issues, fmt.Errorf("%w: %s: %s", ErrInvalidFixture, src.Name(), strings.Join(msgs, "; "))
	}

	reg := access.NewRegistry(entries...)
	if reg.Len() == 0 {
		log.Warn("permission registry is empty", "source", src.Name())
	}
	log.Info("permission registry built",
		"source", src.Name(),
		"roles", reg.Len(),
		"issues", len(issues),
	)

	return reg, issues, nil
}

// Builtin serves the table compiled into the binary.
type Builtin struct{}

// Name implements Source.
func (Builtin) Name() string { return "builtin" }

// Load implements Source.
func (Builtin) Load(ctx context.Context) ([]access.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return access.DefaultEntries(), nil
}
