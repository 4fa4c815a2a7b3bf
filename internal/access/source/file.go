package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nerrad567/featuregate/internal/access"
)

// fixtureEntry is one role as written in a fixture file.
type fixtureEntry struct {
	Role     string   `yaml:"role"`
	Features []string `yaml:"features"`
}

// fixtureDocument is the mapping form of a fixture file.
type fixtureDocument struct {
	Roles []fixtureEntry `yaml:"roles"`
}

// File reads entries from a YAML or JSON fixture on disk.
type File struct {
	path string
}

// NewFile creates a file-backed source.
func NewFile(path string) *File {
	return &File{path: path}
}

// Name implements Source.
func (f *File) Name() string {
	return "file:" + f.path
}

// Load implements Source.
func (f *File) Load(ctx context.Context) ([]access.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return entries, nil
}

// Parse decodes a fixture document. Both the mapping form (roles: [...])
// and a bare top-level list are accepted; JSON parses as YAML. Unknown keys
// are rejected so that a misspelt "features" key is not read as an
// empty feature list. A stream with more than one document is rejected.
// An empty document yields no entries.
func Parse(data []byte) ([]access.Entry, error) {
	nodes := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := nodes.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	if err := nodes.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: multiple documents", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw []fixtureEntry
	switch root.Content[0].Kind {
	case yaml.SequenceNode:
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
	case yaml.MappingNode:
		var doc fixtureDocument
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
		}
		raw = doc.Roles
	default:
		return nil, fmt.Errorf("%w: expected a mapping or a list at the top level", ErrInvalidFixture)
	}

	entries := make([]access.Entry, len(raw))
	for i, r := range raw {
		features := make([]access.Feature, len(r.Features))
		for j, name := range r.Features {
			features[j] = access.Feature(name)
		}
		entries[i] = access.Entry{Role: access.Role(r.Role), Features: features}
	}
	return entries, nil
}
