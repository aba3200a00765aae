package ocp

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownFormat is returned when a format name has no registered formatter.
var ErrUnknownFormat = errors.New("unknown report format")

// Formatter renders a Report in one output format. Implementations must
// not depend on the Generator or on each other.
type Formatter interface {
	Format(r Report) ([]byte, error)
	MediaType() string
}

// Registry maps format names to formatters. The zero value is not usable;
// construct with NewRegistry or DefaultRegistry.
type Registry struct {
	formatters map[string]Formatter
}

func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// DefaultRegistry returns a registry with every shipped format registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("text", TextFormatter{})
	r.Register("json", JSONFormatter{})
	r.Register("yaml", YAMLFormatter{})
	r.Register("toml", TOMLFormatter{})
	r.Register("html", NewHTMLFormatter())
	return r
}

// Register adds a formatter under name, replacing any previous entry.
func (reg *Registry) Register(name string, f Formatter) {
	reg.formatters[name] = f
}

// Format renders the report with the formatter registered under name.
func (reg *Registry) Format(r Report, name string) ([]byte, error) {
	f, ok := reg.formatters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f.Format(r)
}

// Names returns the registered format names in sorted order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.formatters))
	for name := range reg.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
