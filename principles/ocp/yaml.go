package ocp

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlReport flattens the UUID to a string; yaml.v3 would otherwise emit
// the raw 16-byte array.
type yamlReport struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Body        string    `yaml:"body"`
	GeneratedAt time.Time `yaml:"generated_at"`
}

// YAMLFormatter renders a report as a YAML document.
type YAMLFormatter struct{}

func (YAMLFormatter) Format(r Report) ([]byte, error) {
	out, err := yaml.Marshal(yamlReport{
		ID:          r.ID.String(),
		Title:       r.Title,
		Body:        r.Body,
		GeneratedAt: r.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding report as yaml: %w", err)
	}
	return out, nil
}

func (YAMLFormatter) MediaType() string { return "application/yaml" }
