package ocp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

type tomlReport struct {
	ID          string    `toml:"id"`
	Title       string    `toml:"title"`
	Body        string    `toml:"body"`
	GeneratedAt time.Time `toml:"generated_at"`
}

// TOMLFormatter renders a report as a TOML document.
type TOMLFormatter struct{}

func (TOMLFormatter) Format(r Report) ([]byte, error) {
	var buf bytes.Buffer
	err := toml.NewEncoder(&buf).Encode(tomlReport{
		ID:          r.ID.String(),
		Title:       r.Title,
		Body:        r.Body,
		GeneratedAt: r.GeneratedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding report as toml: %w", err)
	}
	return buf.Bytes(), nil
}

func (TOMLFormatter) MediaType() string { return "application/toml" }
