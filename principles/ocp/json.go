package ocp

import (
	"encoding/json"
	"fmt"
)

// JSONFormatter renders a report as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Format(r Report) ([]byte, error) {
	out, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report as json: %w", err)
	}
	return append(out, '\n'), nil
}

func (JSONFormatter) MediaType() string { return "application/json" }
