// Package ocp demonstrates an extension point that stays open: new report
// formats register themselves at runtime, and neither the generator nor
// the formats that already ship change when one is added.
package ocp

import (
	"time"

	"github.com/google/uuid"
)

// Report is the value produced by a Generator and consumed by formatters.
// Body is markdown; formatters decide how (or whether) to render it.
type Report struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator produces reports. It knows nothing about output formats.
type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Generate builds a report with a fresh ID and timestamp.
func (g *Generator) Generate(title, body string) Report {
	now := time.Now
	if g.now != nil {
		now = g.now
	}
	return Report{
		ID:          uuid.New(),
		Title:       title,
		Body:        body,
		GeneratedAt: now(),
	}
}
