package ocp

import (
	"fmt"
	"strings"
	"time"
)

// TextFormatter renders a report as plain text with an underlined title.
type TextFormatter struct{}

func (TextFormatter) Format(r Report) ([]byte, error) {
	var b strings.Builder
	b.WriteString(r.Title + "\n")
	b.WriteString(strings.Repeat("=", len(r.Title)) + "\n\n")
	b.WriteString(r.Body)
	if !strings.HasSuffix(r.Body, "\n") {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n-- %s, %s\n", r.ID, r.GeneratedAt.Format(time.RFC3339))
	return []byte(b.String()), nil
}

func (TextFormatter) MediaType() string { return "text/plain; charset=utf-8" }
