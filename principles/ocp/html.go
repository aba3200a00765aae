package ocp

import (
	"bytes"
	"fmt"
	"html"
	"time"

	"github.com/yuin/goldmark"
)

// HTMLFormatter renders a report as a standalone HTML page, converting
// the markdown body with goldmark.
type HTMLFormatter struct {
	md goldmark.Markdown
}

func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{md: goldmark.New()}
}

func (f *HTMLFormatter) Format(r Report) ([]byte, error) {
	title := html.EscapeString(r.Title)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head><title>%s</title></head>\n<body>\n", title)
	fmt.Fprintf(&buf, "<h1>%s</h1>\n", title)
	if err := f.md.Convert([]byte(r.Body), &buf); err != nil {
		return nil, fmt.Errorf("rendering report body: %w", err)
	}
	fmt.Fprintf(&buf, "<footer>%s, %s</footer>\n</body>\n</html>\n",
		r.ID, r.GeneratedAt.Format(time.RFC3339))
	return buf.Bytes(), nil
}

func (*HTMLFormatter) MediaType() string { return "text/html; charset=utf-8" }
