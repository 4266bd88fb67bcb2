package terminal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/growth-atlas/pkg/adapters"
	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

// Reporter outputs the headline summary only.
type Reporter struct {
	writer io.Writer
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(view domain.View) error {
	tmpl := `{{.Description}}
{{if .Summary.Empty}}{{.Summary.Placeholder}}{{else}}Overall value: {{.Summary.FutureValue}}
Principal: {{.Summary.Principal}}  Gain: {{.Summary.Gain}}{{end}}
`
	t, err := template.New("summary").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}

// JSONReporter writes the view in the same shape as the web API.
type JSONReporter struct {
	writer io.Writer
}

func NewJSONReporter(writer io.Writer) *JSONReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &JSONReporter{writer: writer}
}

func (c *JSONReporter) Handle(view domain.View) error {
	enc := json.NewEncoder(c.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(adapters.MapViewDomainToApi(view, nil)); err != nil {
		return fmt.Errorf("failed to encode view: %w", err)
	}
	return nil
}
