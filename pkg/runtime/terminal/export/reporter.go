package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/growth-atlas/pkg/models/domain"
)

type TableConfig struct {
	YearWidth   int
	AmountWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		YearWidth:   10,
		AmountWidth: 24,
	}
}

// Reporter prints the summary followed by the year-by-year table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(view domain.View) error {
	funcMap := template.FuncMap{
		"formatRow": func(year, principal, gain, value string) string {
			return fmt.Sprintf("| %-*s | %*s | %*s | %*s |",
				c.config.YearWidth, year,
				c.config.AmountWidth, principal,
				c.config.AmountWidth, gain,
				c.config.AmountWidth, value)
		},
		"separator": func() string {
			amount := strings.Repeat("-", c.config.AmountWidth+2)
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.YearWidth+2),
				amount, amount, amount)
		},
	}

	tmpl := `
{{.Description}}
{{if .Summary.Empty}}
{{.Summary.Placeholder}}
{{else}}
Overall value: {{.Summary.FutureValue}}
Principal: {{.Summary.Principal}}
Gain: {{.Summary.Gain}}

{{separator}}
{{formatRow "Year" "Principal" "Gain" "Overall value"}}
{{separator}}
{{range .Table}}{{formatRow .Label .Principal .Gain .FutureValue}}
{{end}}{{separator}}
{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, view)
}
