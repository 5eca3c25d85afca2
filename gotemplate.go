package flightboard

import (
	"fmt"
	"io"
	"text/template"
)

func parseTemplate(tmplStr string) (*template.Template, error) {
	tmpl, err := template.New("").Option("missingkey=error").Parse(tmplStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return tmpl, nil
}

func writeGoTemplate(w io.Writer, tmplStr string, records []Record) error {
	tmpl, err := parseTemplate(tmplStr)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := executeTemplate(w, tmpl, rec); err != nil {
			return err
		}
	}
	return nil
}

func executeTemplate(w io.Writer, tmpl *template.Template, rec Record) error {
	if err := tmpl.Execute(w, rec); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
