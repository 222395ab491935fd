package config

import (
	"bytes"
	"os"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// expandTemplate renders a config string value as a Go template with the
// sprig function map plus CONFIG_DIR and WORKING_DIR variables. Values that
// fail to parse or render are returned unchanged.
func (c *Config) expandTemplate(s string) string {
	tmpl, err := template.New("config").Funcs(sprig.FuncMap()).Parse(s)
	if err != nil {
		return s
	}

	cwd, _ := os.Getwd()
	data := map[string]string{
		"CONFIG_DIR":  c.ConfigDir,
		"WORKING_DIR": cwd,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return s
	}
	return buf.String()
}
