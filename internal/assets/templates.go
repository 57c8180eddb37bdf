// Package assets renders study material to markdown with embedded fallback templates.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

var funcMap = template.FuncMap{
	"join": strings.Join,
	"hours": func(h float64) string {
		return strconv.FormatFloat(h, 'g', -1, 64)
	},
	"inc": func(i int) int {
		return i + 1
	},
}

// parseTemplateWithFallback parses templatePath when it exists and parses, and the embedded
// fallback otherwise.
func parseTemplateWithFallback(templatePath, fallbackName, fallbackTemplate string, logger *zap.Logger) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			logger.Warn("failed to parse a template, using the embedded one",
				zap.String("template_path", templatePath),
				zap.Error(err),
			)
		}
	}

	tmpl, err := template.New(fallbackName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}
