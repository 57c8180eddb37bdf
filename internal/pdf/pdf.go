// Package pdf exports rendered markdown documents as PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// Render writes markdown to pdfPath as an A4 portrait document and returns the absolute path.
func Render(markdown []byte, pdfPath string) (string, error) {
	if !strings.HasSuffix(pdfPath, ".pdf") {
		return "", fmt.Errorf("output file must have .pdf extension: %s", pdfPath)
	}
	if err := os.MkdirAll(filepath.Dir(pdfPath), 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(pdfPath), err)
	}

	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// ConvertMarkdownFile converts a .md file to a .pdf file next to it.
func ConvertMarkdownFile(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}
	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}
	return Render(content, strings.TrimSuffix(markdownPath, ".md")+".pdf")
}
