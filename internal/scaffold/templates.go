package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

//go:embed templates/GridSelector.js templates/pages.js.tmpl
var templateFS embed.FS

var pagesTemplate = template.Must(template.ParseFS(templateFS, "templates/pages.js.tmpl"))

// ComponentExportLine registers the generated component with the project.
const ComponentExportLine = `export { GridSelector } from "./GridSelector";`

var blankRunRe = regexp.MustCompile(`\n\s*\n\s*\n`)

// GridSelectorSource returns the component source written into projects.
func GridSelectorSource() ([]byte, error) {
	return templateFS.ReadFile("templates/GridSelector.js")
}

// RenderPages renders pages.js mounting the grid selector at "/".
func RenderPages(rows, columns int) ([]byte, error) {
	var buf bytes.Buffer
	err := pagesTemplate.Execute(&buf, struct{ Rows, Columns int }{rows, columns})
	if err != nil {
		return nil, fmt.Errorf("failed to render pages.js: %w", err)
	}
	return buf.Bytes(), nil
}

// PatchComponents collapses runs of blank lines in an existing components.js
// and appends the GridSelector export unless it is already present.
func PatchComponents(existing string) string {
	content := strings.TrimSpace(blankRunRe.ReplaceAllString(existing, "\n\n"))
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == ComponentExportLine {
			return content + "\n"
		}
	}
	if content == "" {
		return ComponentExportLine + "\n"
	}
	return content + "\n" + ComponentExportLine + "\n"
}
