// Package templates carries built-in copies of the ADR templates. They are
// used only when embedded templates are enabled and the resources directory
// does not provide a file.
package templates

import (
	"embed"
	"fmt"
)

const (
	InitFile     = "init.md"
	TemplateFile = "template.md"
)

//go:embed init.md template.md
var files embed.FS

// Read returns the built-in template called name.
func Read(name string) ([]byte, error) {
	data, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no built-in template %q: %w", name, err)
	}
	return data, nil
}
