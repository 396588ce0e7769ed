// Package adr runs resolved commands against the location store and the
// filesystem.
//
// Missing markers, unlistable directories and a second init are fatal and
// returned. Failures to create the storage directory or to copy a template
// are logged and swallowed, so the command still reports success.
package adr

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bitlake/adr/internal/command"
	"github.com/bitlake/adr/internal/config"
	adrerrors "github.com/bitlake/adr/internal/errors"
	"github.com/bitlake/adr/internal/fsops"
	"github.com/bitlake/adr/internal/templates"
	"github.com/bitlake/adr/internal/ui"
	"github.com/bitlake/adr/internal/utils"
)

// Dispatcher executes commands. Every field except WorkDir must be set; an
// empty WorkDir leaves relative paths to the process working directory.
type Dispatcher struct {
	Config *config.Config

	// WorkDir anchors relative paths: the resources directory and the
	// recorded location.
	WorkDir string

	FS     fsops.Filesystem
	Store  config.LocationStore
	Out    io.Writer
	UI     *ui.Printer
	Logger *log.Logger
}

// Run executes cmd.
func (d *Dispatcher) Run(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Init:
		return d.Init(c.Path)
	case command.New:
		_, err := d.New(c.Title)
		return err
	case command.List:
		_, err := d.List()
		return err
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// Init records path as the storage location, creates it and copies the
// init template into it.
func (d *Dispatcher) Init(path string) error {
	tracked, err := d.Store.Exists()
	if err != nil {
		return err
	}
	if tracked {
		return fmt.Errorf("%s found: %w", d.Config.Marker, adrerrors.ErrAlreadyInitialized)
	}

	if err := d.Store.Save(path); err != nil {
		return fmt.Errorf("recording adr location: %w", err)
	}
	d.Logger.Debug("recorded location", "marker", d.Config.Marker, "path", path)

	dir := d.resolve(path)
	if err := d.FS.MkdirAll(dir); err != nil {
		d.Logger.Error("creating adr directory", "path", path, "err", err)
	}

	if err := d.copyResource(templates.InitFile, filepath.Join(dir, templates.InitFile)); err != nil {
		d.Logger.Error("copying init template", "path", path, "err", err)
	}

	d.UI.Success(fmt.Sprintf("Tracking ADRs in %s", path))
	return nil
}

// New creates the next numbered record for title and returns its path.
func (d *Dispatcher) New(title string) (string, error) {
	location, err := d.Store.Load()
	if err != nil {
		return "", fmt.Errorf("reading adr location: %w", err)
	}

	records, err := d.records(location)
	if err != nil {
		return "", err
	}

	ordinal := len(records) + 1
	target := filepath.Join(location, utils.RecordFileName(ordinal, title))
	d.Logger.Debug("next record", "ordinal", ordinal, "existing", len(records))

	if err := d.copyResource(templates.TemplateFile, d.resolve(target)); err != nil {
		d.Logger.Error("creating record from template", "path", target, "err", err)
		return target, nil
	}

	d.UI.Success(fmt.Sprintf("Created %s", target))
	return target, nil
}

// List writes the record names to Out and returns them.
func (d *Dispatcher) List() ([]string, error) {
	location, err := d.Store.Load()
	if err != nil {
		return nil, fmt.Errorf("reading adr location: %w", err)
	}

	records, err := d.records(location)
	if err != nil {
		return nil, err
	}

	if err := d.write(records); err != nil {
		return nil, err
	}
	return records, nil
}

func (d *Dispatcher) write(records []string) error {
	if d.Config.Format == config.FormatYAML {
		content, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("marshaling records: %w", err)
		}
		_, err = d.Out.Write(content)
		return err
	}

	for _, name := range records {
		if _, err := fmt.Fprintln(d.Out, name); err != nil {
			return err
		}
	}
	return nil
}

// records returns the regular files in location, minus init.md and any
// configured ignore names.
func (d *Dispatcher) records(location string) ([]string, error) {
	names, err := d.FS.ListFiles(d.resolve(location))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", adrerrors.ErrDirectoryList, err)
	}

	records := make([]string, 0, len(names))
	for _, name := range names {
		if name == templates.InitFile || d.Config.IsIgnored(name) {
			continue
		}
		records = append(records, name)
	}
	return records, nil
}

// copyResource copies the named template from the resources directory to
// target, falling back to the built-in copy when enabled and the resource is
// absent.
func (d *Dispatcher) copyResource(name, target string) error {
	source := d.resolve(filepath.Join(d.Config.Resources, name))

	err := d.FS.CopyFile(source, target)
	if err == nil || !d.Config.EmbeddedTemplates {
		return err
	}

	if present, statErr := d.FS.Exists(source); statErr != nil || present {
		return err
	}

	data, tplErr := templates.Read(name)
	if tplErr != nil {
		return tplErr
	}
	d.Logger.Debug("using built-in template", "name", name)
	return d.FS.WriteFile(target, data)
}

func (d *Dispatcher) resolve(path string) string {
	if d.WorkDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.WorkDir, path)
}
