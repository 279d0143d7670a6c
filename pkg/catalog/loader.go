package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-palette/pkg/models"
)

const (
	actionsFile   = "actions.yaml"
	appsFile      = "apps.yaml"
	templatesFile = "templates.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type actionsDoc struct {
	Tabs map[models.Tab][]models.ActionSection `yaml:"tabs"`
}

type appsDoc struct {
	Categories []models.AppCategory `yaml:"categories"`
	Apps       []models.App         `yaml:"apps"`
}

type templatesDoc struct {
	Categories []models.TemplateCategory `yaml:"categories"`
	Templates  []models.Template         `yaml:"templates"`
}

// LoadDefault loads the catalog compiled into the binary.
func LoadDefault() (*Store, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads catalog tables from dir. Any of actions.yaml, apps.yaml or
// templates.yaml missing from dir falls back to the embedded copy.
func LoadDir(dir string) (*Store, error) {
	if dir == "" {
		return LoadDefault()
	}
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded catalog: %w", err)
	}
	return LoadFS(overlayFS{dir: dir, fallback: sub})
}

// LoadFS reads the three catalog tables from fsys.
func LoadFS(fsys fs.FS) (*Store, error) {
	var actions actionsDoc
	if err := decode(fsys, actionsFile, &actions); err != nil {
		return nil, err
	}
	var apps appsDoc
	if err := decode(fsys, appsFile, &apps); err != nil {
		return nil, err
	}
	var templates templatesDoc
	if err := decode(fsys, templatesFile, &templates); err != nil {
		return nil, err
	}

	store, err := New(Data{
		Sections:           actions.Tabs,
		AppCategories:      apps.Categories,
		Apps:               apps.Apps,
		TemplateCategories: templates.Categories,
		Templates:          templates.Templates,
	})
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return store, nil
}

func decode(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// overlayFS prefers files on disk and falls back to another FS.
type overlayFS struct {
	dir      string
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := os.Open(filepath.Join(o.dir, filepath.FromSlash(name)))
	if err == nil {
		return f, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return o.fallback.Open(name)
}
