package server

import (
	"slices"

	"github.com/pablu23/contentForm/internal/content"
	"github.com/pablu23/contentForm/internal/preview"
)

type Options struct {
	Port        int
	Sites       []string
	PreviewSize int
	// OutputDir is where contentV2.json goes, the working directory if empty.
	OutputDir string
	Store     Optional[SettingsStore]
}

type Optional[v any] struct {
	Enabled bool
	value   v
}

func (o *Optional[v]) Get() v {
	return o.value
}

func (o *Optional[v]) Set(value v) {
	o.value = value
	o.Enabled = true
}

func (o *Optional[v]) Apply(apply func(*v)) {
	o.Enabled = true
	apply(&o.value)
}

// SettingsStore keeps form defaults between runs.
type SettingsStore interface {
	Settings() (map[string]string, error)
	SaveSettings(values map[string]string) error
}

func NewDefaultOptions() Options {
	return Options{
		Port:        8080,
		Sites:       slices.Clone(content.DefaultSites),
		PreviewSize: preview.DefaultSize,
		Store: Optional[SettingsStore]{
			Enabled: false,
		},
	}
}
