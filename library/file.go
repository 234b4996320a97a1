package library

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/promptkit/message"
	"github.com/randalmurphal/promptkit/template"
)

// templateFile is the on-disk template definition, shared by the YAML
// and TOML formats:
//
//	name: summarize
//	role: system
//	cacheable: true
//	default_inputs:
//	  style: concise
//	sample_inputs:
//	  document: "Lorem ipsum..."
//	text: |
//	  Summarize {{document}} in {{style}} style.
//
// Name defaults to the file name without its extension.
type templateFile struct {
	Name          string         `yaml:"name" toml:"name"`
	Role          string         `yaml:"role" toml:"role"`
	Text          string         `yaml:"text" toml:"text"`
	Cacheable     bool           `yaml:"cacheable" toml:"cacheable"`
	DefaultInputs map[string]any `yaml:"default_inputs" toml:"default_inputs"`
	SampleInputs  map[string]any `yaml:"sample_inputs" toml:"sample_inputs"`
}

// loadFile parses one definition file into a validated Template.
func loadFile(path string) (string, template.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", template.Template{}, fmt.Errorf("library: read %s: %w", path, err)
	}

	var def templateFile
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return "", template.Template{}, fmt.Errorf("library: parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return "", template.Template{}, fmt.Errorf("library: parse %s: %w", path, err)
		}
	default:
		return "", template.Template{}, fmt.Errorf("library: unsupported format: %s", path)
	}

	name := def.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	tmpl, err := template.New(template.Options{
		Text:          def.Text,
		Role:          message.Role(def.Role),
		Cacheable:     def.Cacheable,
		DefaultInputs: def.DefaultInputs,
		SampleInputs:  def.SampleInputs,
	})
	if err != nil {
		return "", template.Template{}, fmt.Errorf("library: %s: %w", path, err)
	}
	return name, tmpl, nil
}
