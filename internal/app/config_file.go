package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the on-disk configuration schema. Pointer fields distinguish
// "not set" from an explicit false.
type FileConfig struct {
	IgnoreCase *bool  `yaml:"ignoreCase" toml:"ignoreCase" json:"ignoreCase"`
	Encoding   string `yaml:"encoding" toml:"encoding" json:"encoding"`
	Verbose    *bool  `yaml:"verbose" toml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML, TOML or JSON into FileConfig, chosen by
// extension. Unknown extensions are tried as YAML, then TOML, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		yerr := yaml.Unmarshal(b, &fc)
		if yerr == nil {
			return fc, nil
		}
		fc = FileConfig{}
		terr := toml.Unmarshal(b, &fc)
		if terr == nil {
			return fc, nil
		}
		fc = FileConfig{}
		if jerr := json.Unmarshal(b, &fc); jerr != nil {
			return FileConfig{}, fmt.Errorf("parse config: %v (yaml) / %v (toml) / %v (json)", yerr, terr, jerr)
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays the values set in fc onto s.
func ApplyFileConfig(s *Settings, fc FileConfig) {
	if s == nil {
		return
	}
	if fc.IgnoreCase != nil {
		s.IgnoreCase = *fc.IgnoreCase
	}
	if v := strings.TrimSpace(fc.Encoding); v != "" {
		s.Encoding = v
	}
	if fc.Verbose != nil {
		s.Verbose = *fc.Verbose
	}
}
